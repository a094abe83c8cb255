package device

// Transport is the I/O capability the driver is given. usbhid.Transport
// implements it over hidapi; tests substitute in-memory fakes.
//
// Reads are expected to be non-blocking: a read with no inbound packet
// available returns n == 0 and a nil error, which the driver treats as
// "no event" rather than a failure.
type Transport interface {
	// Read reads up to len(p) bytes of one inbound packet
	Read(p []byte) (int, error)

	// Write sends one outbound packet
	Write(p []byte) (int, error)

	// Close releases the transport handle
	Close() error
}
