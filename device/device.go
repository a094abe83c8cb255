package device

import (
	"strconv"

	"github.com/ulanzikit/go-d200/protocol"
)

// Device drives one Ulanzi D200 panel over an open transport.
//
// Device is NOT safe for concurrent use: all operations are synchronous
// and sequential, and a chunked transmission must complete before any
// other operation proceeds. Serialize access across processes with
// Session.
type Device struct {
	transport Transport
	config    Config

	callback ButtonCallback

	sendCount    int
	patchedTotal int
}

// New creates a Device on the given transport.
//
// Example:
//
//	transport, _ := usbhid.Open("")
//	dev := device.New(transport, device.WithLogger(logger))
func New(transport Transport, opts ...Option) *Device {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Device{
		transport: transport,
		config:    cfg,
	}
}

// Close releases the transport handle.
func (d *Device) Close() error {
	d.logInfo("disconnected from panel")
	return d.transport.Close()
}

// SetButtonCallback registers the observer invoked for each decoded
// button-press event. Passing nil disarms it.
func (d *Device) SetButtonCallback(callback ButtonCallback) {
	d.callback = callback
}

// ReadButtonPress performs one non-blocking read and decodes it into a
// button event. It returns nil when no event is available: an empty
// read, a malformed packet, or an unrelated inbound command all count
// as "no event", and a transport read failure is logged rather than
// propagated so a polling loop never aborts.
//
// When an event decodes and a callback is registered, the callback is
// invoked synchronously before the event is returned.
func (d *Device) ReadButtonPress() *protocol.ButtonPress {
	buf := make([]byte, protocol.PacketSize)
	n, err := d.transport.Read(buf)
	if err != nil {
		d.logDebug("button read failed", "error", err)
		return nil
	}
	if n == 0 {
		return nil
	}

	press, ok := protocol.ParseButtonPress(buf[:n])
	if !ok {
		return nil
	}

	d.logDebug("button event", "index", press.Index, "pressed", press.Pressed, "state", press.State)
	if d.callback != nil {
		d.callback(*press)
	}
	return press
}

// SetBrightness sets the display brightness, clamping the level to
// [0, 100]. The payload is the decimal ASCII encoding of the clamped
// value.
func (d *Device) SetBrightness(level int) error {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}

	if err := d.sendCommand(protocol.OutSetBrightness, []byte(strconv.Itoa(level))); err != nil {
		return err
	}
	d.logDebug("set brightness", "level", level)
	return nil
}

// sendCommand frames and writes a single-packet command.
func (d *Device) sendCommand(cmd protocol.Command, payload []byte) error {
	frame, err := protocol.BuildCommand(cmd, payload)
	if err != nil {
		return err
	}
	if _, err := d.transport.Write(frame); err != nil {
		return &TransportError{Op: "write", Command: cmd, Err: err}
	}
	return nil
}

// SendCount returns how many bundle transmissions this device has
// performed.
func (d *Device) SendCount() int {
	return d.sendCount
}

// PatchedBytesTotal returns the cumulative number of reserved bytes
// rewritten across all bundle transmissions on this device.
func (d *Device) PatchedBytesTotal() int {
	return d.patchedTotal
}

func (d *Device) logDebug(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (d *Device) logInfo(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, keysAndValues...)
	}
}

func (d *Device) logWarn(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Warn(msg, keysAndValues...)
	}
}
