package protocol

import "fmt"

// PatchByte is the replacement value written over reserved bytes.
const PatchByte = 0x01

// isReservedByte reports whether the firmware misparses b when it lands
// on the last payload byte of a packet window (0x00 or the marker byte).
func isReservedByte(b byte) bool {
	return b == 0x00 || b == markerByte
}

// PatchReservedBytes rewrites byte values the panel firmware misparses
// at packet-aligned stream offsets.
//
// The affected positions are the last byte of the first 1016-byte
// segment of each 1024-byte window, i.e. absolute offsets 1016, 2040,
// 3064, and so on. Each reserved value found there is overwritten with
// PatchByte and its offset recorded. Scanning repeats until a pass
// finds nothing, which keeps the result clean even if the reserved set
// grows.
//
// The input is not modified; the returned stream has the same length
// with only the reported offsets rewritten. Patching is lossy by
// design: the payload content at those offsets changes silently, and
// callers surface the returned report instead of failing.
func PatchReservedBytes(payload []byte) ([]byte, PatchReport) {
	patched := make([]byte, len(payload))
	copy(patched, payload)

	var offsets []int
	for {
		var found []int
		for i := MaxPayload; i < len(patched); i += PacketSize {
			if isReservedByte(patched[i]) {
				found = append(found, i)
			}
		}
		if len(found) == 0 {
			break
		}
		for _, i := range found {
			patched[i] = PatchByte
		}
		offsets = append(offsets, found...)
	}

	return patched, PatchReport{Offsets: offsets}
}

// PatchReport records which stream offsets PatchReservedBytes rewrote
// during one transmission.
type PatchReport struct {
	// Offsets are the rewritten absolute stream offsets, in scan order
	Offsets []int
}

// Count returns the number of bytes rewritten.
func (r PatchReport) Count() int {
	return len(r.Offsets)
}

// Note returns a human-readable summary of the patch, or the empty
// string when nothing was rewritten.
func (r PatchReport) Note() string {
	if len(r.Offsets) == 0 {
		return ""
	}
	return fmt.Sprintf("invalid bytes patch %v (fix:%d)", r.Offsets, len(r.Offsets))
}
