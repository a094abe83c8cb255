package protocol

import (
	"encoding/binary"
	"fmt"
)

// BuildFrame constructs a fixed-size 1024-byte packet.
//
// Frame structure:
//
//	[MARKER(2)][CMD(2, big-endian)][LEN(4, little-endian)][PAYLOAD(1016, zero-padded)]
//
// declaredLen is written verbatim into the length field. For a
// single-packet command it equals len(payload); for the first packet of
// a chunked transmission it is the total payload size across all
// chunks. BuildFrame does not split payloads, that is ChunkPayload's
// job.
//
// Returns an error if the payload exceeds the packet's payload capacity.
func BuildFrame(cmd Command, payload []byte, declaredLen uint32) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("payload length %d exceeds maximum %d bytes", len(payload), MaxPayload)
	}

	frame := make([]byte, PacketSize)
	frame[0] = Marker[0]
	frame[1] = Marker[1]
	binary.BigEndian.PutUint16(frame[2:4], uint16(cmd))
	binary.LittleEndian.PutUint32(frame[4:8], declaredLen)
	copy(frame[HeaderSize:], payload)

	return frame, nil
}

// BuildCommand frames a single-packet command whose declared length is
// the payload length.
func BuildCommand(cmd Command, payload []byte) ([]byte, error) {
	return BuildFrame(cmd, payload, uint32(len(payload)))
}

// ParseFrame splits a received buffer into command code, declared
// length, and payload region.
//
// ok is false when the buffer is too short to hold a header or the
// marker does not match; such buffers are not frames. The declared
// length is not validated against the buffer: overlong reads are
// tolerated and truncated payloads are the caller's to detect.
func ParseFrame(buf []byte) (cmd Command, declaredLen uint32, payload []byte, ok bool) {
	if len(buf) < HeaderSize {
		return 0, 0, nil, false
	}
	if buf[0] != Marker[0] || buf[1] != Marker[1] {
		return 0, 0, nil, false
	}

	cmd = Command(binary.BigEndian.Uint16(buf[2:4]))
	declaredLen = binary.LittleEndian.Uint32(buf[4:8])
	return cmd, declaredLen, buf[HeaderSize:], true
}
