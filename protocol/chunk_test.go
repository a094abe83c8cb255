package protocol

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// patternBytes returns n bytes with a non-repeating pattern that avoids
// the reserved values, so chunk boundaries are easy to verify.
func patternBytes(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i%251) + 2
	}
	return data
}

func TestChunkPayloadCounts(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		wantChunks int
	}{
		{name: "empty payload", length: 0, wantChunks: 1},
		{name: "tiny payload", length: 10, wantChunks: 1},
		{name: "exactly one frame", length: MaxPayload, wantChunks: 1},
		{name: "one byte over", length: MaxPayload + 1, wantChunks: 2},
		{name: "exactly two chunks", length: MaxPayload + PacketSize, wantChunks: 2},
		{name: "one byte into third chunk", length: MaxPayload + PacketSize + 1, wantChunks: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := ChunkPayload(OutSetButtons, patternBytes(tt.length))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(chunks) != tt.wantChunks {
				t.Fatalf("chunk count = %d, want %d", len(chunks), tt.wantChunks)
			}
			for i, chunk := range chunks {
				if len(chunk) != PacketSize {
					t.Errorf("chunk %d size = %d, want %d", i, len(chunk), PacketSize)
				}
			}
		})
	}
}

func TestChunkPayloadHeader(t *testing.T) {
	payload := patternBytes(3000)
	chunks, err := ChunkPayload(OutSetButtons, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	head := chunks[0]
	if head[0] != Marker[0] || head[1] != Marker[1] {
		t.Error("first chunk is not a framed packet")
	}
	if got := Command(binary.BigEndian.Uint16(head[2:4])); got != OutSetButtons {
		t.Errorf("command = 0x%04X, want 0x%04X", uint16(got), uint16(OutSetButtons))
	}
	if got := binary.LittleEndian.Uint32(head[4:8]); got != uint32(len(payload)) {
		t.Errorf("declared length = %d, want total payload size %d", got, len(payload))
	}

	// Continuation chunks are raw payload windows, no header rebuild.
	if !bytes.Equal(chunks[1][:2], payload[MaxPayload:MaxPayload+2]) {
		t.Error("continuation chunk does not start at payload offset 1016")
	}
}

func TestChunkPayloadRoundTrip(t *testing.T) {
	lengths := []int{0, 1, 100, MaxPayload, MaxPayload + 1, MaxPayload + PacketSize, MaxPayload + PacketSize + 1, 5000}

	for _, n := range lengths {
		payload := patternBytes(n)
		chunks, err := ChunkPayload(OutSetButtons, payload)
		if err != nil {
			t.Fatalf("length %d: unexpected error: %v", n, err)
		}

		// Reassemble the way the panel does: header chunk payload region
		// first, then continuation chunks in receipt order.
		var stream []byte
		stream = append(stream, chunks[0][HeaderSize:]...)
		for _, chunk := range chunks[1:] {
			stream = append(stream, chunk...)
		}

		if !bytes.Equal(stream[:n], payload) {
			t.Errorf("length %d: reassembled stream does not match payload", n)
		}
	}
}
