package protocol

import (
	"bytes"
	"testing"
)

func TestBuildFrame(t *testing.T) {
	tests := []struct {
		name        string
		cmd         Command
		payload     []byte
		declaredLen uint32
		wantErr     bool
	}{
		{
			name:        "empty payload",
			cmd:         OutSetBrightness,
			payload:     nil,
			declaredLen: 0,
		},
		{
			name:        "short payload",
			cmd:         OutSetStatusLine,
			payload:     []byte("1|0|0|12:00:00|0"),
			declaredLen: 16,
		},
		{
			name:        "full payload",
			cmd:         OutSetButtons,
			payload:     bytes.Repeat([]byte{0xAB}, MaxPayload),
			declaredLen: MaxPayload,
		},
		{
			name:        "declared length larger than payload",
			cmd:         OutSetButtons,
			payload:     bytes.Repeat([]byte{0x42}, 100),
			declaredLen: 5000,
		},
		{
			name:    "payload too long",
			cmd:     OutSetButtons,
			payload: bytes.Repeat([]byte{0x01}, MaxPayload+1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := BuildFrame(tt.cmd, tt.payload, tt.declaredLen)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(frame) != PacketSize {
				t.Fatalf("frame size = %d, want %d", len(frame), PacketSize)
			}
			if frame[0] != Marker[0] || frame[1] != Marker[1] {
				t.Errorf("marker = %02X %02X, want %02X %02X", frame[0], frame[1], Marker[0], Marker[1])
			}

			cmd, declaredLen, payload, ok := ParseFrame(frame)
			if !ok {
				t.Fatal("ParseFrame rejected a built frame")
			}
			if cmd != tt.cmd {
				t.Errorf("command = 0x%04X, want 0x%04X", uint16(cmd), uint16(tt.cmd))
			}
			if declaredLen != tt.declaredLen {
				t.Errorf("declared length = %d, want %d", declaredLen, tt.declaredLen)
			}
			if !bytes.Equal(payload[:len(tt.payload)], tt.payload) {
				t.Error("payload region does not match input")
			}
			for _, b := range payload[len(tt.payload):] {
				if b != 0 {
					t.Error("payload region is not zero-padded")
					break
				}
			}
		})
	}
}

func TestParseFrameRejects(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{name: "nil buffer", buf: nil},
		{name: "short buffer", buf: []byte{0x7C, 0x7C, 0x01, 0x01, 0x00}},
		{name: "bad marker", buf: append([]byte{0x00, 0x7C}, make([]byte, 10)...)},
		{name: "bad second marker byte", buf: append([]byte{0x7C, 0x00}, make([]byte, 10)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, _, ok := ParseFrame(tt.buf); ok {
				t.Error("ParseFrame accepted a non-frame buffer")
			}
		})
	}
}

func TestParseFrameToleratesShortPayload(t *testing.T) {
	// A truncated read that still holds a full header parses fine; the
	// short payload is the caller's to detect.
	buf := []byte{0x7C, 0x7C, 0x01, 0x01, 0x10, 0x00, 0x00, 0x00, 0x05, 0x07}
	cmd, declaredLen, payload, ok := ParseFrame(buf)
	if !ok {
		t.Fatal("ParseFrame rejected a truncated frame with a valid header")
	}
	if cmd != InButtonPress {
		t.Errorf("command = 0x%04X, want 0x%04X", uint16(cmd), uint16(InButtonPress))
	}
	if declaredLen != 16 {
		t.Errorf("declared length = %d, want 16", declaredLen)
	}
	if len(payload) != 2 {
		t.Errorf("payload length = %d, want 2", len(payload))
	}
}
