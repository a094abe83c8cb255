package protocol

// ChunkPayload splits an arbitrary-length payload into transport
// packets for the given command.
//
// The first packet is a frame carrying the payload's first 1016 bytes
// (zero-padded if shorter) with the total payload size in its length
// field. Every subsequent 1024-byte window of the remaining payload
// becomes a raw continuation chunk with no header, zero-padded to 1024
// bytes. The panel carries no chunk index and reassembles continuation
// chunks positionally, so the returned order is the required write
// order.
func ChunkPayload(cmd Command, payload []byte) ([][]byte, error) {
	head := payload
	if len(head) > MaxPayload {
		head = head[:MaxPayload]
	}

	frame, err := BuildFrame(cmd, head, uint32(len(payload)))
	if err != nil {
		return nil, err
	}

	chunks := [][]byte{frame}
	for off := MaxPayload; off < len(payload); off += PacketSize {
		end := off + PacketSize
		if end > len(payload) {
			end = len(payload)
		}
		chunk := make([]byte, PacketSize)
		copy(chunk, payload[off:end])
		chunks = append(chunks, chunk)
	}

	return chunks, nil
}
