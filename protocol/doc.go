// Package protocol implements the Ulanzi D200 packet protocol.
//
// This package provides functions to build outbound packets, split large
// payloads into transport chunks, work around a known firmware parsing
// defect, and decode inbound button-press reports.
//
// # Protocol Overview
//
// Every packet exchanged with the panel is exactly 1024 bytes:
//
//	[MARKER(2)][CMD(2)][LEN(4)][PAYLOAD(1016)]
//
// Where:
//   - MARKER = 0x7C 0x7C
//   - CMD = 16-bit command code (big-endian)
//   - LEN = 32-bit payload length (little-endian). On the first packet of
//     a multi-packet transmission this is the total payload size across
//     all packets, not the packet's own payload size.
//   - PAYLOAD = up to 1016 bytes, zero-padded
//
// Payloads larger than 1016 bytes are split by ChunkPayload: one framed
// packet followed by raw 1024-byte continuation chunks with no header.
// The panel reassembles continuation chunks positionally, so chunk order
// is part of the wire contract.
//
// # Packet Builders
//
// Use BuildCommand for single-packet sends and ChunkPayload for
// arbitrary-length payloads:
//
//	frame, err := protocol.BuildCommand(protocol.OutSetBrightness, []byte("80"))
//	chunks, err := protocol.ChunkPayload(protocol.OutSetButtons, bundleData)
//
// # Firmware Quirk
//
// The panel firmware misparses a chunked stream when the byte at offset
// 1016 of any 1024-byte window is 0x00 or 0x7C. PatchReservedBytes
// rewrites such bytes to 0x01 before transmission and reports the
// offsets it touched; see PatchReport.
//
// # Inbound Reports
//
// Use ParseButtonPress to decode a raw read into a ButtonPress event:
//
//	press, ok := protocol.ParseButtonPress(buf[:n])
//	if ok {
//	    fmt.Printf("button %d pressed=%v\n", press.Index, press.Pressed)
//	}
package protocol
