package protocol

// USB identifiers for the Ulanzi D200 panel.
const (
	// VendorID is the USB vendor ID used for enumeration
	VendorID = 0x2207

	// ProductID is the USB product ID used for enumeration
	ProductID = 0x0019
)

// Packet framing constants.
const (
	// PacketSize is the fixed size of every transport packet in bytes
	PacketSize = 1024

	// HeaderSize is the framed packet overhead:
	// MARKER(2) + CMD(2) + LEN(4)
	HeaderSize = 8

	// MaxPayload is the payload capacity of a single framed packet
	MaxPayload = PacketSize - HeaderSize
)

// markerByte is the value of both packet marker bytes (0x7C, ASCII '|').
const markerByte = 0x7C

// Marker is the 2-byte value every framed packet starts with.
var Marker = [2]byte{markerByte, markerByte}

// Command is a 16-bit packet command code.
type Command uint16

// Command codes understood by the panel.
const (
	// OutSetButtons replaces the full button configuration with a bundle
	OutSetButtons Command = 0x0001

	// OutSetStatusLine updates the small status window (clock/stats)
	OutSetStatusLine Command = 0x0006

	// OutSetBrightness sets the display brightness (0-100)
	OutSetBrightness Command = 0x000A

	// OutSetLabelStyle sets the button label styling
	OutSetLabelStyle Command = 0x000B

	// OutPartialUpdateButtons updates a subset of buttons with a bundle
	OutPartialUpdateButtons Command = 0x000D

	// InButtonPress reports a button press or release
	InButtonPress Command = 0x0101

	// InButtonPressAlt is the alternate button report some firmware
	// revisions emit
	InButtonPressAlt Command = 0x0102

	// InDeviceInfo reports device identification data
	InDeviceInfo Command = 0x0303
)

// String returns a human-readable name for the command code.
func (c Command) String() string {
	switch c {
	case OutSetButtons:
		return "set-buttons"
	case OutSetStatusLine:
		return "set-status-line"
	case OutSetBrightness:
		return "set-brightness"
	case OutSetLabelStyle:
		return "set-label-style"
	case OutPartialUpdateButtons:
		return "partial-update-buttons"
	case InButtonPress:
		return "button-press"
	case InButtonPressAlt:
		return "button-press-alt"
	case InDeviceInfo:
		return "device-info"
	default:
		return "unknown"
	}
}
