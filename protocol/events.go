package protocol

// ButtonPress is a decoded button event from the panel.
type ButtonPress struct {
	// Index is the zero-based button index
	Index uint8

	// State is the button's view state at the time of the event
	State uint8

	// Pressed is true for a press, false for a release
	Pressed bool
}

// buttonReportSize is the number of payload bytes a button report
// carries: state, index, one reserved byte, and the pressed flag.
const buttonReportSize = 4

// ParseButtonPress decodes a raw read into a button event.
//
// ok is false when the buffer is not a frame, the command is not one of
// the two inbound button-press codes, or the payload is too short to
// hold a report. None of these are errors; a malformed or unrelated
// read simply produces no event.
//
// Report layout, relative to the payload start:
//
//	[STATE(1)][INDEX(1)][RESERVED(1)][PRESSED(1)]
//
// PRESSED is 0x01 for a press; any other value is a release.
func ParseButtonPress(buf []byte) (press *ButtonPress, ok bool) {
	cmd, _, payload, ok := ParseFrame(buf)
	if !ok {
		return nil, false
	}
	if cmd != InButtonPress && cmd != InButtonPressAlt {
		return nil, false
	}
	if len(payload) < buttonReportSize {
		return nil, false
	}

	return &ButtonPress{
		State:   payload[0],
		Index:   payload[1],
		Pressed: payload[3] == 0x01,
	}, true
}
