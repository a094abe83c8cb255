package device

import (
	"fmt"

	"github.com/ulanzikit/go-d200/protocol"
)

// Status window modes.
const (
	// StatusModeStats shows CPU/memory/GPU figures
	StatusModeStats = 0

	// StatusModeClock shows the clock (the panel default)
	StatusModeClock = 1

	// StatusModeBackground hides the window content
	StatusModeBackground = 2
)

// StatusLine is the content of the panel's small status window.
type StatusLine struct {
	// Mode selects the window layout; nil selects StatusModeClock.
	// Zero is a valid mode (StatusModeStats), hence the pointer.
	Mode *int

	// CPU is the CPU utilization figure (default 0)
	CPU int

	// Mem is the memory utilization figure (default 0)
	Mem int

	// GPU is the GPU utilization figure (default 0)
	GPU int

	// Time is the clock text as HH:MM:SS; empty uses the current wall
	// clock
	Time string
}

// SetStatusLine updates the status window. The payload is the
// pipe-delimited ASCII record "mode|cpu|mem|time|gpu".
//
// force is accepted for callers that track their own change state;
// transmission is unconditional either way.
func (d *Device) SetStatusLine(s StatusLine, force bool) error {
	mode := StatusModeClock
	if s.Mode != nil {
		mode = *s.Mode
	}

	clock := s.Time
	if clock == "" {
		clock = d.config.Clock().Format("15:04:05")
	}

	payload := fmt.Sprintf("%d|%d|%d|%s|%d", mode, s.CPU, s.Mem, clock, s.GPU)
	if err := d.sendCommand(protocol.OutSetStatusLine, []byte(payload)); err != nil {
		return err
	}
	d.logDebug("set status line", "payload", payload, "force", force)
	return nil
}
