package device

import (
	"github.com/ulanzikit/go-d200/bundle"
	"github.com/ulanzikit/go-d200/protocol"
)

// SendReport summarizes one bundle transmission.
type SendReport struct {
	// BundleSize is the transmitted archive size in bytes
	BundleSize int

	// Images is the number of button entries carrying an icon
	Images int

	// PatchedBytes is the number of reserved bytes rewritten before
	// transmission
	PatchedBytes int

	// PatchNote is a human-readable summary of the patch, empty when
	// nothing was rewritten
	PatchNote string

	// SendCount is the running number of bundle transmissions on this
	// device, including this one
	SendCount int
}

// SetButtons replaces the panel's button configuration.
//
// The configuration is assembled into an archive, reserved bytes are
// patched to dodge the firmware defect, and the result is written as an
// ordered chunk sequence. Patching never fails the operation; the
// returned report says how many bytes changed. A write failure on any
// chunk aborts the transmission and surfaces as a TransportError.
func (d *Device) SetButtons(buttons map[int]bundle.ButtonConfig) (*SendReport, error) {
	return d.sendButtons(protocol.OutSetButtons, buttons)
}

// PartialUpdateButtons updates only the button slots present in the
// configuration, leaving the rest of the panel untouched. Same pipeline
// and report as SetButtons, different command code.
func (d *Device) PartialUpdateButtons(buttons map[int]bundle.ButtonConfig) (*SendReport, error) {
	return d.sendButtons(protocol.OutPartialUpdateButtons, buttons)
}

func (d *Device) sendButtons(cmd protocol.Command, buttons map[int]bundle.ButtonConfig) (*SendReport, error) {
	d.logInfo("preparing button update", "command", cmd.String(), "buttons", len(buttons))

	var (
		b       *bundle.Bundle
		data    []byte
		report  protocol.PatchReport
		padding string
	)
	for attempt := 1; ; attempt++ {
		var err error
		b, err = bundle.Build(buttons, padding)
		if err != nil {
			return nil, err
		}
		for _, path := range b.MissingIcons {
			d.logWarn("icon file not found", "path", path)
		}

		data, report = protocol.PatchReservedBytes(b.Data)
		if report.Count() == 0 || attempt >= d.config.PaddingRetries {
			break
		}

		padding = bundle.GrowPadding(padding, attempt)
		d.logDebug("rebuilding bundle with grown padding",
			"attempt", attempt, "padding_bytes", len(padding), "patched", report.Count())
	}

	if report.Count() > 0 {
		d.patchedTotal += report.Count()
		d.logDebug("patched reserved bytes", "note", report.Note())
	}

	chunks, err := protocol.ChunkPayload(cmd, data)
	if err != nil {
		return nil, err
	}

	d.logDebug("sending bundle", "bytes", len(data), "chunks", len(chunks))
	for _, chunk := range chunks {
		if _, err := d.transport.Write(chunk); err != nil {
			return nil, &TransportError{Op: "write", Command: cmd, Err: err}
		}
	}

	d.sendCount++
	d.logInfo("button update sent", "buttons", len(buttons), "images", b.Images, "bytes", len(data))

	return &SendReport{
		BundleSize:   len(data),
		Images:       b.Images,
		PatchedBytes: report.Count(),
		PatchNote:    report.Note(),
		SendCount:    d.sendCount,
	}, nil
}
