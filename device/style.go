package device

import (
	"encoding/json"
	"fmt"

	"github.com/ulanzikit/go-d200/protocol"
)

// LabelStyle overrides fields of the panel's default button label
// style. Nil fields keep their defaults.
type LabelStyle struct {
	// Align is the label position on the button (default "bottom")
	Align *string

	// Color is the label color as 0xRRGGBB (default 0xFFFFFF)
	Color *int

	// FontName is the label font (default "Roboto")
	FontName *string

	// ShowTitle toggles label visibility (default true)
	ShowTitle *bool

	// Size is the font size (default 10)
	Size *int

	// Weight is the font weight (default 80)
	Weight *int
}

// labelStyleWire is the JSON shape the panel expects: every field
// present, overrides merged over defaults.
type labelStyleWire struct {
	Align     string `json:"Align"`
	Color     int    `json:"Color"`
	FontName  string `json:"FontName"`
	ShowTitle bool   `json:"ShowTitle"`
	Size      int    `json:"Size"`
	Weight    int    `json:"Weight"`
}

func defaultLabelStyle() labelStyleWire {
	return labelStyleWire{
		Align:     "bottom",
		Color:     0xFFFFFF,
		FontName:  "Roboto",
		ShowTitle: true,
		Size:      10,
		Weight:    80,
	}
}

// merged resolves the style against the defaults.
func (s LabelStyle) merged() labelStyleWire {
	w := defaultLabelStyle()
	if s.Align != nil {
		w.Align = *s.Align
	}
	if s.Color != nil {
		w.Color = *s.Color
	}
	if s.FontName != nil {
		w.FontName = *s.FontName
	}
	if s.ShowTitle != nil {
		w.ShowTitle = *s.ShowTitle
	}
	if s.Size != nil {
		w.Size = *s.Size
	}
	if s.Weight != nil {
		w.Weight = *s.Weight
	}
	return w
}

// SetLabelStyle sets the button label styling. Caller-supplied fields
// are merged over the defaults and the complete style record is sent as
// JSON.
//
// Example:
//
//	err := dev.SetLabelStyle(device.LabelStyle{
//	    FontName:  device.String("Mono"),
//	    ShowTitle: device.Bool(false),
//	})
func (d *Device) SetLabelStyle(style LabelStyle) error {
	payload, err := json.Marshal(style.merged())
	if err != nil {
		return fmt.Errorf("encode label style: %w", err)
	}

	if err := d.sendCommand(protocol.OutSetLabelStyle, payload); err != nil {
		return err
	}
	d.logDebug("set label style")
	return nil
}

// String returns a pointer to s, for optional style fields.
func String(s string) *string { return &s }

// Int returns a pointer to i, for optional style fields.
func Int(i int) *int { return &i }

// Bool returns a pointer to b, for optional style fields.
func Bool(b bool) *bool { return &b }
