package bundle

import "fmt"

// Panel layout constants.
const (
	// ButtonCount is the number of button slots: 13 key buttons plus
	// the clock button
	ButtonCount = 14

	// GridColumns is the key grid width used to derive manifest keys
	GridColumns = 5

	// IconSize is the icon edge length in pixels expected by the panel
	IconSize = 196
)

// ButtonConfig describes the desired content of one button slot.
// The zero value clears the slot.
type ButtonConfig struct {
	// Label is the text shown on the button (optional)
	Label string

	// Icon is a filesystem path to an image file whose bytes are
	// embedded verbatim in the archive (optional)
	Icon string

	// State selects the device-side view state (default 0)
	State int
}

// ViewParam holds the displayable content of a manifest entry.
// Absent fields are omitted from the serialized manifest.
type ViewParam struct {
	Icon string `json:"Icon,omitempty"`
	Text string `json:"Text,omitempty"`
}

// ManifestEntry is the per-button record stored in manifest.json.
// ViewParam always holds exactly one element; the panel firmware
// expects a list.
type ManifestEntry struct {
	State     int         `json:"State"`
	ViewParam []ViewParam `json:"ViewParam"`
}

// ManifestKey returns the "{col}_{row}" grid coordinate for a
// zero-based button index.
func ManifestKey(index int) string {
	return fmt.Sprintf("%d_%d", index%GridColumns, index/GridColumns)
}
