package bundle

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
)

// Bundle is an assembled button-configuration archive ready for
// transmission.
type Bundle struct {
	// Data is the compressed archive byte stream
	Data []byte

	// Manifest holds the entries serialized into manifest.json
	Manifest map[string]ManifestEntry

	// Images is the number of button entries that reference an icon
	Images int

	// MissingIcons lists icon paths skipped because no file was found
	MissingIcons []string
}

// Size returns the archive size in bytes.
func (b *Bundle) Size() int {
	return len(b.Data)
}

// Build assembles the archive for the given button configuration.
//
// Each button entry becomes a manifest record under its grid key. Icon
// files are read from disk and stored once per base name under icons/;
// a missing icon file is recorded in MissingIcons and the entry
// proceeds without an Icon field. padding becomes the content of
// dummy.txt (see GrowPadding).
func Build(buttons map[int]ButtonConfig, padding string) (*Bundle, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	manifest := make(map[string]ManifestEntry, len(buttons))
	var images int
	var missing []string
	stored := make(map[string]bool)

	// Walk indexes in order so the archive layout is deterministic.
	indexes := make([]int, 0, len(buttons))
	for idx := range buttons {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	for _, idx := range indexes {
		cfg := buttons[idx]
		entry := ManifestEntry{
			State:     cfg.State,
			ViewParam: []ViewParam{{}},
		}

		if cfg.Label != "" {
			entry.ViewParam[0].Text = cfg.Label
		}

		if cfg.Icon != "" {
			data, err := os.ReadFile(cfg.Icon)
			if err != nil {
				missing = append(missing, cfg.Icon)
			} else {
				name := "icons/" + filepath.Base(cfg.Icon)
				if !stored[name] {
					w, err := zw.Create(name)
					if err != nil {
						return nil, fmt.Errorf("add %s: %w", name, err)
					}
					if _, err := w.Write(data); err != nil {
						return nil, fmt.Errorf("write %s: %w", name, err)
					}
					stored[name] = true
				}
				entry.ViewParam[0].Icon = name
				images++
			}
		}

		manifest[ManifestKey(idx)] = entry
	}

	// Map keys marshal in sorted order with compact separators, which
	// is exactly the manifest layout the panel expects.
	manifestJSON, err := json.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	w, err := zw.Create("manifest.json")
	if err != nil {
		return nil, fmt.Errorf("add manifest.json: %w", err)
	}
	if _, err := w.Write(manifestJSON); err != nil {
		return nil, fmt.Errorf("write manifest.json: %w", err)
	}

	w, err = zw.Create("dummy.txt")
	if err != nil {
		return nil, fmt.Errorf("add dummy.txt: %w", err)
	}
	if _, err := w.Write([]byte(padding)); err != nil {
		return nil, fmt.Errorf("write dummy.txt: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	return &Bundle{
		Data:         buf.Bytes(),
		Manifest:     manifest,
		Images:       images,
		MissingIcons: missing,
	}, nil
}

const paddingAlphabet = "abcdefghijklmnopqrstuvwxyz"

// GrowPadding extends the dummy.txt padding for a rebuild attempt,
// appending eight random lowercase characters per attempt number.
// Shifting the archive content this way gives the reserved-byte patcher
// a different stream to work with when a previous build collided with
// the firmware defect.
func GrowPadding(padding string, attempt int) string {
	grown := make([]byte, 8*attempt)
	for i := range grown {
		grown[i] = paddingAlphabet[rand.Intn(len(paddingAlphabet))]
	}
	return padding + string(grown)
}
