// Package usbhid opens the Ulanzi D200 panel over hidapi.
//
// This package is thin glue between the driver and
// github.com/sstallion/go-hid: it enumerates the panel by its USB
// vendor/product IDs, opens the HID handle, and switches reads to
// non-blocking so an idle poll returns no data instead of stalling.
package usbhid

import (
	"fmt"

	"github.com/sstallion/go-hid"

	"github.com/ulanzikit/go-d200/protocol"
)

// DeviceNotFoundError indicates that enumeration found no panel.
type DeviceNotFoundError struct {
	VendorID  uint16
	ProductID uint16
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("panel not found (VID: %04x, PID: %04x)", e.VendorID, e.ProductID)
}

// Transport is an open HID connection to the panel. It satisfies the
// device package's Transport interface.
type Transport struct {
	dev *hid.Device
}

// Open connects to the panel at the given HID path, or to the first
// panel enumerated by vendor/product ID when the path is empty.
func Open(path string) (*Transport, error) {
	if path == "" {
		found, err := firstDevicePath()
		if err != nil {
			return nil, err
		}
		path = found
	}

	dev, err := hid.OpenPath(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if err := dev.SetNonblock(true); err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("set nonblocking: %w", err)
	}

	return &Transport{dev: dev}, nil
}

// firstDevicePath enumerates panels and returns the first match.
func firstDevicePath() (string, error) {
	var found string
	err := hid.Enumerate(protocol.VendorID, protocol.ProductID, func(info *hid.DeviceInfo) error {
		if found == "" {
			found = info.Path
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("enumerate: %w", err)
	}
	if found == "" {
		return "", &DeviceNotFoundError{VendorID: protocol.VendorID, ProductID: protocol.ProductID}
	}
	return found, nil
}

// Read reads up to len(p) bytes of one inbound packet. With no packet
// pending it returns 0, nil.
func (t *Transport) Read(p []byte) (int, error) {
	return t.dev.Read(p)
}

// Write sends one outbound packet.
func (t *Transport) Write(p []byte) (int, error) {
	return t.dev.Write(p)
}

// Close releases the HID handle.
func (t *Transport) Close() error {
	return t.dev.Close()
}
