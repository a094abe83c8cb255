// Package device provides a high-level API for driving the Ulanzi D200
// button panel.
//
// # Overview
//
// This package orchestrates the panel's operations over an open
// transport:
//   - Replacing or partially updating the button configuration with
//     automatic bundling, firmware-quirk patching, and chunked writes
//   - Setting brightness, label style, and the status line
//   - Decoding inbound button-press reports and dispatching them to a
//     registered callback
//
// # Basic Usage
//
// The simplest way to talk to a panel is through a session, which
// serializes access across processes with an advisory file lock:
//
//	sess, err := device.OpenSession()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Close()
//
//	report, err := sess.Device.SetButtons(map[int]bundle.ButtonConfig{
//	    0: {Label: "Play", Icon: "icons/play.png"},
//	})
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	dev := device.New(transport,
//	    device.WithLogger(myLogger),
//	    device.WithPaddingRetries(3),
//	    device.WithClock(time.Now),
//	)
//
// # Logging
//
// Integrate with any logging framework via the Logger interface, or use
// the bundled zap adapter:
//
//	logger, _ := zap.NewDevelopment()
//	dev := device.New(transport, device.WithLogger(device.NewZapLogger(logger)))
//
// Sessions construct a zap logger automatically when the ULANZI_DEBUG
// or ULANZI_LOG_LEVEL environment switches are set.
//
// # Error Handling
//
// The package provides structured error types:
//   - ErrBusy: another process holds the device lock (non-blocking acquire)
//   - TransportError: a write failed mid-transmission
//   - usbhid.DeviceNotFoundError: enumeration found no panel
//
// Conditions that are part of normal operation never surface as errors:
// a malformed inbound read is "no event", a missing icon file is a
// logged warning, and firmware-quirk patching is reported, not failed.
//
// # Hardware Independence
//
// This package does NOT implement hardware communication. The Transport
// interface is satisfied by usbhid.Transport for real panels and by
// in-memory fakes for testing.
package device
