// Package bundle assembles button-configuration archives for the
// Ulanzi D200 panel.
//
// # Archive Format
//
// A button update is transmitted as a single ZIP (deflate) byte stream
// containing:
//
//	manifest.json   per-button view state, compact key-sorted JSON
//	icons/<name>    raw icon bytes, named after the source file
//	dummy.txt       padding used to dodge a firmware parsing defect
//
// The manifest maps grid coordinates to entries:
//
//	{"0_0":{"State":0,"ViewParam":[{"Icon":"icons/play.png","Text":"Play"}]},
//	 "2_0":{"State":3,"ViewParam":[{}]}}
//
// Keys are "{col}_{row}" with a five-column grid, so button index 7
// maps to "2_1". Icon bytes are passed through verbatim; the panel does
// its own decoding and this package performs no image validation.
//
// # Usage
//
// Build an archive from per-button configuration:
//
//	b, err := bundle.Build(map[int]bundle.ButtonConfig{
//	    0: {Label: "Play", Icon: "/path/play.png"},
//	    2: {State: 3},
//	}, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("archive is %d bytes\n", b.Size())
//
// Icon paths that do not resolve to a file are skipped, not fatal: the
// entry keeps its label and state and the path is reported in
// Bundle.MissingIcons for the caller to log.
package bundle
