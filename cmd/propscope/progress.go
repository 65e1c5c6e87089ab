package main

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// newScanSpinner builds a spinner for scans where the file total is
// not known up front. It writes to stderr so stdout stays
// machine-readable.
func newScanSpinner(label string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}
