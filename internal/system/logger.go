// Package system holds process-wide helpers shared by the CLI.
package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared diagnostics logger for CLI-level problems.
// Operator transcript lines go through the journal instead.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})
