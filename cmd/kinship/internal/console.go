// Package internal holds the CLI's ambient concerns — colorized
// output, progress bars and configuration — shared by every command
// under cmd/kinship/commands, grounded on the sibling gedcom CLI's
// own internal package (referenced throughout cmd/gedcom/commands but
// absent from the reference snapshot; reconstructed from its call
// sites, which fully specify the contract below).
package internal

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

var quietMode atomic.Bool

// SetQuietMode toggles whether PrintInfo is suppressed. PrintError and
// PrintWarning are never suppressed.
func SetQuietMode(q bool) {
	quietMode.Store(q)
}

// IsQuietMode reports the current quiet setting.
func IsQuietMode() bool {
	return quietMode.Load()
}

// InitColor enables or disables colorized output globally.
func InitColor(enabled bool) {
	color.NoColor = !enabled
}

var (
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// PrintSuccess writes a green message to stdout. No mark is added;
// callers include any "✓ " in format themselves.
func PrintSuccess(format string, args ...interface{}) {
	successColor.Fprintf(os.Stdout, format, args...)
}

// PrintInfo writes a cyan message to stdout, unless quiet mode is
// active. No mark is added to the message.
func PrintInfo(format string, args ...interface{}) {
	if quietMode.Load() {
		return
	}
	infoColor.Fprintf(os.Stdout, format, args...)
}

// PrintWarning writes a message to stdout regardless of quiet mode.
func PrintWarning(format string, args ...interface{}) {
	warnColor.Fprintf(os.Stdout, format, args...)
}

// PrintError writes a red message to stderr, never suppressed by
// quiet mode. No mark is added; callers include any "✗ " themselves.
func PrintError(format string, args ...interface{}) {
	errorColor.Fprintf(os.Stderr, format, args...)
}

// NewProgressBar returns a progress bar sized to total, or a no-op bar
// when quiet mode is active — callers call Add unconditionally and
// never branch on quiet mode themselves.
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	if quietMode.Load() {
		return progressbar.DefaultSilent(int64(total))
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// Fatalf prints an error and exits the process with status 1.
func Fatalf(format string, args ...interface{}) {
	PrintError(format, args...)
	if n := len(format); n == 0 || format[n-1] != '\n' {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(1)
}
