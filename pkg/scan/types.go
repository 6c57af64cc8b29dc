// Package scan implements the playtime calculation core: timestamp
// extraction from log lines, per-file session durations, and aggregation
// across the layouts a Minecraft installation uses for its logs.
package scan

import "errors"

// Sentinel errors classifying scan failures. Everything else returned by
// this package wraps an underlying filesystem or I/O error.
var (
	// ErrNoTimestamp reports a file that opened fine but contained no
	// line with a recognized timestamp prefix.
	ErrNoTimestamp = errors.New("no timestamp found")

	// ErrNoFilesParsed reports a directory scan that completed but
	// yielded nothing. Callers treat this as a warning, not an error.
	ErrNoFilesParsed = errors.New("no file parsed")

	// ErrNotScannable reports an input that is neither a regular file
	// nor a directory.
	ErrNotScannable = errors.New("not a directory or a regular file")
)

// FileOutcome records what happened to a single candidate file during a
// scan. Failed candidates are skipped rather than aborting the scan;
// keeping the outcome preserves the skip reason.
type FileOutcome struct {
	// Path is where the file was found.
	Path string

	// Seconds is the session duration, valid only when Err is nil.
	// May be negative when a log spans midnight; timestamps carry no
	// date, so the subtraction is kept as-is.
	Seconds int64

	// Err is nil for a parsed file, ErrNoTimestamp for a file with no
	// recognized lines, or a wrapped I/O error.
	Err error
}

// Parsed reports whether this file contributed to the totals.
func (o FileOutcome) Parsed() bool {
	return o.Err == nil
}

// Result accumulates parsed-file counts and summed session durations.
// Results compose by addition; Files is zero exactly when no file in the
// scanned tree parsed successfully.
type Result struct {
	Files    int
	Seconds  int64
	Outcomes []FileOutcome
}

// Add folds another result into r.
func (r *Result) Add(other Result) {
	r.Files += other.Files
	r.Seconds += other.Seconds
	r.Outcomes = append(r.Outcomes, other.Outcomes...)
}

// Layout names the well-known files and directories of a Minecraft
// installation. The zero value is not usable; start from DefaultLayout.
type Layout struct {
	// InstallDirName is the base name that marks a directory as an
	// installation root rather than a plain log directory.
	InstallDirName string

	// LogsDirName is the log directory inside an installation root and
	// inside each version directory.
	LogsDirName string

	// VersionsDirName is the directory of per-version installations
	// under the root. Optional on disk.
	VersionsDirName string

	// CurrentLogName is the log of the most recent run, checked in
	// every scanned directory regardless of its listing.
	CurrentLogName string
}

// DefaultLayout returns the names a stock Minecraft launcher uses.
func DefaultLayout() Layout {
	return Layout{
		InstallDirName:  ".minecraft",
		LogsDirName:     "logs",
		VersionsDirName: "versions",
		CurrentLogName:  "latest.log",
	}
}

// Scanner walks installation layouts and sums the session durations their
// logs record. All navigation is by joined path values; the process
// working directory is never changed.
type Scanner struct {
	layout Layout
}

// NewScanner creates a Scanner for the given layout.
func NewScanner(layout Layout) *Scanner {
	return &Scanner{layout: layout}
}
