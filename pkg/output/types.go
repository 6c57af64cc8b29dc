// Package output provides formatting and report generation for scan
// results.
package output

import (
	"github.com/happyarno/mc-playtime/pkg/scan"
)

// Report is the complete scan output.
type Report struct {
	// Files lists every successfully parsed log with its duration.
	Files []FileReport `json:"files"`

	// Skipped lists candidate files that were found but not parsed.
	Skipped []SkippedFile `json:"skipped,omitempty"`

	// Failures lists input paths that contributed nothing.
	Failures []InputFailure `json:"failures,omitempty"`

	// Summary holds the running totals.
	Summary Summary `json:"summary"`
}

// FileReport is one parsed log file.
type FileReport struct {
	Path    string `json:"path"`
	Seconds int64  `json:"seconds"`
}

// SkippedFile is a candidate file that failed to open or carried no
// timestamps. Skips never abort a scan; they are recorded for
// inspection.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// FailureKind classifies a per-input failure.
type FailureKind string

const (
	// KindError is a system or format failure for the input.
	KindError FailureKind = "error"
	// KindWarning means the input was scanned but nothing parsed.
	KindWarning FailureKind = "warning"
)

// InputFailure is one top-level input path that was excluded from the
// totals.
type InputFailure struct {
	Path    string      `json:"path"`
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
}

// Summary provides the totals across all inputs.
type Summary struct {
	// FilesParsed counts every file that contributed a duration.
	FilesParsed int `json:"files_parsed"`

	// TotalSeconds is the summed playtime. Signed: a log spanning
	// midnight contributes a negative duration.
	TotalSeconds int64 `json:"total_seconds"`
}

// Clock returns the total as whole hours, leftover minutes and leftover
// seconds, truncating toward zero like the raw division does.
func (s Summary) Clock() (hours, minutes, seconds int64) {
	t := s.TotalSeconds
	return t / 60 / 60, t / 60 % 60, t % 60
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// AddResult folds one input path's scan result into the report.
func (r *Report) AddResult(res scan.Result) {
	for _, o := range res.Outcomes {
		if o.Parsed() {
			r.Files = append(r.Files, FileReport{Path: o.Path, Seconds: o.Seconds})
		} else {
			r.Skipped = append(r.Skipped, SkippedFile{Path: o.Path, Reason: o.Err.Error()})
		}
	}
	r.Summary.FilesParsed += res.Files
	r.Summary.TotalSeconds += res.Seconds
}

// AddFailure records an input path that was excluded from the totals.
func (r *Report) AddFailure(path string, kind FailureKind, message string) {
	r.Failures = append(r.Failures, InputFailure{Path: path, Kind: kind, Message: message})
}
