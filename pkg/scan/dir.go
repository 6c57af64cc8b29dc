package scan

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScanDir sums the session durations of every recognized log in a single
// directory: each entry whose name matches the rotated-log template, plus
// the current log, which is tried regardless of what the listing
// contained. A file that fails to open or parse is recorded in the
// outcomes and skipped; only a failure to list the directory itself is an
// error. Files may legitimately be zero.
func (s *Scanner) ScanDir(dir string) (Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Result{}, fmt.Errorf("listing %s: %w", dir, err)
	}

	var res Result
	for _, entry := range entries {
		if !IsArchivedLog(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		secs, err := ParseFile(path)
		res.Outcomes = append(res.Outcomes, FileOutcome{Path: path, Seconds: secs, Err: err})
		if err != nil {
			continue
		}
		res.Files++
		res.Seconds += secs
	}

	current := filepath.Join(dir, s.layout.CurrentLogName)
	if secs, err := ParseFile(current); err == nil {
		res.Outcomes = append(res.Outcomes, FileOutcome{Path: current, Seconds: secs})
		res.Files++
		res.Seconds += secs
	}

	return res, nil
}
