package scan

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScanPath stats an input path and routes it to the matching strategy: a
// regular file is parsed directly, a directory whose base name marks an
// installation root is scanned as one, and any other directory is scanned
// as a plain log directory.
//
// The returned error is ErrNoTimestamp for a file without timestamps,
// ErrNoFilesParsed for a directory tree that yielded nothing (callers
// treat this as a warning; the partial result is still returned),
// ErrNotScannable for special files, or a wrapped I/O error.
func (s *Scanner) ScanPath(path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", path, err)
	}

	switch {
	case info.Mode().IsRegular():
		secs, err := ParseFile(path)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Files:    1,
			Seconds:  secs,
			Outcomes: []FileOutcome{{Path: path, Seconds: secs}},
		}, nil

	case info.IsDir():
		abs, err := filepath.Abs(path)
		if err != nil {
			return Result{}, fmt.Errorf("resolving %s: %w", path, err)
		}
		var res Result
		if filepath.Base(abs) == s.layout.InstallDirName {
			res = s.ScanInstall(path)
		} else {
			if res, err = s.ScanDir(path); err != nil {
				return Result{}, err
			}
		}
		if res.Files == 0 {
			return res, fmt.Errorf("%s: %w", path, ErrNoFilesParsed)
		}
		return res, nil

	default:
		return Result{}, fmt.Errorf("%s: %w", path, ErrNotScannable)
	}
}
