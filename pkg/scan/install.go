package scan

import (
	"os"
	"path/filepath"
)

// ScanInstall sums playtime across an installation root: its primary log
// directory plus the log directory of every entry under versions. A
// missing log or versions directory contributes nothing; per-version scan
// failures are skipped. ScanInstall itself cannot fail, so the result's
// Files field is the only signal that nothing was found.
func (s *Scanner) ScanInstall(root string) Result {
	var res Result
	if sub, err := s.ScanDir(filepath.Join(root, s.layout.LogsDirName)); err == nil {
		res.Add(sub)
	}

	versions := filepath.Join(root, s.layout.VersionsDirName)
	entries, err := os.ReadDir(versions)
	if err != nil {
		return res
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		logs := filepath.Join(versions, entry.Name(), s.layout.LogsDirName)
		if sub, err := s.ScanDir(logs); err == nil {
			res.Add(sub)
		}
	}
	return res
}
