package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// archive writes a rotated log whose session lasts the given seconds.
func archive(t *testing.T, dir, name string, seconds int64) {
	t.Helper()
	writeGzLog(t, filepath.Join(dir, name),
		"[01:00:00] session start",
		timestampLine(3600+seconds)+" session end",
	)
}

// timestampLine renders seconds-since-midnight as a log line prefix.
func timestampLine(secs int64) string {
	h, m, s := secs/3600, secs/60%60, secs%60
	return "[" + pad2(h) + ":" + pad2(m) + ":" + pad2(s) + "]"
}

func pad2(n int64) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}

func TestScanDir_ArchivesPlusCurrentLog(t *testing.T) {
	dir := t.TempDir()
	archive(t, dir, "2023-10-05-1.log.gz", 100)
	archive(t, dir, "2023-10-05-2.log.gz", 200)
	writeLog(t, filepath.Join(dir, "latest.log"),
		"[09:00:00] start",
		"[09:00:50] end",
	)
	writeLog(t, filepath.Join(dir, "unrelated.txt"), "[00:00:00] ignored by name")

	res, err := NewScanner(DefaultLayout()).ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Files)
	assert.Equal(t, int64(350), res.Seconds)
}

func TestScanDir_EmptyDirectory(t *testing.T) {
	res, err := NewScanner(DefaultLayout()).ScanDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Files)
	assert.Equal(t, int64(0), res.Seconds)
}

func TestScanDir_SkipsUnparseableArchive(t *testing.T) {
	dir := t.TempDir()
	archive(t, dir, "2023-10-05-1.log.gz", 100)
	writeLog(t, filepath.Join(dir, "2023-10-05-2.log.gz"), "no timestamps here")

	res, err := NewScanner(DefaultLayout()).ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
	assert.Equal(t, int64(100), res.Seconds)

	// The skip is recorded, not lost.
	var skipped int
	for _, o := range res.Outcomes {
		if !o.Parsed() {
			skipped++
			assert.ErrorIs(t, o.Err, ErrNoTimestamp)
		}
	}
	assert.Equal(t, 1, skipped)
}

func TestScanDir_CurrentLogAbsentIsFine(t *testing.T) {
	dir := t.TempDir()
	archive(t, dir, "2023-10-05-1.log.gz", 30)

	res, err := NewScanner(DefaultLayout()).ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
	assert.Equal(t, int64(30), res.Seconds)
}

func TestScanDir_ListingFailure(t *testing.T) {
	_, err := NewScanner(DefaultLayout()).ScanDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrNoTimestamp)
}
