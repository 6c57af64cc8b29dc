package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanPath_RegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latest.log")
	writeLog(t, path, "[08:00:00] start", "[08:10:00] end")

	res, err := NewScanner(DefaultLayout()).ScanPath(path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
	assert.Equal(t, int64(600), res.Seconds)
}

func TestScanPath_FileWithoutTimestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.properties")
	writeLog(t, path, "motd=A Minecraft Server")

	_, err := NewScanner(DefaultLayout()).ScanPath(path)
	assert.ErrorIs(t, err, ErrNoTimestamp)
}

func TestScanPath_PlainLogDirectory(t *testing.T) {
	dir := t.TempDir()
	archive(t, dir, "2023-10-05-1.log.gz", 100)

	res, err := NewScanner(DefaultLayout()).ScanPath(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
	assert.Equal(t, int64(100), res.Seconds)
}

func TestScanPath_InstallationRootByBaseName(t *testing.T) {
	root := installTree(t, "1.20.1")
	archive(t, filepath.Join(root, "logs"), "2023-10-05-1.log.gz", 10)
	archive(t, filepath.Join(root, "versions", "1.20.1", "logs"), "2023-10-06-1.log.gz", 5)

	// Routed by base name: the versions tree is included, which a plain
	// directory scan would never reach.
	res, err := NewScanner(DefaultLayout()).ScanPath(root)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Files)
	assert.Equal(t, int64(15), res.Seconds)
}

func TestScanPath_RelativeInstallationRoot(t *testing.T) {
	root := installTree(t)
	archive(t, filepath.Join(root, "logs"), "2023-10-05-1.log.gz", 10)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(filepath.Dir(root)))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Base-name classification must work on a relative path too.
	res, err := NewScanner(DefaultLayout()).ScanPath(".minecraft")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
}

func TestScanPath_NothingParsedIsWarning(t *testing.T) {
	res, err := NewScanner(DefaultLayout()).ScanPath(t.TempDir())
	assert.ErrorIs(t, err, ErrNoFilesParsed)
	assert.Equal(t, 0, res.Files)
}

func TestScanPath_MissingPath(t *testing.T) {
	_, err := NewScanner(DefaultLayout()).ScanPath(filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScanPath_Associativity(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	archive(t, a, "2023-10-05-1.log.gz", 100)
	archive(t, b, "2023-10-05-1.log.gz", 200)

	s := NewScanner(DefaultLayout())
	ra, err := s.ScanPath(a)
	require.NoError(t, err)
	rb, err := s.ScanPath(b)
	require.NoError(t, err)

	var combined Result
	combined.Add(ra)
	combined.Add(rb)
	assert.Equal(t, 2, combined.Files)
	assert.Equal(t, int64(300), combined.Seconds)
}
