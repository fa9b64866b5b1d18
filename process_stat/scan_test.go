package process_stat

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"myps/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeProc creates base/<name>/stat holding record
func writeProc(t *testing.T, base, name, record string) {
	t.Helper()
	dir := filepath.Join(base, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stat"), []byte(record), 0o644))
}

func statRecord(pid int, name string, state byte) string {
	return fmt.Sprintf("%d %s %c 1 0 0 0 0 0 0 0 0 0 100 200 0 0 20 0 1\n", pid, name, state)
}

func TestStatPath(t *testing.T) {
	assert.Equal(t, "/proc/42/stat", StatPath("/proc", "42"))
	assert.Equal(t, "fixtures/7/stat", StatPath("fixtures/", "7"))
}

func TestListSources(t *testing.T) {
	base := t.TempDir()
	writeProc(t, base, "1", statRecord(1, "(init)", 'S'))
	writeProc(t, base, "200", statRecord(200, "(sh)", 'S'))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "sys"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "5"), []byte("not a dir"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "uptime"), nil, 0o644))

	names, err := ListSources(base)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "200"}, names)
}

func TestListSourcesMissingDir(t *testing.T) {
	_, err := ListSources(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, process.ErrSourceUnavailable)
}

func TestScannerCollect(t *testing.T) {
	base := t.TempDir()
	writeProc(t, base, "50", statRecord(50, "(bash)", 'S'))
	writeProc(t, base, "3", statRecord(3, "(Zsh)", 'R'))
	writeProc(t, base, "200", statRecord(200, "((weird))", 'Z'))

	s := NewScanner(base)
	entries, summary, err := s.Collect()
	require.NoError(t, err)
	assert.Zero(t, summary.Count())
	require.Len(t, entries, 3)

	byPID := map[process.ProcessID]*process.Entry{}
	for _, e := range entries {
		byPID[e.PID] = e
	}
	assert.Equal(t, "((weird))", byPID[200].Name)
	assert.Equal(t, filepath.Join(base, "3", "stat"), byPID[3].StatPath)
}

func TestScannerCollectAbortsOnFirstFailure(t *testing.T) {
	base := t.TempDir()
	writeProc(t, base, "1", statRecord(1, "(init)", 'S'))
	writeProc(t, base, "2", "2 (broken")

	entries, _, err := NewScanner(base).Collect()
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, process.ErrMalformedRecord)
}

func TestScannerCollectMissingStatFile(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "9"), 0o755))

	_, _, err := NewScanner(base).Collect()
	assert.ErrorIs(t, err, process.ErrSourceUnavailable)
}

func TestScannerSkipMalformed(t *testing.T) {
	base := t.TempDir()
	writeProc(t, base, "1", statRecord(1, "(init)", 'S'))
	writeProc(t, base, "2", "2 (broken")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "3"), 0o755))

	s := NewScanner(base)
	s.SkipMalformed = true
	entries, summary, err := s.Collect()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, process.ProcessID(1), entries[0].PID)
	require.Equal(t, 2, summary.Count())
	assert.Equal(t, "skipped 2 unreadable or malformed records", summary.String())
}

func TestScannerCollectFromKeepsOrder(t *testing.T) {
	base := t.TempDir()
	writeProc(t, base, "9", statRecord(9, "(b)", 'S'))
	writeProc(t, base, "4", statRecord(4, "(a)", 'S'))

	entries, _, err := NewScanner(base).CollectFrom([]string{
		StatPath(base, "9"),
		StatPath(base, "4"),
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, process.ProcessID(9), entries[0].PID)
	assert.Equal(t, process.ProcessID(4), entries[1].PID)
}

func TestNewScannerDefaultsToProc(t *testing.T) {
	assert.Equal(t, DefaultBaseDir, NewScanner("").BaseDir)
}

func TestClockTicks(t *testing.T) {
	assert.NotZero(t, ClockTicks())
}
