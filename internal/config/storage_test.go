package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_SaveLoadDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir)

	require.NoError(t, s.Save(ReportsDir, "run-1", []byte("runId: run-1\n")))
	assert.FileExists(t, filepath.Join(dir, ReportsDir, "run-1.yaml"))

	data, err := s.Load(ReportsDir, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "runId: run-1\n", string(data))

	require.NoError(t, s.Delete(ReportsDir, "run-1"))
	_, err = s.Load(ReportsDir, "run-1")
	assert.ErrorContains(t, err, "not found")
	assert.ErrorContains(t, s.Delete(ReportsDir, "run-1"), "not found")
}

func TestStorage_RejectsEmptyKeys(t *testing.T) {
	s := NewStorage(t.TempDir())

	assert.Error(t, s.Save("", "x", nil))
	assert.Error(t, s.Save(ReportsDir, "", nil))
	_, err := s.Load(ReportsDir, "")
	assert.Error(t, err)
	_, err = s.List("")
	assert.Error(t, err)
}

func TestStorage_ListOldestFirstAndPrune(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir)

	names, err := s.List(ReportsDir)
	require.NoError(t, err)
	assert.Empty(t, names)

	base := time.Now().Add(-time.Hour)
	for i, name := range []string{"c", "a", "b"} {
		require.NoError(t, s.Save(ReportsDir, name, []byte(name)))
		path := filepath.Join(dir, ReportsDir, name+".yaml")
		stamp := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, stamp, stamp))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, ReportsDir, "notes.txt"), []byte("x"), 0644))

	names, err = s.List(ReportsDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, names)

	removed, err := s.Prune(ReportsDir, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	names, err = s.List(ReportsDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	removed, err = s.Prune(ReportsDir, 0)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestStorage_EqualModTimesOrderByName(t *testing.T) {
	dir := t.TempDir()
	s := NewStorage(dir)

	stamp := time.Now().Truncate(time.Second)
	for _, name := range []string{"0190a000-0002", "0190a000-0001", "0190a000-0003"} {
		require.NoError(t, s.Save(ReportsDir, name, []byte(name)))
		path := filepath.Join(dir, ReportsDir, name+".yaml")
		require.NoError(t, os.Chtimes(path, stamp, stamp))
	}

	removed, err := s.Prune(ReportsDir, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	names, err := s.List(ReportsDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"0190a000-0003"}, names)
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"simple":            "simple",
		"with spaces":       "with_spaces",
		"a/b\\c:d":          "a_b_c_d",
		"..hidden..":        "hidden",
		"***":               "unnamed",
		"v1.2.3":            "v1_2_3",
		"__leading__trail_": "leading_trail",
	}
	for in, expected := range tests {
		assert.Equal(t, expected, sanitizeFilename(in), in)
	}
}
