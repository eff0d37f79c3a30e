package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_SaveFile(t *testing.T) {
	dir := t.TempDir()
	s := &Storage{Dir: dir}

	path, err := s.SaveFile("example_extracted.json", []byte(`{"a": 1}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example_extracted.json"), path)

	data, err := s.ReadFile("example_extracted.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(data))
}

func TestStorage_SaveFileOverwrites(t *testing.T) {
	s := &Storage{Dir: t.TempDir()}

	_, err := s.SaveFile("out.json", []byte("a much longer first version"))
	require.NoError(t, err)
	_, err = s.SaveFile("out.json", []byte("short"))
	require.NoError(t, err)

	data, err := s.ReadFile("out.json")
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))

	entries, err := os.ReadDir(s.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStorage_SaveFileCreatesDir(t *testing.T) {
	s := &Storage{Dir: filepath.Join(t.TempDir(), "nested", "out")}

	_, err := s.SaveFile("x.json", []byte("{}"))
	require.NoError(t, err)
}

func TestStorage_PathWithoutDir(t *testing.T) {
	s := &Storage{}
	assert.Equal(t, "x.json", s.Path("x.json"))
}
