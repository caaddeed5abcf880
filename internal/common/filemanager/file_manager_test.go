package filemanager

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aleister1102/mdurl/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(path, []byte("  https://example.com  \n\n\t\nwww.example.org\n"), 0644))

	lines, err := fm.ReadLines(path, DefaultFileReadOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com", "www.example.org"}, lines)
}

func TestReadLinesFrom_KeepsWhitespaceWithoutTrim(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())

	lines, err := fm.ReadLinesFrom(strings.NewReader(" a \n\nb"), FileReadOptions{SkipEmpty: true})
	require.NoError(t, err)
	assert.Equal(t, []string{" a ", "b"}, lines)
}

func TestReadFile_Errors(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()

	_, err := fm.ReadFile(filepath.Join(dir, "missing.yaml"), DefaultFileReadOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrNotFound))

	_, err = fm.ReadFile(dir, DefaultFileReadOptions())
	var vErr *errorwrapper.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "path", vErr.Field)

	big := filepath.Join(dir, "big.txt")
	require.NoError(t, os.WriteFile(big, []byte("0123456789"), 0644))
	_, err = fm.ReadFile(big, FileReadOptions{MaxSize: 5})
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "file_size", vErr.Field)

	content, err := fm.ReadFile(big, FileReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(content))
}

func TestEnsureDirectory(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, fm.EnsureDirectory(dir, 0755))
	assert.True(t, fm.FileExists(dir))
	require.NoError(t, fm.EnsureDirectory(dir, 0755))

	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	assert.Error(t, fm.EnsureDirectory(file, 0755))
}
