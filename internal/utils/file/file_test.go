package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.txt")
	content := "# seed titles\nPet Door\n\n  Anesthetic  \r\n#skipped\nGo (programming language)\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lines, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pet Door", "Anesthetic", "Go (programming language)"}, lines)
}

func TestReadTextFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	lines, err := ReadTextFile(path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadTextFileMissing(t *testing.T) {
	_, err := ReadTextFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
