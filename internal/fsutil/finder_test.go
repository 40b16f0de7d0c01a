package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<transformation/>"), 0o644))
}

func TestFindDocuments(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.ktr"))
	touch(t, filepath.Join(root, "b.kjb"))
	touch(t, filepath.Join(root, "nested", "c.xml"))
	touch(t, filepath.Join(root, "UPPER.KTR"))
	touch(t, filepath.Join(root, "ignore.txt"))

	files, err := FindDocuments(root)
	require.NoError(t, err)
	require.Len(t, files, 4)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	assert.ElementsMatch(t, []string{"a.ktr", "b.kjb", "c.xml", "UPPER.KTR"}, names)
}

func TestFindDocuments_MissingRoot(t *testing.T) {
	_, err := FindDocuments(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
