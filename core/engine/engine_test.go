package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/mdfix/walk"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestFixRewritesOffendingFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	writeFile(t, path, "Some text\n- item one\n- item two\n")

	rep, err := New(walk.DefaultRules()).Fix(root)
	require.NoError(t, err)

	assert.Equal(t, "Some text\n\n- item one\n\n- item two\n", readFile(t, path))
	require.Len(t, rep.Files, 1)
	assert.True(t, rep.Files[0].Fixed)
	assert.Len(t, rep.Files[0].Insertions, 2)
	assert.Equal(t, []string{path}, rep.Modified())
}

func TestFixIsIdempotent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	writeFile(t, path, "Para\n1. first\n2. second\n")

	eng := New(walk.DefaultRules())
	_, err := eng.Fix(root)
	require.NoError(t, err)
	first := readFile(t, path)

	rep, err := eng.Fix(root)
	require.NoError(t, err)
	assert.Empty(t, rep.Files)
	assert.Equal(t, first, readFile(t, path))
}

func TestFixLeavesCleanFileAlone(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "clean.md")
	writeFile(t, path, "Para\n\n- item\n")
	// A read-only file proves no write is even attempted.
	require.NoError(t, os.Chmod(path, 0o444))

	rep, err := New(walk.DefaultRules()).Fix(root)
	require.NoError(t, err)

	assert.Empty(t, rep.Files)
	assert.Equal(t, "Para\n\n- item\n", readFile(t, path))
}

func TestFixIgnoresNonMarkdownFiles(t *testing.T) {
	root := t.TempDir()
	txt := filepath.Join(root, "notes.txt")
	writeFile(t, txt, "text\n- unblanked item\n")

	rep, err := New(walk.DefaultRules()).Fix(root)
	require.NoError(t, err)

	assert.Zero(t, rep.Scanned)
	assert.Empty(t, rep.Files)
	assert.Equal(t, "text\n- unblanked item\n", readFile(t, txt))
}

func TestFixPreservesFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	writeFile(t, path, "text\n- item\n")
	require.NoError(t, os.Chmod(path, 0o600))

	_, err := New(walk.DefaultRules()).Fix(root)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCheckReportsWithoutWriting(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	content := "Some text\n- item\n"
	writeFile(t, path, content)

	rep, err := New(walk.DefaultRules()).Check(root)
	require.NoError(t, err)

	require.Len(t, rep.Files, 1)
	assert.False(t, rep.Files[0].Fixed)
	require.Len(t, rep.Files[0].Insertions, 1)
	assert.Equal(t, 2, rep.Files[0].Insertions[0].Line)
	assert.Equal(t, "- item", rep.Files[0].Insertions[0].Text)

	// File is untouched.
	assert.Equal(t, content, readFile(t, path))
	assert.Empty(t, rep.Modified())
}

func TestFixMissingRootFails(t *testing.T) {
	_, err := New(walk.DefaultRules()).Fix(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFixFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "doc.md")
	writeFile(t, path, "text\n- item\n")

	fr, err := New(walk.DefaultRules()).FixFile(path)
	require.NoError(t, err)
	assert.True(t, fr.Fixed)
	assert.Equal(t, "text\n\n- item\n", readFile(t, path))
}

func TestScannedCountsCleanFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "clean.md"), "- first line item\n")
	writeFile(t, filepath.Join(root, "dirty.md"), "text\n- item\n")

	rep, err := New(walk.DefaultRules()).Fix(root)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Scanned)
	assert.Len(t, rep.Files, 1)
}
