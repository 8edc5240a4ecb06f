package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("content\n"), 0o644))
}

func TestDiscoverFindsMarkdownRecursively(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"))
	writeFile(t, filepath.Join(root, "sub", "b.md"))
	writeFile(t, filepath.Join(root, "sub", "deeper", "c.md"))
	writeFile(t, filepath.Join(root, "notes.txt"))

	got, err := Discover(root, DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.md"),
		filepath.Join(root, "sub", "b.md"),
		filepath.Join(root, "sub", "deeper", "c.md"),
	}, got)
}

func TestDiscoverSkipsVendorTrees(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.md"))
	writeFile(t, filepath.Join(root, ".git", "skip.md"))
	writeFile(t, filepath.Join(root, "node_modules", "skip.md"))
	writeFile(t, filepath.Join(root, "vendor", "skip.md"))

	got, err := Discover(root, DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "keep.md")}, got)
}

func TestDiscoverHonorsExcludeList(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.md"))
	writeFile(t, filepath.Join(root, "drafts", "skip.md"))

	rules := DefaultRules()
	rules.Exclude = []string{"drafts"}

	got, err := Discover(root, rules)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "keep.md")}, got)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), DefaultRules())
	assert.Error(t, err)
}

func TestMatchIsCaseSensitive(t *testing.T) {
	rules := DefaultRules()
	assert.True(t, rules.Match("README.md"))
	assert.False(t, rules.Match("README.MD"))
	assert.False(t, rules.Match("readme.markdown"))

	rules.Extensions = []string{".md", ".markdown"}
	assert.True(t, rules.Match("readme.markdown"))
}

func TestSkipDir(t *testing.T) {
	rules := Rules{Exclude: []string{"build"}}
	assert.True(t, rules.SkipDir(".git"))
	assert.True(t, rules.SkipDir("build"))
	assert.False(t, rules.SkipDir("docs"))
}
