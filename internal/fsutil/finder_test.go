package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// writeTree creates every file in files (relative paths) under root.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		full := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	writeTree(t, root,
		"Foo.ts",
		"notes.txt",
		"src/Bar.ts",
		"src/deep/nested/Baz.ts",
		"src/deep/readme.md",
		"src/Component.tsx",
	)
	// A directory whose name ends with the extension must not be returned.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "types.ts"), 0o755))
	writeTree(t, root, "types.ts/Inner.ts")

	// --- Act ---
	files, err := FindFilesByExtension(root, ".ts")

	// --- Assert ---
	require.NoError(t, err)
	expected := []string{
		filepath.Join(root, "Foo.ts"),
		filepath.Join(root, "src", "Bar.ts"),
		filepath.Join(root, "src", "deep", "nested", "Baz.ts"),
		filepath.Join(root, "types.ts", "Inner.ts"),
	}
	if diff := cmp.Diff(expected, files); diff != "" {
		t.Errorf("FindFilesByExtension() mismatch (-want +got):\n%s", diff)
	}
}

func TestFindFilesByExtension_EmptyTree(t *testing.T) {
	t.Parallel()

	files, err := FindFilesByExtension(t.TempDir(), ".ts")

	require.NoError(t, err)
	require.Empty(t, files)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := FindFilesByExtension(missing, ".ts")

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir(), "")
	})
}

func TestFindFilesByExtension_SkipsSymlinks(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	writeTree(t, root, "Real.ts", "target.txt")
	if err := os.Symlink(filepath.Join(root, "target.txt"), filepath.Join(root, "Linked.ts")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	// --- Act ---
	files, err := FindFilesByExtension(root, ".ts")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "Real.ts")}, files)
}
