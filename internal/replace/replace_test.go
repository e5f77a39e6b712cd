package replace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func testConfig() Config {
	return Config{
		Allow:      []string{"frontend/src/**", "backend/routes/**"},
		Deny:       []string{"frontend/src/vendor/**"},
		Extensions: []string{".js", ".md"},
		Rules: []Rule{
			{Old: "Copy ID", New: "Reference ID"},
			{Old: "copy ID", New: "Reference ID"},
		},
	}
}

func TestRun(t *testing.T) {
	root := t.TempDir()

	changed := writeFile(t, root, "frontend/src/Label.js", "show the Copy ID here")
	unchanged := writeFile(t, root, "backend/routes/users.js", "nothing relevant")
	denied := writeFile(t, root, "frontend/src/vendor/lib.js", "Copy ID")
	outside := writeFile(t, root, "backend/app.js", "Copy ID")
	wrongExt := writeFile(t, root, "frontend/src/data.json", "Copy ID")

	modified, err := Run(root, testConfig())
	require.NoError(t, err)

	t.Run("Reports only rewritten files", func(t *testing.T) {
		assert.Equal(t, []string{"frontend/src/Label.js"}, modified)
	})

	t.Run("Applies the substitution", func(t *testing.T) {
		assert.Equal(t, "show the Reference ID here", readFile(t, changed))
	})

	t.Run("Leaves everything else untouched", func(t *testing.T) {
		assert.Equal(t, "nothing relevant", readFile(t, unchanged))
		assert.Equal(t, "Copy ID", readFile(t, denied))
		assert.Equal(t, "Copy ID", readFile(t, outside))
		assert.Equal(t, "Copy ID", readFile(t, wrongExt))
	})
}

func TestRun_OrderedRules(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "frontend/src/a.js", "Copy ID and copy ID")

	modified, err := Run(root, testConfig())
	require.NoError(t, err)

	assert.Len(t, modified, 1)
	assert.Equal(t, "Reference ID and Reference ID", readFile(t, path))
}

func TestRun_SkipsInvalidUTF8(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "frontend", "src", "bin.js")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 'C', 'o', 'p', 'y'}, 0644))

	modified, err := Run(root, testConfig())
	require.NoError(t, err)
	assert.Empty(t, modified)
}

func TestRun_ModifiedPathsSorted(t *testing.T) {
	root := t.TempDir()

	// "foo-bar.md" sorts before "foo/x.md" ('-' < '/'), but the walk visits
	// the foo directory first.
	writeFile(t, root, "foo/x.md", "Copy ID")
	writeFile(t, root, "foo-bar.md", "Copy ID")

	cfg := testConfig()
	cfg.Allow = nil

	modified, err := Run(root, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo-bar.md", "foo/x.md"}, modified)
}

func TestRun_EmptyAllowMatchesEverything(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "anywhere/deep/file.md", "Copy ID")

	cfg := testConfig()
	cfg.Allow = nil

	modified, err := Run(root, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"anywhere/deep/file.md"}, modified)
	assert.Equal(t, "Reference ID", readFile(t, path))
}
