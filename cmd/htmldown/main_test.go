package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMain(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	m := NewMain()
	m.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_ConvertStdin(t *testing.T) {
	t.Parallel()

	stdout, _, err := runMain(t, "<h1>Title</h1><p>Body</p>")

	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nBody\n", stdout)
}

func TestMain_ConvertFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<h2>From file</h2>"), 0644))

	stdout, _, err := runMain(t, "", path)

	require.NoError(t, err)
	assert.Equal(t, "## From file\n", stdout)
}

func TestMain_ConvertFlags(t *testing.T) {
	t.Parallel()

	t.Run("setext headings", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t, "<h1>Title</h1>", "--heading-style=setext")

		require.NoError(t, err)
		assert.Equal(t, "Title\n=====\n", stdout)
	})

	t.Run("exclude selector", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t,
			`<p>keep</p><div class="ads">drop</div>`,
			"--exclude=.ads")

		require.NoError(t, err)
		assert.Equal(t, "keep\n", stdout)
	})

	t.Run("referenced links", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t,
			`<p><a href="https://e.com">x</a></p>`,
			"--link-style=referenced")

		require.NoError(t, err)
		assert.Equal(t, "[x][1]\n\n[1]: https://e.com\n", stdout)
	})

	t.Run("scope selector", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t,
			`<nav>menu</nav><main><p>content</p></main>`,
			"--scope=main")

		require.NoError(t, err)
		assert.Equal(t, "content\n", stdout)
	})

	t.Run("scope not found", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := runMain(t, "<p>x</p>", "--scope=#missing")

		assert.Error(t, err)
		assert.Contains(t, stderr, "no element matches")
	})

	t.Run("invalid flag value", func(t *testing.T) {
		t.Parallel()

		_, _, err := runMain(t, "<p>x</p>", "--heading-style=fancy")

		assert.Error(t, err)
	})
}

func TestMain_Toc(t *testing.T) {
	t.Parallel()

	stdout, _, err := runMain(t,
		"<h1>Guide</h1><p>x</p><h2>Install</h2>",
		"--toc")

	require.NoError(t, err)
	assert.Equal(t, "- [Guide](#guide)\n  - [Install](#install)\n", stdout)
}

func TestMain_Batch(t *testing.T) {
	t.Parallel()

	t.Run("converts a tree of html files", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		outDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "api"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>Home</h1>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "api", "users.html"), []byte("<h1>Users</h1>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(root, "style.css"), []byte("p{}"), 0644))

		stdout, _, err := runMain(t, "", "batch", root, "--out-dir="+outDir)

		require.NoError(t, err)
		assert.Contains(t, stdout, "converted 2 files")

		home, err := os.ReadFile(filepath.Join(outDir, "index.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Home", string(home))

		users, err := os.ReadFile(filepath.Join(outDir, "api", "users.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Users", string(users))
	})

	t.Run("scope selector applies to every file", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		outDir := t.TempDir()
		page := `<nav>menu</nav><main><h1>Doc</h1></main>`
		require.NoError(t, os.WriteFile(filepath.Join(root, "page.html"), []byte(page), 0644))

		_, _, err := runMain(t, "", "batch", root, "--out-dir="+outDir, "--scope=main")

		require.NoError(t, err)
		out, err := os.ReadFile(filepath.Join(outDir, "page.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Doc", string(out))
	})

	t.Run("scope with no match fails the batch", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		outDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "page.html"), []byte("<p>x</p>"), 0644))

		_, stderr, err := runMain(t, "", "batch", root, "--out-dir="+outDir, "--scope=#missing")

		assert.Error(t, err)
		assert.Contains(t, stderr, "page.html")
	})

	t.Run("empty tree reports and succeeds", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		outDir := t.TempDir()

		_, stderr, err := runMain(t, "", "batch", root, "--out-dir="+outDir)

		require.NoError(t, err)
		assert.Contains(t, stderr, "no HTML files found")
	})
}

func TestMain_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := runMain(t, "", "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "htmldown")
}
