// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitriid/panpipe/pkg/types"
)

// requirePandoc skips the test unless a real pandoc is on PATH.
func requirePandoc(t *testing.T) *Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping pandoc end-to-end test in short mode")
	}
	if _, err := exec.LookPath("pandoc"); err != nil {
		t.Skip("pandoc not installed")
	}
	return New(types.PandocConfig{})
}

func TestE2E_InlineConversion(t *testing.T) {
	c := requirePandoc(t)

	res, err := c.CallText(context.Background(), "# Title\nBody", Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Text)
	assert.Contains(t, res.Text, "Title")
}

func TestE2E_MissingFile(t *testing.T) {
	c := requirePandoc(t)

	_, err := c.CallOptions(context.Background(), Options{}.Set("input", filepath.Join(t.TempDir(), "missing-file.md")))

	var pe *ProcessError
	require.ErrorAs(t, err, &pe)
	assert.NotZero(t, pe.ExitStatus)
}

func TestE2E_FileToJSON(t *testing.T) {
	c := requirePandoc(t)
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nSome *emphasis*.\n"), 0o644))

	doc, err := c.ToJSON(context.Background(), FilePath(path), Options{})
	require.NoError(t, err)

	obj, ok := doc.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, obj, "blocks")
	assert.Contains(t, obj, "meta")
}

func TestE2E_ASTIsIdempotent(t *testing.T) {
	c := requirePandoc(t)
	opts := Options{}.Set("from", "markdown")

	first, err := c.AST(context.Background(), InlineText("# Title\n\nBody with `code`."), opts)
	require.NoError(t, err)
	second, err := c.AST(context.Background(), InlineText("# Title\n\nBody with `code`."), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestE2E_OutputFile(t *testing.T) {
	c := requirePandoc(t)
	out := filepath.Join(t.TempDir(), "out.html")

	res, err := c.CallText(context.Background(), "# Title", Options{}.Set("output", out))
	require.NoError(t, err)
	assert.True(t, res.ToFile)
	assert.Empty(t, res.Text)

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestE2E_Version(t *testing.T) {
	c := requirePandoc(t)

	v, ok := c.Version(context.Background())
	require.True(t, ok)
	assert.NotEmpty(t, v)
}
