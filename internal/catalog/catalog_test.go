// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/input-formats.txt":       {Data: []byte("+markdown\n+html\n\n+docx\n")},
		"data/output-formats.txt":      {Data: []byte("+json\r\n+latex\r\n")},
		"data/extensions.txt":          {Data: []byte("+smart\n-raw_html\n")},
		"data/highlight-languages.txt": {Data: []byte("+go\n+elixir\n")},
		"data/highlight-styles.txt":    {Data: []byte("+pygments\n+tango\n")},
	}
}

func TestLoad(t *testing.T) {
	c, err := Load(testFS())
	require.NoError(t, err)

	assert.Equal(t, []string{"markdown", "html", "docx"}, c.InputFormats())
	assert.Equal(t, []string{"json", "latex"}, c.OutputFormats())
	assert.Equal(t, []string{"+smart", "-raw_html"}, c.Extensions(), "extensions keep their marker")
	assert.Equal(t, []string{"go", "elixir"}, c.HighlightLanguages())
	assert.Equal(t, []string{"pygments", "tango"}, c.HighlightStyles())
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := testFS()
	delete(fsys, "data/highlight-styles.txt")

	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "highlight-styles")
}

func TestReadLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		strip bool
		want  []string
	}{
		{"strip marker", "+a\n-b\n c\n", true, []string{"a", "b", "c"}},
		{"verbatim", "+a\n-b\n", false, []string{"+a", "-b"}},
		{"blank lines skipped", "\n+a\n\n\n+b", true, []string{"a", "b"}},
		{"marker only line dropped", "+\n+a\n", true, []string{"a"}},
		{"empty input", "", true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLines(strings.NewReader(tt.input), tt.strip)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccessorsAppendDoesNotMutate(t *testing.T) {
	c, err := Load(testFS())
	require.NoError(t, err)

	formats := c.InputFormats()
	_ = append(formats, "injected")

	assert.Equal(t, []string{"markdown", "html", "docx"}, c.InputFormats())
}

func TestAccessorsWriteDoesNotMutate(t *testing.T) {
	c, err := Load(testFS())
	require.NoError(t, err)

	c.InputFormats()[0] = "injected"
	c.Extensions()[0] = "+injected"
	list, _ := c.Lookup(NameHighlightStyles)
	list[0] = "injected"

	assert.Equal(t, []string{"markdown", "html", "docx"}, c.InputFormats())
	assert.Equal(t, []string{"+smart", "-raw_html"}, c.Extensions())
	got, _ := c.Lookup(NameHighlightStyles)
	assert.Equal(t, []string{"pygments", "tango"}, got)
}

func TestLookup(t *testing.T) {
	c, err := Load(testFS())
	require.NoError(t, err)

	for _, name := range Names {
		list, ok := c.Lookup(name)
		assert.True(t, ok, name)
		assert.NotEmpty(t, list, name)
	}

	_, ok := c.Lookup("filters")
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	assert.Contains(t, c.InputFormats(), "markdown")
	assert.Contains(t, c.OutputFormats(), "json")
	assert.Contains(t, c.Extensions(), "+smart")
	assert.Contains(t, c.HighlightLanguages(), "go")
	assert.Contains(t, c.HighlightStyles(), "pygments")

	for _, f := range c.InputFormats() {
		assert.False(t, strings.HasPrefix(f, "+"), "marker not stripped from %q", f)
	}
}

func TestDefault_SharedAcrossGoroutines(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Catalog, 8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Default()
		}()
	}
	wg.Wait()

	for _, c := range got {
		assert.Same(t, got[0], c)
	}
}
