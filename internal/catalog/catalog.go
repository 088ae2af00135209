// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog exposes pandoc's capabilities (input and output formats,
// syntax extensions, highlight languages and styles) as read-only lists
// loaded once from bundled reference data.
//
// Reference files hold one entry per line. Every line except those in the
// extensions file carries a single leading marker character that is stripped;
// extension lines are kept verbatim because their +/- prefix records whether
// the extension is enabled by default.
package catalog

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

// Names of the bundled reference files, also used as catalog names.
const (
	NameInputFormats       = "input-formats"
	NameOutputFormats      = "output-formats"
	NameExtensions         = "extensions"
	NameHighlightLanguages = "highlight-languages"
	NameHighlightStyles    = "highlight-styles"
)

// Names lists every catalog in a stable order.
var Names = []string{
	NameInputFormats,
	NameOutputFormats,
	NameExtensions,
	NameHighlightLanguages,
	NameHighlightStyles,
}

//go:embed data/*.txt
var bundled embed.FS

// Catalog holds the parsed reference lists. It is never modified after Load
// returns, so a single value may be shared by any number of goroutines.
// Accessors return a fresh copy on every call; callers may modify the result.
type Catalog struct {
	inputFormats       []string
	outputFormats      []string
	extensions         []string
	highlightLanguages []string
	highlightStyles    []string
}

// Load reads the five reference files from fsys. Files are looked up as
// "<name>.txt" under a "data" directory.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{}
	targets := []struct {
		name  string
		strip bool
		dst   *[]string
	}{
		{NameInputFormats, true, &c.inputFormats},
		{NameOutputFormats, true, &c.outputFormats},
		{NameExtensions, false, &c.extensions},
		{NameHighlightLanguages, true, &c.highlightLanguages},
		{NameHighlightStyles, true, &c.highlightStyles},
	}
	for _, t := range targets {
		lines, err := readFile(fsys, "data/"+t.name+".txt", t.strip)
		if err != nil {
			return nil, err
		}
		*t.dst = lines
	}
	return c, nil
}

func readFile(fsys fs.FS, path string, strip bool) ([]string, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f, strip)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return lines, nil
}

// ReadLines returns the non-blank lines of r in order. When stripMarker is
// set the first character of each line is dropped.
func ReadLines(r io.Reader, stripMarker bool) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		if stripMarker {
			_, size := utf8.DecodeRuneInString(line)
			line = line[size:]
			if line == "" {
				continue
			}
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(bundled)
	if err != nil {
		panic(fmt.Sprintf("catalog: loading bundled reference data: %v", err))
	}
	return c
})

// Default returns the catalog built from the reference data compiled into the
// binary. The data is parsed on first use; a parse failure panics since the
// bundled files are part of the build.
func Default() *Catalog {
	return defaultCatalog()
}

// InputFormats returns the formats pandoc can read.
func (c *Catalog) InputFormats() []string { return slices.Clone(c.inputFormats) }

// OutputFormats returns the formats pandoc can write.
func (c *Catalog) OutputFormats() []string { return slices.Clone(c.outputFormats) }

// Extensions returns the syntax extensions, each prefixed with + when
// enabled by default and - otherwise.
func (c *Catalog) Extensions() []string { return slices.Clone(c.extensions) }

// HighlightLanguages returns the languages known to the syntax highlighter.
func (c *Catalog) HighlightLanguages() []string { return slices.Clone(c.highlightLanguages) }

// HighlightStyles returns the available highlight styles.
func (c *Catalog) HighlightStyles() []string { return slices.Clone(c.highlightStyles) }

// Lookup returns a copy of a catalog by name (see Names).
func (c *Catalog) Lookup(name string) ([]string, bool) {
	switch name {
	case NameInputFormats:
		return c.InputFormats(), true
	case NameOutputFormats:
		return c.OutputFormats(), true
	case NameExtensions:
		return c.Extensions(), true
	case NameHighlightLanguages:
		return c.HighlightLanguages(), true
	case NameHighlightStyles:
		return c.HighlightStyles(), true
	}
	return nil, false
}
