//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/sh"
)

const catalogDir = "internal/catalog/data"

// catalogSources maps each bundled catalog file to the pandoc flag that
// lists it. Extensions are stored as printed; every other list gets a "+"
// marker per line, which the catalog loader strips.
var catalogSources = []struct {
	file   string
	flag   string
	marker bool
}{
	{"input-formats.txt", "--list-input-formats", true},
	{"output-formats.txt", "--list-output-formats", true},
	{"extensions.txt", "--list-extensions", false},
	{"highlight-languages.txt", "--list-highlight-languages", true},
	{"highlight-styles.txt", "--list-highlight-styles", true},
}

// RefreshCatalog regenerates the bundled catalog files from the pandoc on
// PATH (or $PANDOC).
func RefreshCatalog() error {
	bin := os.Getenv("PANDOC")
	if bin == "" {
		bin = "pandoc"
	}
	version, err := sh.Output(bin, "--version")
	if err != nil {
		return fmt.Errorf("running %s --version: %w", bin, err)
	}
	fmt.Println("Using", strings.SplitN(version, "\n", 2)[0])

	for _, src := range catalogSources {
		out, err := sh.Output(bin, src.flag)
		if err != nil {
			return fmt.Errorf("running %s %s: %w", bin, src.flag, err)
		}

		var b strings.Builder
		for _, line := range strings.Split(out, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if src.marker {
				b.WriteString("+")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		path := filepath.Join(catalogDir, src.file)
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Println("  ", path)
	}
	return nil
}
