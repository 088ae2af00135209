// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

// Banner patterns for `pandoc --version`. They track the banner layout of
// pandoc 1.x through 3.x; the first capture group is the extracted field.
const (
	VersionPattern = `(?m)^pandoc(?:\.exe)? (.+)$`
	DataDirPattern = `Default user data directory: (.+)`
)

var (
	versionRe = regexp.MustCompile(VersionPattern)
	dataDirRe = regexp.MustCompile(DataDirPattern)
)

// ParseVersion extracts the version text following "pandoc " in banner,
// e.g. "3.1.11" or "1.17.2 Compiled with ...".
func ParseVersion(banner string) (string, bool) {
	return firstGroup(versionRe, banner)
}

// ParseDataDir extracts the default user data directory from banner.
func ParseDataDir(banner string) (string, bool) {
	return firstGroup(dataDirRe, banner)
}

func firstGroup(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// Version returns pandoc's version. ok is false when pandoc could not be run
// or its banner did not match VersionPattern.
func (c *Client) Version(ctx context.Context) (version string, ok bool) {
	banner, ok := c.banner(ctx)
	if !ok {
		return "", false
	}
	return ParseVersion(banner)
}

// DataDir returns pandoc's default user data directory. ok is false when
// pandoc could not be run or does not report one.
func (c *Client) DataDir(ctx context.Context) (dir string, ok bool) {
	banner, ok := c.banner(ctx)
	if !ok {
		return "", false
	}
	return ParseDataDir(banner)
}

func (c *Client) banner(ctx context.Context) (string, bool) {
	res, err := c.Call(ctx, NoInput(), Options{}.Flag(OptVersion))
	if err != nil {
		c.logger.Debug("version query failed", "err", err)
		return "", false
	}
	return res.Text, true
}

// ToJSON converts in to pandoc's JSON AST and decodes it into generic values
// (maps, slices, strings, float64, bool, nil). Any "to" option in opts is
// overridden. A decode problem is reported as *DecodeError; a failed process
// as *ProcessError.
func (c *Client) ToJSON(ctx context.Context, in Input, opts Options) (any, error) {
	res, err := c.Call(ctx, in, opts.Put(OptTo, "json"))
	if err != nil {
		return nil, err
	}
	if res.ToFile {
		return nil, &DecodeError{Err: errWrittenToFile}
	}

	var doc any
	if err := json.Unmarshal([]byte(res.Text), &doc); err != nil {
		return nil, &DecodeError{Text: res.Text, Err: err}
	}
	return doc, nil
}

// AST is ToJSON for callers that want the document object itself, with its
// "pandoc-api-version", "meta" and "blocks" keys.
func (c *Client) AST(ctx context.Context, in Input, opts Options) (map[string]any, error) {
	doc, err := c.ToJSON(ctx, in, opts)
	if err != nil {
		return nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &DecodeError{Err: errNotObject}
	}
	return obj, nil
}
