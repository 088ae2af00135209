// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import "github.com/dmitriid/panpipe/pkg/types"

// Input describes how the document reaches pandoc. Exactly one mode is
// active; the zero value is NoInput.
type Input struct {
	mode types.InputMode
	path string
	data []byte
}

// NoInput returns a descriptor for calls that read nothing (e.g. --version).
func NoInput() Input { return Input{mode: types.InputNone} }

// FilePath returns a descriptor that passes path to pandoc as a positional
// argument.
func FilePath(path string) Input { return Input{mode: types.InputFile, path: path} }

// InlineData returns a descriptor that pipes data to pandoc's standard input.
func InlineData(data []byte) Input { return Input{mode: types.InputInline, data: data} }

// InlineText is InlineData for a string.
func InlineText(text string) Input { return InlineData([]byte(text)) }

// Mode returns the active mode.
func (in Input) Mode() types.InputMode {
	if in.mode == "" {
		return types.InputNone
	}
	return in.mode
}

// Path returns the file path in file mode.
func (in Input) Path() string { return in.path }

// Data returns the inline payload in inline mode.
func (in Input) Data() []byte { return in.data }
