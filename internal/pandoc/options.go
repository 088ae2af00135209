// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pandoc

import (
	"fmt"
	"slices"
	"strings"
)

// Option names handled by the invocation layer rather than passed through
// untouched.
const (
	OptInput   = "input"
	OptOutput  = "output"
	OptTo      = "to"
	OptFrom    = "from"
	OptVersion = "version"
)

// Value is an option value: either a bare flag or a text value.
type Value struct {
	flag bool
	text string
}

// FlagValue returns a value that encodes as a bare flag (--name).
func FlagValue() Value { return Value{flag: true} }

// TextValue returns a value that encodes as --name=s.
func TextValue(s string) Value { return Value{text: s} }

// ValueOf converts v to a Value. Boolean true becomes a flag; anything else,
// including false, becomes its fmt.Sprint text.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case bool:
		if x {
			return FlagValue()
		}
	case string:
		return TextValue(x)
	}
	return TextValue(fmt.Sprint(v))
}

// IsFlag reports whether v is a bare flag.
func (v Value) IsFlag() bool { return v.flag }

// String returns the text form of v; flags render as "true".
func (v Value) String() string {
	if v.flag {
		return "true"
	}
	return v.text
}

// Option is one named entry of an option set. Names use underscores where
// pandoc's flags use dashes (e.g. "number_sections").
type Option struct {
	Name  string
	Value Value
}

// Arg encodes o as a single command-line token.
func (o Option) Arg() string {
	flag := "--" + strings.ReplaceAll(o.Name, "_", "-")
	if o.Value.flag {
		return flag
	}
	return flag + "=" + o.Value.text
}

// Options is an ordered option set. Order is kept when encoding since some
// pandoc flags are order-sensitive. Methods never modify the receiver; they
// return a new set.
type Options []Option

// Flag returns o with a bare flag appended.
func (o Options) Flag(name string) Options {
	return append(slices.Clip(o), Option{Name: name, Value: FlagValue()})
}

// Set returns o with name=v appended (see ValueOf).
func (o Options) Set(name string, v any) Options {
	return append(slices.Clip(o), Option{Name: name, Value: ValueOf(v)})
}

// Put returns o with the first entry called name replaced by v and any later
// entries of that name removed. If name is absent it is appended.
func (o Options) Put(name string, v any) Options {
	i := o.index(name)
	if i < 0 {
		return o.Set(name, v)
	}
	out := make(Options, 0, len(o))
	for j, opt := range o {
		switch {
		case j == i:
			out = append(out, Option{Name: name, Value: ValueOf(v)})
		case opt.Name == name:
		default:
			out = append(out, opt)
		}
	}
	return out
}

// Get returns the first value stored under name.
func (o Options) Get(name string) (Value, bool) {
	if i := o.index(name); i >= 0 {
		return o[i].Value, true
	}
	return Value{}, false
}

// Has reports whether name is present.
func (o Options) Has(name string) bool {
	return o.index(name) >= 0
}

// Without returns o minus every entry called name.
func (o Options) Without(name string) Options {
	out := make(Options, 0, len(o))
	for _, opt := range o {
		if opt.Name != name {
			out = append(out, opt)
		}
	}
	return out
}

func (o Options) index(name string) int {
	return slices.IndexFunc(o, func(opt Option) bool { return opt.Name == name })
}

// Args encodes the set as pandoc arguments, one token per entry, in order.
func (o Options) Args() []string {
	args := make([]string, len(o))
	for i, opt := range o {
		args[i] = opt.Arg()
	}
	return args
}

// SplitInput removes every input option from opts. The first one becomes a
// FilePath descriptor when it carries a path; a missing or bare-flag input
// yields NoInput.
func SplitInput(opts Options) (Input, Options) {
	v, ok := opts.Get(OptInput)
	if !ok {
		return NoInput(), opts
	}
	rest := opts.Without(OptInput)
	if v.IsFlag() || v.String() == "" {
		return NoInput(), rest
	}
	return FilePath(v.String()), rest
}
