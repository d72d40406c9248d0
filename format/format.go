package format

import (
	"errors"
	"fmt"
)

// Format controls how the encoder renders a document: whether entries are
// separated by newlines, whether a space follows name separators, and what
// indentation looks like. The zero value is the compact form.
type Format struct {
	Newline    bool
	Spacing    bool
	UseTabs    bool
	IndentSize int
}

var (
	// Standard is the human-readable preset: one entry per line,
	// tab-indented, a space after each name separator.
	Standard = Format{Newline: true, Spacing: true, UseTabs: true, IndentSize: 1}

	// Compact renders with no whitespace at all.
	Compact = Format{}
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"s":        Standard,
		"standard": Standard,
		"p":        Standard,
		"pretty":   Standard,
		"c":        Compact,
		"compact":  Compact,
		"w":        Compact,
		"wire":     Compact,
	}[v]
	if ok {
		return f, nil
	}
	return Format{}, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case Standard:
		return []byte("standard"), nil
	case Compact:
		return []byte("compact"), nil
	default:
		// plain strips the String method so %+v cannot recurse back here.
		type plain Format
		return nil, fmt.Errorf("%w: %+v is not a named format", ErrBadFormat, plain(f))
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsCompact() bool { return f == Compact }

// Indent returns the indentation string for the given nesting level.
// Indentation only exists when newlines are on.
func (f Format) Indent(level int) string {
	if !f.Newline {
		return ""
	}
	c := byte(' ')
	if f.UseTabs {
		c = '\t'
	}
	n := f.IndentSize * level
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}

// Sep returns the spacing string used after name separators and, when
// newlines are off, between entries.
func (f Format) Sep() string {
	if f.Spacing {
		return " "
	}
	return ""
}

// EOL returns the entry terminator: a newline when enabled, otherwise it
// collapses to Sep.
func (f Format) EOL() string {
	if f.Newline {
		return "\n"
	}
	return f.Sep()
}
