// Package jzon is a schema-free JSON document library: a mutable tree
// model (ir), a two-phase parser (token + parse), and a configurable
// serializer (encode). This package bundles the common entry points.
package jzon

import (
	"github.com/jzon-format/go-jzon/encode"
	"github.com/jzon-format/go-jzon/format"
	"github.com/jzon-format/go-jzon/ir"
	"github.com/jzon-format/go-jzon/parse"
)

// Parse assembles text into root. The root's kind, fixed by the caller,
// constrains the accepted top-level shape.
func Parse(root *ir.Node, text string, opts ...parse.ParseOption) error {
	return parse.ParseString(root, text, opts...)
}

// Write renders root to a string under f.
func Write(root *ir.Node, f format.Format) string {
	return encode.MustString(root, encode.EncodeFormat(f))
}

// DetermineKind reports the root kind a document requires.
func DetermineKind(text string) ir.Kind {
	return parse.DetermineKind([]byte(text))
}
