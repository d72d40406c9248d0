package jzon

import (
	"github.com/jzon-format/go-jzon/ir"
	"github.com/jzon-format/go-jzon/libdiff"
)

// Diff returns a document describing the differences between from and to,
// or nil when the trees are equal. See libdiff for the diff encoding.
func Diff(from, to *ir.Node) *ir.Node {
	return libdiff.DiffNode(from, to)
}
