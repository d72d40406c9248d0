package parse

import (
	"github.com/jzon-format/go-jzon/ir"
	"github.com/jzon-format/go-jzon/token"
)

type parseOpts struct {
	allowUnclosed bool
	positions     map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// AllowUnclosed accepts input whose containers are never closed (for
// example a truncated document missing its final brackets). The containers
// still open at end of input are discarded; only fully closed structure is
// attached to the root.
func AllowUnclosed(v bool) ParseOption {
	return func(o *parseOpts) { o.allowUnclosed = v }
}

// ParsePositions records the input position of every node the parser
// attaches into m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
