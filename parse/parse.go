// Package parse assembles JSON text into ir document trees.
package parse

import (
	"fmt"

	"github.com/jzon-format/go-jzon/debug"
	"github.com/jzon-format/go-jzon/ir"
	"github.com/jzon-format/go-jzon/token"
)

// Parse tokenizes d and assembles the result into root. The root's kind
// must be set by the caller beforehand and constrains the accepted
// top-level shape: an Object-kind root accepts only {...} documents, an
// Array-kind root only [...], a Value-kind root only scalars.
//
// On error the root's contents are unspecified; callers that need the old
// contents back should parse into a scratch node.
func Parse(root *ir.Node, d []byte, opts ...ParseOption) error {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, lits := token.Tokenize(nil, d)
	if debug.Tokens() {
		debug.Logf("parse: %d tokens, %d literals\n", len(toks), len(lits))
	}
	if err := assemble(root, toks, lits, pOpts); err != nil {
		return err
	}
	if debug.Parse() {
		debug.Logf("parse: %v\n", root)
	}
	return nil
}

// ParseString is Parse for string input.
func ParseString(root *ir.Node, s string, opts ...ParseOption) error {
	return Parse(root, []byte(s), opts...)
}

// DetermineKind reports the node kind a document requires of its root,
// judged from the first significant character.
func DetermineKind(d []byte) ir.Kind {
	for _, c := range d {
		switch c {
		case ' ', '\t', '\n', '\r', '\f':
			continue
		case '{':
			return ir.ObjectKind
		case '[':
			return ir.ArrayKind
		default:
			return ir.ValueKind
		}
	}
	return ir.ValueKind
}

// frame is an in-progress container plus the name it will be attached
// under once closed.
type frame struct {
	name string
	node *ir.Node
}

func assemble(root *ir.Node, toks []token.Token, lits []token.Literal, opts *parseOpts) error {
	var (
		stack   []frame
		pending string
		li      int
	)
	for ti := 0; ti < len(toks); ti++ {
		tok := &toks[ti]
		switch tok.Type {
		case token.TUnknown:
			lit := &lits[li]
			return fmt.Errorf("%w %q at %s", ErrUnknownToken, lit.Text, lit.Pos)

		case token.TObjBegin:
			node, err := openContainer(root, stack, ir.ObjectKind, tok.Pos)
			if err != nil {
				return err
			}
			trackPos(node, tok.Pos, opts)
			stack = append(stack, frame{name: pending, node: node})
			pending = ""

		case token.TArrBegin:
			node, err := openContainer(root, stack, ir.ArrayKind, tok.Pos)
			if err != nil {
				return err
			}
			trackPos(node, tok.Pos, opts)
			stack = append(stack, frame{name: pending, node: node})
			pending = ""

		case token.TObjEnd, token.TArrEnd:
			if len(stack) == 0 {
				return fmt.Errorf("%w at %s", ErrUnmatchedClose, tok.Pos)
			}
			top := stack[len(stack)-1]
			want := ir.ObjectKind
			if tok.Type == token.TArrEnd {
				want = ir.ArrayKind
			}
			if top.node.Kind != want {
				return fmt.Errorf("%w: %s closed as %s at %s",
					ErrCloseMismatch, top.node.Kind, want, tok.Pos)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			if err := attach(stack[len(stack)-1].node, top.name, top.node, tok.Pos); err != nil {
				return err
			}

		case token.TValue:
			lit := &lits[li]
			li++
			if ti+1 < len(toks) && toks[ti+1].Type == token.TColon {
				// name position: value followed by name separator
				if lit.Type != token.LitString {
					return fmt.Errorf("%w: got %s at %s", ErrNameNotString, lit.Type, lit.Pos)
				}
				pending = token.Unescape(lit.Text)
				ti++ // consume the separator
				continue
			}
			if len(stack) == 0 {
				if root.Kind != ir.ValueKind {
					return fmt.Errorf("%w: root is %s, document is a scalar at %s",
						ErrRootKind, root.Kind, lit.Pos)
				}
				v := litNode(lit)
				root.ValueType = v.ValueType
				root.Text = v.Text
				trackPos(root, lit.Pos, opts)
				continue
			}
			node := litNode(lit)
			trackPos(node, lit.Pos, opts)
			if err := attach(stack[len(stack)-1].node, pending, node, lit.Pos); err != nil {
				return err
			}
			pending = ""

		case token.TColon, token.TComma:
			// structural no-ops: membership is driven by the value
			// and close transitions
		}
	}
	if len(stack) != 0 && !opts.allowUnclosed {
		return fmt.Errorf("%w: %d open at end of input", ErrUnclosed, len(stack))
	}
	return nil
}

// openContainer yields the node a begin token creates: the caller's root at
// top level (after checking its kind), a fresh container otherwise.
func openContainer(root *ir.Node, stack []frame, kind ir.Kind, pos token.Pos) (*ir.Node, error) {
	if len(stack) > 0 {
		return &ir.Node{Kind: kind}, nil
	}
	if root.Kind != kind {
		return nil, fmt.Errorf("%w: root is %s, document opens %s at %s",
			ErrRootKind, root.Kind, kind, pos)
	}
	return root, nil
}

func attach(parent *ir.Node, name string, child *ir.Node, pos token.Pos) error {
	switch parent.Kind {
	case ir.ObjectKind:
		return parent.Add(name, child)
	case ir.ArrayKind:
		return parent.Append(child)
	default:
		return fmt.Errorf("%w at %s", ErrChildTarget, pos)
	}
}

func litNode(lit *token.Literal) *ir.Node {
	switch lit.Type {
	case token.LitNull:
		return ir.Null()
	case token.LitString:
		return ir.FromLiteral(ir.StringValue, token.Unescape(lit.Text))
	case token.LitNumber:
		return ir.FromLiteral(ir.NumberValue, lit.Text)
	default:
		return ir.FromLiteral(ir.BoolValue, lit.Text)
	}
}

func trackPos(node *ir.Node, pos token.Pos, opts *parseOpts) {
	if opts.positions != nil {
		p := pos
		opts.positions[node] = &p
	}
}
