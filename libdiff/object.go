package libdiff

import (
	"github.com/jzon-format/go-jzon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffFunc computes the diff of two nodes, nil meaning no difference.
type DiffFunc func(from, to *ir.Node) *ir.Node

// DiffNode diffs two trees, returning nil when they are equal.
func DiffNode(from, to *ir.Node) *ir.Node {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil || from.Kind != to.Kind {
		return MakeDiff(from, to)
	}
	switch from.Kind {
	case ir.ObjectKind:
		return DiffObject(from, to, DiffNode)
	case ir.ArrayKind:
		return DiffArray(from, to)
	default:
		if ir.Equal(from, to) {
			return nil
		}
		return MakeDiff(from, to)
	}
}

// MakeDiff encodes a replacement: "-" holds the removed side, "+" the
// added one; a pure insertion or deletion omits the absent side.
func MakeDiff(from, to *ir.Node) *ir.Node {
	res := ir.NewObject()
	if from != nil {
		res.Add("-", from)
	}
	if to != nil {
		res.Add("+", to)
	}
	return res
}

// DiffObject diffs field names as a rune sequence, then recurses with df on
// fields present on both sides.
func DiffObject(from, to *ir.Node, df DiffFunc) *ir.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	resMap := map[string]*ir.Node{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = MakeDiff(from.Values[fi], nil)
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				fRes := df(from.Values[fi], to.Values[ti])
				if fRes != nil {
					resMap[runeMap[r]] = fRes
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = MakeDiff(nil, to.Values[ti])
				ti++
			}
		}
	}
	if len(resMap) == 0 {
		return nil
	}
	return ir.FromMap(resMap)
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
