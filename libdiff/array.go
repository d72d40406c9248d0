package libdiff

import (
	"github.com/jzon-format/go-jzon/encode"
	"github.com/jzon-format/go-jzon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArray diffs elements as a rune sequence over their compact
// renderings. The result is an array of replacement objects in document
// order, or nil when the arrays are equal.
func DiffArray(from, to *ir.Node) *ir.Node {
	textMap := map[string]rune{}
	fromRunes := mapValuesTo(textMap, from)
	toRunes := mapValuesTo(textMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	res := ir.NewArray()
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				res.Append(MakeDiff(from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				res.Append(MakeDiff(nil, to.Values[ti]))
				ti++
			}
		}
	}
	if res.GetCount() == 0 {
		return nil
	}
	return res
}

func mapValuesTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		text := encode.MustString(v)
		r, ok := m[text]
		if !ok {
			r = rune(len(m))
			m[text] = r
		}
		rs[i] = r
	}
	return rs
}
