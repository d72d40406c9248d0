package ir

import (
	"cmp"
	"strconv"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Unlike Equal, numbers compare by numeric value, so 1.0 and 1 order the
// same.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a)
	rankB := rank(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch a.Kind {
	case ObjectKind:
		return compareObjects(a, b)
	case ArrayKind:
		return compareArrays(a, b)
	}
	switch a.ValueType {
	case NullValue:
		return 0
	case BoolValue:
		if a.Text == b.Text {
			return 0
		}
		if a.Text == "false" {
			return -1
		}
		return 1
	case NumberValue:
		return compareNumbers(a, b)
	case StringValue:
		return strings.Compare(a.Text, b.Text)
	}
	return 0
}

// rank returns the sorting rank of a node.
// Order: Null < Bool < Number < String < Array < Object.
func rank(y *Node) int {
	switch y.Kind {
	case ArrayKind:
		return 4
	case ObjectKind:
		return 5
	}
	switch y.ValueType {
	case NullValue:
		return 0
	case BoolValue:
		return 1
	case NumberValue:
		return 2
	default:
		return 3
	}
}

func compareNumbers(a, b *Node) int {
	af, aErr := strconv.ParseFloat(a.Text, 64)
	bf, bErr := strconv.ParseFloat(b.Text, 64)
	if aErr != nil || bErr != nil {
		// fall back on text for numbers outside float range
		return strings.Compare(a.Text, b.Text)
	}
	return cmp.Compare(af, bf)
}

func compareArrays(a, b *Node) int {
	n := min(len(a.Values), len(b.Values))
	for i := 0; i < n; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareObjects(a, b *Node) int {
	n := min(len(a.Fields), len(b.Fields))
	for i := 0; i < n; i++ {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}
