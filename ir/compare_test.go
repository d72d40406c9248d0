package ir

import "testing"

func TestCompareRanks(t *testing.T) {
	// Null < Bool < Number < String < Array < Object
	ordered := []*Node{
		Null(),
		FromBool(true),
		FromInt(1),
		FromString("a"),
		NewArray(),
		NewObject(),
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if got != want {
				t.Errorf("Compare(rank %d, rank %d) = %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestCompareScalars(t *testing.T) {
	cases := []struct {
		a, b *Node
		want int
	}{
		{a: FromBool(false), b: FromBool(true), want: -1},
		{a: FromInt(1), b: FromInt(2), want: -1},
		// numeric, not textual: 9 < 10
		{a: FromInt(9), b: FromInt(10), want: -1},
		// value equality across representations
		{a: FromLiteral(NumberValue, "1.0"), b: FromInt(1), want: 0},
		{a: FromString("a"), b: FromString("b"), want: -1},
		{a: Null(), b: Null(), want: 0},
	}
	for i, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Errorf("case %d: Compare = %d, want %d", i, got, c.want)
		}
		if got := Compare(c.b, c.a); got != -c.want {
			t.Errorf("case %d: reversed Compare = %d, want %d", i, got, -c.want)
		}
	}
}

func TestCompareContainers(t *testing.T) {
	mkArr := func(vs ...int64) *Node {
		a := NewArray()
		for _, v := range vs {
			a.Append(FromInt(v))
		}
		return a
	}
	if got := Compare(mkArr(1, 2), mkArr(1, 3)); got != -1 {
		t.Errorf("array element order: %d", got)
	}
	// a prefix sorts first
	if got := Compare(mkArr(1), mkArr(1, 0)); got != -1 {
		t.Errorf("array length order: %d", got)
	}

	mkObj := func(pairs ...string) *Node {
		o := NewObject()
		for i := 0; i+1 < len(pairs); i += 2 {
			o.Add(pairs[i], FromString(pairs[i+1]))
		}
		return o
	}
	if got := Compare(mkObj("a", "1"), mkObj("b", "1")); got != -1 {
		t.Errorf("object field order: %d", got)
	}
	if got := Compare(mkObj("a", "1"), mkObj("a", "2")); got != -1 {
		t.Errorf("object value order: %d", got)
	}
	if got := Compare(mkObj("a", "1"), mkObj("a", "1")); got != 0 {
		t.Errorf("equal objects: %d", got)
	}
}
