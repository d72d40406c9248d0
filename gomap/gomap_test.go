package gomap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jzon-format/go-jzon/encode"
	"github.com/jzon-format/go-jzon/ir"
)

func TestFromGo(t *testing.T) {
	v := map[string]any{
		"name":  "alice",
		"age":   30,
		"score": 2.5,
		"tags":  []any{"x", "y"},
		"extra": nil,
		"ok":    true,
	}
	node, err := FromGo(v)
	if err != nil {
		t.Fatal(err)
	}
	// FromMap sorts, so the rendering is deterministic
	want := `{"age":30,"extra":null,"name":"alice","ok":true,"score":2.5,"tags":["x","y"]}`
	if got := encode.MustString(node); got != want {
		t.Errorf("FromGo rendered %s, want %s", got, want)
	}
}

func TestFromGoUnsupported(t *testing.T) {
	if _, err := FromGo(struct{}{}); err == nil {
		t.Error("no error for unsupported type")
	}
	if _, err := FromGo(map[string]any{"k": make(chan int)}); err == nil {
		t.Error("no error for unsupported nested type")
	}
}

func TestFromGoNode(t *testing.T) {
	n := ir.FromInt(7)
	got, err := FromGo(n)
	if err != nil {
		t.Fatal(err)
	}
	if got != n {
		t.Error("node not passed through")
	}
}

func TestRoundTrip(t *testing.T) {
	want := map[string]any{
		"name":  "alice",
		"age":   int64(30),
		"score": 2.5,
		"tags":  []any{"x", "y"},
		"extra": nil,
		"deep":  map[string]any{"a": []any{int64(1), true}},
	}
	node, err := FromGo(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ToGo(node)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestToGoNumbers(t *testing.T) {
	cases := []struct {
		text string
		want any
	}{
		{text: "42", want: int64(42)},
		{text: "-7", want: int64(-7)},
		{text: "2.5", want: 2.5},
		{text: "1e3", want: 1000.0},
	}
	for _, c := range cases {
		got, err := ToGo(ir.FromLiteral(ir.NumberValue, c.text))
		if err != nil {
			t.Errorf("ToGo(%s): %v", c.text, err)
			continue
		}
		if got != c.want {
			t.Errorf("ToGo(%s) = %v (%T), want %v (%T)", c.text, got, got, c.want, c.want)
		}
	}
}

func TestToGoDuplicateNames(t *testing.T) {
	obj := ir.NewObject()
	obj.Add("a", ir.FromInt(1))
	obj.Add("a", ir.FromInt(2))
	got, err := ToGo(obj)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("got %T", got)
	}
	// the later duplicate wins
	if m["a"] != int64(2) {
		t.Errorf("a = %v", m["a"])
	}
}
