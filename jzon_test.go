package jzon

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/jzon-format/go-jzon/format"
	"github.com/jzon-format/go-jzon/ir"
)

func parseAny(t *testing.T, text string) *ir.Node {
	t.Helper()
	root := &ir.Node{Kind: DetermineKind(text)}
	if err := Parse(root, text); err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return root
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{}`,
		`[]`,
		`null`,
		`{"a":1,"b":[true,null,"x"],"c":{"d":-2.5e3}}`,
		`["tab\there","quote\"there",0.1]`,
		`{"a":1,"a":2}`,
	}
	for _, doc := range docs {
		root := parseAny(t, doc)
		for _, f := range []format.Format{format.Compact, format.Standard} {
			once := Write(root, f)
			again := parseAny(t, once)
			if got := Write(again, f); got != once {
				t.Errorf("doc %s under %v: %q then %q", doc, f, once, got)
			}
			if !ir.Equal(root, again) {
				t.Errorf("doc %s under %v: reparse changed the tree", doc, f)
			}
		}
	}
}

func TestReadWriteFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	root := parseAny(t, `{"a":1,"b":[2,3]}`)
	if err := WriteFileFS(fsys, "doc.json", root, format.Standard); err != nil {
		t.Fatal(err)
	}
	back := ir.NewObject()
	if err := ReadFileFS(fsys, "doc.json", back); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(root, back) {
		t.Errorf("file round trip changed the tree")
	}
}

func TestReadFileMissing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	root := ir.NewObject()
	if err := ReadFileFS(fsys, "nope.json", root); err == nil {
		t.Error("no error for missing file")
	}
}

func TestDiff(t *testing.T) {
	from := parseAny(t, `{"a":1,"b":2}`)
	to := parseAny(t, `{"a":1,"b":3}`)
	if d := Diff(from, from.Clone()); d != nil {
		t.Errorf("diff of equal trees = %s", Write(d, format.Compact))
	}
	d := Diff(from, to)
	if d == nil {
		t.Fatal("no diff for changed trees")
	}
	if got := Write(d, format.Compact); got != `{"b":{"-":2,"+":3}}` {
		t.Errorf("diff = %s", got)
	}
}
