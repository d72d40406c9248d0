package encode_test

import (
	"bytes"
	"testing"

	"github.com/jzon-format/go-jzon/encode"
	"github.com/jzon-format/go-jzon/format"
	"github.com/jzon-format/go-jzon/ir"
	"github.com/jzon-format/go-jzon/parse"
)

func mustParse(t *testing.T, in string) *ir.Node {
	t.Helper()
	root := &ir.Node{Kind: parse.DetermineKind([]byte(in))}
	if err := parse.Parse(root, []byte(in)); err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return root
}

func TestEncodeCompact(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{in: `{}`, out: `{}`},
		{in: `[]`, out: `[]`},
		{in: `null`, out: `null`},
		{in: `{"a": 1, "b": [true, null, "x"]}`, out: `{"a":1,"b":[true,null,"x"]}`},
		{in: `{"s": "a\tb"}`, out: `{"s":"a\tb"}`},
	}
	for _, c := range cases {
		node := mustParse(t, c.in)
		if got := encode.MustString(node); got != c.out {
			t.Errorf("compact of %q = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestEncodeStandard(t *testing.T) {
	node := mustParse(t, `{"a":1,"b":[true,null]}`)
	want := "{\n" +
		"\t\"a\": 1,\n" +
		"\t\"b\": [\n" +
		"\t\ttrue,\n" +
		"\t\tnull\n" +
		"\t]\n" +
		"}"
	got := encode.MustString(node, encode.EncodeFormat(format.Standard))
	if got != want {
		t.Errorf("standard encoding:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeSpaceIndent(t *testing.T) {
	f := format.Format{Newline: true, Spacing: true, IndentSize: 2}
	node := mustParse(t, `{"a":{"b":9}}`)
	want := "{\n" +
		"  \"a\": {\n" +
		"    \"b\": 9\n" +
		"  }\n" +
		"}"
	got := encode.MustString(node, encode.EncodeFormat(f))
	if got != want {
		t.Errorf("space-indented encoding:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeSpacingOnly(t *testing.T) {
	f := format.Format{Spacing: true}
	node := mustParse(t, `{"a":1,"b":2}`)
	want := `{ "a": 1, "b": 2 }`
	got := encode.MustString(node, encode.EncodeFormat(f))
	if got != want {
		t.Errorf("spacing-only encoding = %q, want %q", got, want)
	}
}

func TestEncodeDepth(t *testing.T) {
	node := mustParse(t, `{"a":1}`)
	want := "{\n\t\t\"a\": 1\n\t}"
	got := encode.MustString(node, encode.EncodeFormat(format.Standard), encode.Depth(1))
	if got != want {
		t.Errorf("depth-1 encoding = %q, want %q", got, want)
	}
}

func TestEncodeWriter(t *testing.T) {
	node := mustParse(t, `[1,2]`)
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != `[1,2]` {
		t.Errorf("Encode wrote %q", buf.String())
	}
}

func TestEncodeColorsEscapePercent(t *testing.T) {
	// color formatting must not interpret % in document text
	node := mustParse(t, `{"pct":"100%"}`)
	got := encode.MustString(node, encode.EncodeColors(encode.NewColors()))
	if !bytes.Contains([]byte(got), []byte("100%")) {
		t.Errorf("percent mangled in %q", got)
	}
}
