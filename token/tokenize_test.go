package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func tokenTypes(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenizeStructure(t *testing.T) {
	cases := []struct {
		in   string
		toks []TokenType
		lits []Literal
	}{
		{
			in:   `{"a": 1}`,
			toks: []TokenType{TObjBegin, TValue, TColon, TValue, TObjEnd},
			lits: []Literal{
				{Type: LitString, Text: "a"},
				{Type: LitNumber, Text: "1"},
			},
		},
		{
			in:   `[true, null, -2.5e3]`,
			toks: []TokenType{TArrBegin, TValue, TComma, TValue, TComma, TValue, TArrEnd},
			lits: []Literal{
				{Type: LitBool, Text: "true"},
				{Type: LitNull},
				{Type: LitNumber, Text: "-2.5e3"},
			},
		},
		{
			in:   `"escaped \" quote"`,
			toks: []TokenType{TValue},
			lits: []Literal{
				{Type: LitString, Text: `escaped \" quote`},
			},
		},
		{
			// whitespace never flushes the literal buffer, so the
			// pieces of a split literal rejoin
			in:   "tr ue",
			toks: []TokenType{TValue},
			lits: []Literal{
				{Type: LitBool, Text: "true"},
			},
		},
		{
			in:   "NULL",
			toks: []TokenType{TValue},
			lits: []Literal{{Type: LitNull}},
		},
		{
			in:   "bogus",
			toks: []TokenType{TUnknown},
			lits: []Literal{{Type: LitUnknown, Text: "bogus"}},
		},
		{
			// the two-queue invariant: one literal per value token,
			// even when a quote abuts a literal
			in:   `[1"a"]`,
			toks: []TokenType{TArrBegin, TValue, TValue, TArrEnd},
			lits: []Literal{
				{Type: LitNumber, Text: "1"},
				{Type: LitString, Text: "a"},
			},
		},
		{
			in:   "",
			toks: []TokenType{},
			lits: []Literal{},
		},
	}
	ignorePos := cmp.Comparer(func(a, b Literal) bool {
		return a.Type == b.Type && a.Text == b.Text
	})
	for _, c := range cases {
		toks, lits := Tokenize(nil, []byte(c.in))
		if d := cmp.Diff(c.toks, tokenTypes(toks), cmpopts.EquateEmpty()); d != "" {
			t.Errorf("Tokenize(%q) tokens mismatch (-want +got):\n%s", c.in, d)
		}
		if d := cmp.Diff(c.lits, lits, ignorePos, cmpopts.EquateEmpty()); d != "" {
			t.Errorf("Tokenize(%q) literals mismatch (-want +got):\n%s", c.in, d)
		}
	}
}

func TestTokenizeComments(t *testing.T) {
	cases := []string{
		"// leading\n{\"a\": 1}",
		"{\"a\": /* inline */ 1}",
		"{\"a\": 1} // trailing",
		"/* a\nmultiline\ncomment */ {\"a\": 1}",
	}
	want := []TokenType{TObjBegin, TValue, TColon, TValue, TObjEnd}
	for _, in := range cases {
		toks, _ := Tokenize(nil, []byte(in))
		if d := cmp.Diff(want, tokenTypes(toks)); d != "" {
			t.Errorf("Tokenize(%q) with comments (-want +got):\n%s", in, d)
		}
	}
}

func TestNumberGrammar(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{in: "0", ok: true},
		{in: "-1", ok: true},
		{in: "007", ok: true},
		{in: "3.25", ok: true},
		{in: "-2.5e3", ok: true},
		{in: "1E-9", ok: true},
		{in: "6e+4", ok: true},
		{in: "1-2.3", ok: false},
		{in: "-", ok: false},
		{in: "1.", ok: false},
		{in: ".5", ok: false},
		{in: "1e", ok: false},
		{in: "1e+", ok: false},
		{in: "0x10", ok: false},
		{in: "1_000", ok: false},
	}
	for _, c := range cases {
		if got := isNumber(c.in); got != c.ok {
			t.Errorf("isNumber(%q) = %v, want %v", c.in, got, c.ok)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, lits := Tokenize(nil, []byte("{\n  \"a\": 1\n}"))
	if len(toks) != 5 || len(lits) != 2 {
		t.Fatalf("got %d tokens, %d literals", len(toks), len(lits))
	}
	if p := toks[0].Pos; p.Line != 1 || p.Col != 1 {
		t.Errorf("open brace at %v", p)
	}
	if p := lits[0].Pos; p.Line != 2 || p.Col != 3 {
		t.Errorf("name literal at %v", p)
	}
	if p := lits[1].Pos; p.Line != 2 || p.Col != 8 {
		t.Errorf("number literal at %v", p)
	}
}
