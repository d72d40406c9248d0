package token

import "strings"

// Tokenize scans src left to right once, producing the structural token
// sequence and the literal payload sequence consumed by the assembler.
// Tokenization itself cannot fail: text that matches no literal grammar is
// emitted as a TUnknown token with a LitUnknown payload and rejected at
// assembly time.
//
// Whitespace is skipped without flushing the pending literal buffer; the
// buffer flushes on structural characters, quotes, and end of input.
func Tokenize(dst []Token, src []byte) ([]Token, []Literal) {
	sc := &scanner{src: src, toks: dst, line: 1, col: 1}
	for sc.i < len(sc.src) {
		c := sc.src[sc.i]
		switch c {
		case ' ', '\t', '\n', '\r', '\f':
			sc.advance()
		case '{':
			sc.structural(TObjBegin)
		case '}':
			sc.structural(TObjEnd)
		case '[':
			sc.structural(TArrBegin)
		case ']':
			sc.structural(TArrEnd)
		case ',':
			sc.structural(TComma)
		case ':':
			sc.structural(TColon)
		case '"':
			sc.flush()
			sc.readString()
		case '/':
			switch sc.peek() {
			case '*':
				sc.skipBlockComment()
			case '/':
				sc.skipLineComment()
			default:
				// not a comment: part of a literal, which the
				// classifier will reject
				sc.bufByte(c)
				sc.advance()
			}
		default:
			sc.bufByte(c)
			sc.advance()
		}
	}
	sc.flush()
	return sc.toks, sc.lits
}

type scanner struct {
	src  []byte
	i    int
	line int
	col  int

	toks []Token
	lits []Literal

	buf    []byte
	bufPos Pos
}

func (sc *scanner) pos() Pos {
	return Pos{Offset: sc.i, Line: sc.line, Col: sc.col}
}

func (sc *scanner) advance() {
	if sc.src[sc.i] == '\n' {
		sc.line++
		sc.col = 1
	} else {
		sc.col++
	}
	sc.i++
}

func (sc *scanner) peek() byte {
	if sc.i+1 < len(sc.src) {
		return sc.src[sc.i+1]
	}
	return 0
}

func (sc *scanner) structural(t TokenType) {
	sc.flush()
	sc.toks = append(sc.toks, Token{Type: t, Pos: sc.pos()})
	sc.advance()
}

func (sc *scanner) bufByte(c byte) {
	if len(sc.buf) == 0 {
		sc.bufPos = sc.pos()
	}
	sc.buf = append(sc.buf, c)
}

// readString consumes a quoted string: everything up to the next quote not
// immediately preceded by a backslash, kept raw (escapes undecoded).
func (sc *scanner) readString() {
	pos := sc.pos()
	sc.advance() // opening quote
	var prev byte
	start := sc.i
	for sc.i < len(sc.src) {
		c := sc.src[sc.i]
		if c == '"' && prev != '\\' {
			break
		}
		prev = c
		sc.advance()
	}
	raw := string(sc.src[start:sc.i])
	if sc.i < len(sc.src) {
		sc.advance() // closing quote
	}
	sc.lits = append(sc.lits, Literal{Type: LitString, Text: raw, Pos: pos})
	sc.toks = append(sc.toks, Token{Type: TValue, Pos: pos})
}

func (sc *scanner) skipBlockComment() {
	sc.advance() // '/'
	sc.advance() // '*'
	var prev byte
	for sc.i < len(sc.src) {
		c := sc.src[sc.i]
		sc.advance()
		if prev == '*' && c == '/' {
			return
		}
		prev = c
	}
}

func (sc *scanner) skipLineComment() {
	for sc.i < len(sc.src) && sc.src[sc.i] != '\n' {
		sc.advance()
	}
}

// flush classifies and emits the pending literal buffer.
func (sc *scanner) flush() {
	if len(sc.buf) == 0 {
		return
	}
	text := string(sc.buf)
	sc.buf = sc.buf[:0]
	lit := classify(text)
	lit.Pos = sc.bufPos
	t := TValue
	if lit.Type == LitUnknown {
		t = TUnknown
	}
	sc.lits = append(sc.lits, lit)
	sc.toks = append(sc.toks, Token{Type: t, Pos: sc.bufPos})
}

func classify(text string) Literal {
	switch strings.ToLower(text) {
	case "null":
		return Literal{Type: LitNull}
	case "true":
		return Literal{Type: LitBool, Text: "true"}
	case "false":
		return Literal{Type: LitBool, Text: "false"}
	}
	if isNumber(text) {
		return Literal{Type: LitNumber, Text: text}
	}
	return Literal{Type: LitUnknown, Text: text}
}

// isNumber accepts an optional minus, an integer part, an optional
// fraction, and an optional exponent. Shapes like 1-2.3 are rejected and
// surface as unknown tokens.
func isNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	n := digits(s, i)
	if n == 0 {
		return false
	}
	i += n
	if i < len(s) && s[i] == '.' {
		i++
		n = digits(s, i)
		if n == 0 {
			return false
		}
		i += n
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		n = digits(s, i)
		if n == 0 {
			return false
		}
		i += n
	}
	return i == len(s)
}

func digits(s string, i int) int {
	n := 0
	for i+n < len(s) && s[i+n] >= '0' && s[i+n] <= '9' {
		n++
	}
	return n
}
