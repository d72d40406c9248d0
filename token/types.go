package token

type TokenType int

const (
	TUnknown TokenType = iota
	TObjBegin
	TObjEnd
	TArrBegin
	TArrEnd
	TComma
	TColon
	TValue
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TUnknown:  "TUnknown",
		TObjBegin: "TObjBegin",
		TObjEnd:   "TObjEnd",
		TArrBegin: "TArrBegin",
		TArrEnd:   "TArrEnd",
		TComma:    "TComma",
		TColon:    "TColon",
		TValue:    "TValue",
	}[t]
}

// Token is a structural element of the input. TValue and TUnknown tokens
// each have a corresponding Literal payload, emitted in the same order.
type Token struct {
	Type TokenType
	Pos  Pos
}

// LitType classifies a literal payload.
type LitType int

const (
	LitUnknown LitType = iota
	LitNull
	LitString
	LitNumber
	LitBool
)

func (t LitType) String() string {
	return map[LitType]string{
		LitUnknown: "LitUnknown",
		LitNull:    "LitNull",
		LitString:  "LitString",
		LitNumber:  "LitNumber",
		LitBool:    "LitBool",
	}[t]
}

// Literal is a scalar payload. String payloads keep escape sequences raw;
// they are decoded at assembly time. LitUnknown carries the offending text
// so the parser can quote it in its error.
type Literal struct {
	Type LitType
	Text string
	Pos  Pos
}
