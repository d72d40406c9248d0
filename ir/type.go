package ir

import "fmt"

// Kind discriminates the three node shapes of a document tree.
type Kind int

const (
	ObjectKind Kind = iota
	ArrayKind
	ValueKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ObjectKind: "Object",
		ArrayKind:  "Array",
		ValueKind:  "Value",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Object": ObjectKind,
		"Array":  ArrayKind,
		"Value":  ValueKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{ObjectKind, ArrayKind, ValueKind}
}

func (k Kind) IsLeaf() bool {
	return k == ValueKind
}

// ValueType discriminates scalars held by ValueKind nodes.
type ValueType int

const (
	NullValue ValueType = iota
	StringValue
	NumberValue
	BoolValue
)

func (t ValueType) String() string {
	s, ok := map[ValueType]string{
		NullValue:   "Null",
		StringValue: "String",
		NumberValue: "Number",
		BoolValue:   "Bool",
	}[t]
	if ok {
		return s
	}
	return "<unknown value type>"
}

func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ValueType) UnmarshalText(d []byte) error {
	tt, ok := map[string]ValueType{
		"Null":   NullValue,
		"String": StringValue,
		"Number": NumberValue,
		"Bool":   BoolValue,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized value type %q", d)
	}
	*t = tt
	return nil
}

func ValueTypes() []ValueType {
	return []ValueType{NullValue, StringValue, NumberValue, BoolValue}
}
