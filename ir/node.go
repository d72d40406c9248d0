package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is a single element of a document tree. It is a tagged union over the
// three kinds: objects hold parallel Fields/Values slices of entry names and
// children, arrays hold Values only, and scalars hold a ValueType plus the
// canonical text of the value.
//
// Every node has at most one owner. Attaching a node that already has a
// parent attaches a deep clone instead, so no subtree is ever shared.
type Node struct {
	Kind        Kind
	Parent      *Node
	ParentIndex int
	ParentField string

	// Fields holds object entry names, parallel to Values. Names are not
	// required to be unique; lookups return the first match and insertion
	// order is the iteration and serialization order.
	Fields []string
	Values []*Node

	ValueType ValueType
	Text      string
}

func NewObject() *Node {
	return &Node{Kind: ObjectKind}
}

func NewArray() *Node {
	return &Node{Kind: ArrayKind}
}

func Null() *Node {
	return &Node{Kind: ValueKind, ValueType: NullValue}
}

func FromString(v string) *Node {
	return &Node{Kind: ValueKind, ValueType: StringValue, Text: v}
}

func FromInt(v int64) *Node {
	return &Node{Kind: ValueKind, ValueType: NumberValue, Text: strconv.FormatInt(v, 10)}
}

func FromFloat(v float64) *Node {
	return &Node{Kind: ValueKind, ValueType: NumberValue, Text: strconv.FormatFloat(v, 'g', -1, 64)}
}

func FromBool(v bool) *Node {
	return &Node{Kind: ValueKind, ValueType: BoolValue, Text: strconv.FormatBool(v)}
}

// FromLiteral builds a scalar from an already-canonical text representation.
func FromLiteral(t ValueType, text string) *Node {
	return &Node{Kind: ValueKind, ValueType: t, Text: text}
}

// FromMap builds an object from a Go map, entries in sorted key order.
func FromMap(m map[string]*Node) *Node {
	res := NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Add(k, m[k])
	}
	return res
}

// FromSlice builds an array owning the given elements in order.
func FromSlice(elts []*Node) *Node {
	res := NewArray()
	for _, e := range elts {
		res.Append(e)
	}
	return res
}

func (y *Node) IsObject() bool { return y.Kind == ObjectKind }
func (y *Node) IsArray() bool  { return y.Kind == ArrayKind }
func (y *Node) IsValue() bool  { return y.Kind == ValueKind }

func (y *Node) IsNull() bool   { return y.Kind == ValueKind && y.ValueType == NullValue }
func (y *Node) IsString() bool { return y.Kind == ValueKind && y.ValueType == StringValue }
func (y *Node) IsNumber() bool { return y.Kind == ValueKind && y.ValueType == NumberValue }
func (y *Node) IsBool() bool   { return y.Kind == ValueKind && y.ValueType == BoolValue }

// ToString returns the canonical text of a scalar. Null always renders as
// the literal "null" regardless of stored text.
func (y *Node) ToString() (string, error) {
	if y.Kind != ValueKind {
		return "", ErrType
	}
	if y.ValueType == NullValue {
		return "null", nil
	}
	return y.Text, nil
}

func (y *Node) ToInt() (int, error) {
	if !y.IsNumber() {
		return 0, ErrType
	}
	i, err := strconv.ParseInt(y.Text, 10, 64)
	if err == nil {
		return int(i), nil
	}
	f, err := strconv.ParseFloat(y.Text, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func (y *Node) ToFloat() (float32, error) {
	if !y.IsNumber() {
		return 0, ErrType
	}
	f, err := strconv.ParseFloat(y.Text, 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

func (y *Node) ToDouble() (float64, error) {
	if !y.IsNumber() {
		return 0, ErrType
	}
	f, err := strconv.ParseFloat(y.Text, 64)
	if err != nil {
		return 0, err
	}
	return f, nil
}

func (y *Node) ToBool() (bool, error) {
	if !y.IsBool() {
		return false, ErrType
	}
	return y.Text == "true", nil
}

// Add appends a named entry to an object. If child already has a parent it
// is deep-cloned first, preserving exclusive ownership.
func (y *Node) Add(name string, child *Node) error {
	if y.Kind != ObjectKind {
		return ErrType
	}
	child = y.adopt(child)
	child.ParentField = name
	y.Fields = append(y.Fields, name)
	y.Values = append(y.Values, child)
	return nil
}

// Append appends an element to an array, with the same ownership rules
// as Add.
func (y *Node) Append(child *Node) error {
	if y.Kind != ArrayKind {
		return ErrType
	}
	child = y.adopt(child)
	y.Values = append(y.Values, child)
	return nil
}

func (y *Node) adopt(child *Node) *Node {
	if child.Parent != nil {
		child = child.Clone()
	}
	child.Parent = y
	child.ParentIndex = len(y.Values)
	return child
}

// Remove deletes the first entry with the given name. Removing a name that
// is not present is not an error.
func (y *Node) Remove(name string) error {
	if y.Kind != ObjectKind {
		return ErrType
	}
	for i, f := range y.Fields {
		if f != name {
			continue
		}
		y.Values[i].Parent = nil
		y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
		y.Values = append(y.Values[:i], y.Values[i+1:]...)
		y.reindex(i)
		break
	}
	return nil
}

// RemoveAt deletes the element at index. Out-of-range indices are ignored.
func (y *Node) RemoveAt(index int) error {
	if y.Kind != ArrayKind {
		return ErrType
	}
	if index < 0 || index >= len(y.Values) {
		return nil
	}
	y.Values[index].Parent = nil
	y.Values = append(y.Values[:index], y.Values[index+1:]...)
	y.reindex(index)
	return nil
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Values); i++ {
		y.Values[i].ParentIndex = i
	}
}

// Clear releases all children of a container.
func (y *Node) Clear() error {
	if y.Kind == ValueKind {
		return ErrType
	}
	for _, v := range y.Values {
		v.Parent = nil
	}
	y.Fields = nil
	y.Values = nil
	return nil
}

// Get returns the first entry with the given name.
func (y *Node) Get(name string) (*Node, error) {
	if y.Kind != ObjectKind {
		return nil, ErrType
	}
	for i, f := range y.Fields {
		if f == name {
			return y.Values[i], nil
		}
	}
	return nil, ErrNotFound
}

// At returns the array element at index.
func (y *Node) At(index int) (*Node, error) {
	if y.Kind != ArrayKind {
		return nil, ErrType
	}
	if index < 0 || index >= len(y.Values) {
		return nil, ErrNotFound
	}
	return y.Values[index], nil
}

func (y *Node) Has(name string) (bool, error) {
	if y.Kind != ObjectKind {
		return false, ErrType
	}
	for _, f := range y.Fields {
		if f == name {
			return true, nil
		}
	}
	return false, nil
}

// GetCount returns the number of children. Scalars have none.
func (y *Node) GetCount() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

// CloneTo deep-copies y into dst and returns dst. The clone keeps y's
// parent linkage so it can stand in for y; children are cloned recursively
// and re-parented onto dst.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Kind = y.Kind
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.ValueType = y.ValueType
	dst.Text = y.Text
	if y.Fields != nil {
		dst.Fields = make([]string, len(y.Fields))
		copy(dst.Fields, y.Fields)
	} else {
		dst.Fields = nil
	}
	if y.Values == nil {
		dst.Values = nil
		return dst
	}
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	return dst
}

// Equal reports deep structural equality. Scalars are equal iff their value
// types and canonical texts match; null text is irrelevant. Object entry
// order is significant.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ValueKind:
		if a.ValueType != b.ValueType {
			return false
		}
		if a.ValueType == NullValue {
			return true
		}
		return a.Text == b.Text
	case ObjectKind:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if a.Fields[i] != b.Fields[i] {
				return false
			}
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ArrayKind:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Visit walks the tree. f is called before and after each node's children;
// returning dive=false on the pre call skips them.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
