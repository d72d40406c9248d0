package ir

import (
	"encoding/json"
)

// The JSON meta-representation makes trees self-describing outside the
// library: a node is an object with its kind, entry names, children, and
// scalar payload. This is a description of the tree, not the document the
// tree represents; use encode for the latter.

type irBase struct {
	Kind   Kind      `json:"kind"`
	Fields []string  `json:"fields,omitempty"`
	Values []*Node   `json:"values,omitempty"`
	Value  ValueType `json:"valueType"`
	Text   string    `json:"text,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Kind:   y.Kind,
		Fields: y.Fields,
		Values: y.Values,
		Value:  y.ValueType,
		Text:   y.Text,
	}
	return json.Marshal(base)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Kind = tmp.Kind
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	y.ValueType = tmp.Value
	y.Text = tmp.Text
	for i, v := range y.Values {
		v.Parent = y
		v.ParentIndex = i
		if y.Kind == ObjectKind && i < len(y.Fields) {
			v.ParentField = y.Fields[i]
		}
	}
	return nil
}
