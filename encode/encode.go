package encode

import (
	"io"

	"github.com/jzon-format/go-jzon/format"
	"github.com/jzon-format/go-jzon/ir"
	"github.com/jzon-format/go-jzon/token"
)

type EncState struct {
	depth  int
	format format.Format

	Color func(ColorAttr, string) string
}

// Encode renders node to w under the configured format. The default is the
// compact form; pass EncodeFormat(format.Standard) for readable output.
//
// Encoding recurses over tree depth. The parser builds trees iteratively
// and tolerates any nesting the input can express, so a tree deeper than
// the call stack allows can be parsed but not encoded.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Kind {
	case ir.ObjectKind:
		return encodeObject(node, w, es)
	case ir.ArrayKind:
		return encodeArray(node, w, es)
	default:
		return encodeValue(node, w, es)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, "{"+es.format.EOL()); err != nil {
		return err
	}
	es.depth++
	for i, name := range node.Fields {
		if i > 0 {
			if err := writeString(w, es.colored(SepColor, ",")+es.format.EOL()); err != nil {
				return err
			}
		}
		quoted := `"` + token.Escape(name) + `"`
		entry := es.format.Indent(es.depth) + es.colored(FieldColor, quoted) +
			es.colored(SepColor, ":") + es.format.Sep()
		if err := writeString(w, entry); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, es.format.EOL()+es.format.Indent(es.depth)+"}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, "["+es.format.EOL()); err != nil {
		return err
	}
	es.depth++
	for i, elt := range node.Values {
		if i > 0 {
			if err := writeString(w, es.colored(SepColor, ",")+es.format.EOL()); err != nil {
				return err
			}
		}
		if err := writeString(w, es.format.Indent(es.depth)); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, es.format.EOL()+es.format.Indent(es.depth)+"]")
}

func encodeValue(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.ValueType {
	case ir.StringValue:
		return writeString(w, es.colored(StringColor, `"`+token.Escape(node.Text)+`"`))
	case ir.NullValue:
		return writeString(w, es.colored(NullColor, "null"))
	case ir.NumberValue:
		return writeString(w, es.colored(NumberColor, node.Text))
	default:
		return writeString(w, es.colored(BoolColor, node.Text))
	}
}

func (es *EncState) colored(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
