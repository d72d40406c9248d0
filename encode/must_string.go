package encode

import (
	"bytes"

	"github.com/jzon-format/go-jzon/ir"
)

// MustString renders node to a string, panicking on a writer error. A
// bytes.Buffer never fails, so this is safe for in-memory use.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
