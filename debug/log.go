package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jzon-format/go-jzon/encode"
	"github.com/jzon-format/go-jzon/ir"
)

// Logf writes to stderr, rendering any *ir.Node arguments as compact
// document text first.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(x, buf); err != nil {
			args[i] = fmt.Sprintf("[raw node] %v", x)
			continue
		}
		args[i] = buf.String()
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
