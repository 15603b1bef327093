package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/easel/yars/encode"
	"github.com/easel/yars/ir"
)

// Doc wraps a node so %s formatting renders it as a document.
type Doc struct{ *ir.Node }

func (y Doc) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw node] %v", x)
	}
	return buf.String()
}

// Logf writes a debug line to stderr. Node arguments render as document
// text rather than struct dumps.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw node] %v", x)
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
