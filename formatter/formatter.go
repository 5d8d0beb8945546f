package formatter

import (
	"bytes"
	"io"
	"strconv"
	"sync"

	"github.com/DIYEmbeddedSystems/debug-tools/core"
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// Line renders a record into its own byte slice.
func Line(rec *core.Record) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	appendLine(rec, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// WriteTo renders a record and writes it to w in a single Write call,
// avoiding the intermediate byte slice allocation.
func WriteTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	appendLine(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// appendLine writes the fixed line layout into the given buffer:
//
//	[<TAG>] <function> at <file>:<line> :\t <message>\n
func appendLine(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.WriteString(rec.Tag)
	buf.WriteString("] ")
	buf.WriteString(rec.Caller.Function)
	buf.WriteString(" at ")
	buf.WriteString(rec.Caller.File)
	buf.WriteByte(':')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Caller.Line), 10))
	buf.WriteString(" :\t ")
	buf.WriteString(rec.Message)
	buf.WriteByte('\n')
}
