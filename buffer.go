package streamjson

import "io"

// Buffer is any append-only destination JSON text may be written into.
// Appends never fail from the writer's perspective; buffers backed by
// fallible storage latch the failure and expose it out of band (see
// WriterBuffer).
type Buffer interface {
	AppendByte(c byte)
	AppendBytes(p []byte)
	AppendString(s string)
	Len() int
	Reserve(n int)
}

// Bytes is a growable in-memory Buffer.
type Bytes struct {
	buf []byte
}

// NewBytes returns a Bytes buffer with the given initial capacity.
func NewBytes(capacity int) *Bytes {
	return &Bytes{buf: make([]byte, 0, capacity)}
}

func (b *Bytes) AppendByte(c byte) {
	b.buf = append(b.buf, c)
}

func (b *Bytes) AppendBytes(p []byte) {
	b.buf = append(b.buf, p...)
}

func (b *Bytes) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

func (b *Bytes) Len() int {
	return len(b.buf)
}

func (b *Bytes) Reserve(n int) {
	if cap(b.buf)-len(b.buf) < n {
		grown := make([]byte, len(b.buf), cap(b.buf)+n)
		copy(grown, b.buf)
		b.buf = grown
	}
}

// Bytes returns the written JSON text. The slice is valid until the
// next append or Clear.
func (b *Bytes) Bytes() []byte {
	return b.buf
}

func (b *Bytes) String() string {
	return string(b.buf)
}

// Clear resets the buffer for reuse, keeping the allocation.
func (b *Bytes) Clear() {
	b.buf = b.buf[:0]
}

// WriterBuffer adapts an io.Writer into a Buffer. The first write error
// is latched; every later append is dropped and Err reports the failure.
// Callers must check Err once the document is finished.
type WriterBuffer struct {
	w       io.Writer
	n       int
	err     error
	scratch [1]byte
}

func NewWriterBuffer(w io.Writer) *WriterBuffer {
	return &WriterBuffer{w: w}
}

func (b *WriterBuffer) AppendByte(c byte) {
	b.scratch[0] = c
	b.AppendBytes(b.scratch[:])
}

func (b *WriterBuffer) AppendBytes(p []byte) {
	if b.err != nil {
		return
	}
	n, err := b.w.Write(p)
	b.n += n
	if err != nil {
		b.err = err
	}
}

func (b *WriterBuffer) AppendString(s string) {
	if b.err != nil {
		return
	}
	n, err := io.WriteString(b.w, s)
	b.n += n
	if err != nil {
		b.err = err
	}
}

// Len returns the number of bytes accepted by the underlying writer.
func (b *WriterBuffer) Len() int {
	return b.n
}

func (b *WriterBuffer) Reserve(int) {}

// Err returns the first error reported by the underlying writer, if any.
func (b *WriterBuffer) Err() error {
	return b.err
}
