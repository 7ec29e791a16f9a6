package streamjson

// ArrayWriter serializes one open JSON array. Same state machine as
// ObjectWriter, without keys: commas between elements, dead after End,
// locked while a child opened through AddObject, AddArray or AddComplex
// is still open.
type ArrayWriter struct {
	buf         Buffer
	first       bool
	closed      bool
	childClosed *bool
	root        *Serializer
}

func startArray(buf Buffer, root *Serializer) *ArrayWriter {
	buf.AppendByte('[')
	return &ArrayWriter{buf: buf, first: true, root: root}
}

func (a *ArrayWriter) checkChild() {
	if a.childClosed != nil {
		if !*a.childClosed {
			panic("streamjson: array writer used while a child writer is open")
		}
		a.childClosed = nil
	}
}

func (a *ArrayWriter) comma() {
	if a.closed {
		panic("streamjson: array writer used after End")
	}
	a.checkChild()
	if a.first {
		a.first = false
	} else {
		a.buf.AppendByte(',')
	}
}

// Add appends one element.
func (a *ArrayWriter) Add(val any) {
	a.comma()
	appendValue(a.buf, val)
}

// Extend appends each of vals in order.
func (a *ArrayWriter) Extend(vals ...any) {
	for _, v := range vals {
		a.Add(v)
	}
}

// AddComplex appends an element produced by fn against a fresh value
// slot, closed automatically when fn returns.
func (a *ArrayWriter) AddComplex(fn func(*ValueWriter)) {
	a.comma()
	scopeClosed := false
	a.childClosed = &scopeClosed
	writeValueScope(a.buf, fn)
	scopeClosed = true
}

// AddObject opens an object element and returns its writer. The parent
// is locked until the child's End runs.
func (a *ArrayWriter) AddObject() *ObjectWriter {
	a.comma()
	child := startObject(a.buf, nil)
	a.childClosed = &child.closed
	return child
}

// AddArray opens a nested array element and returns its writer. The
// parent is locked until the child's End runs.
func (a *ArrayWriter) AddArray() *ArrayWriter {
	a.comma()
	child := startArray(a.buf, nil)
	a.childClosed = &child.closed
	return child
}

// End writes the closing bracket; the writer is dead afterwards. A
// writer abandoned without End leaves the document truncated, with no
// closing bracket: nothing is closed automatically outside the
// callback path.
func (a *ArrayWriter) End() {
	if a.closed {
		panic("streamjson: array writer closed twice")
	}
	a.checkChild()
	a.closed = true
	a.buf.AppendByte(']')
	if a.root != nil {
		a.root.finish()
	}
}
