package streamjson

// ObjectWriter serializes one open JSON object. It tracks whether a
// separating comma is due and refuses further use once End has run.
// While a child writer opened through ObjectField, ArrayField or
// ComplexField is still open, the parent is locked: using it panics,
// since an interleaved write would corrupt the nesting.
type ObjectWriter struct {
	buf         Buffer
	first       bool
	closed      bool
	childClosed *bool       // closed flag of the currently open child, if any
	root        *Serializer // set only on the top-level container
}

func startObject(buf Buffer, root *Serializer) *ObjectWriter {
	buf.AppendByte('{')
	return &ObjectWriter{buf: buf, first: true, root: root}
}

func (o *ObjectWriter) checkChild() {
	if o.childClosed != nil {
		if !*o.childClosed {
			panic("streamjson: object writer used while a child writer is open")
		}
		o.childClosed = nil
	}
}

func (o *ObjectWriter) comma() {
	if o.closed {
		panic("streamjson: object writer used after End")
	}
	o.checkChild()
	if o.first {
		o.first = false
	} else {
		o.buf.AppendByte(',')
	}
}

func (o *ObjectWriter) key(key any) {
	o.comma()
	appendKey(o.buf, key)
	o.buf.AppendByte(':')
}

// Field adds key:value. Keys are string (escaped) or RawKey; values
// follow the appendValue dispatch, so NaN/Inf floats come out as null.
func (o *ObjectWriter) Field(key, val any) {
	o.key(key)
	appendValue(o.buf, val)
}

// ComplexField adds a field whose value is produced by fn against a
// fresh value slot. The slot is closed when fn returns: a still-open
// child builder gets its bracket, an untouched slot becomes null.
func (o *ObjectWriter) ComplexField(key any, fn func(*ValueWriter)) {
	o.key(key)
	scopeClosed := false
	o.childClosed = &scopeClosed
	writeValueScope(o.buf, fn)
	scopeClosed = true
}

// ObjectField opens an object-valued field and returns its writer.
// The parent is locked until the child's End runs.
func (o *ObjectWriter) ObjectField(key any) *ObjectWriter {
	o.key(key)
	child := startObject(o.buf, nil)
	o.childClosed = &child.closed
	return child
}

// ArrayField opens an array-valued field and returns its writer.
// The parent is locked until the child's End runs.
func (o *ObjectWriter) ArrayField(key any) *ArrayWriter {
	o.key(key)
	child := startArray(o.buf, nil)
	o.childClosed = &child.closed
	return child
}

// End writes the closing brace. The writer must not be used afterwards;
// any method call on a closed writer panics. A writer abandoned without
// End leaves the document truncated, with no closing brace: nothing is
// closed automatically outside the callback path.
func (o *ObjectWriter) End() {
	if o.closed {
		panic("streamjson: object writer closed twice")
	}
	o.checkChild()
	o.closed = true
	o.buf.AppendByte('}')
	if o.root != nil {
		o.root.finish()
	}
}
