// Package streamjson writes compact JSON text straight into a
// caller-supplied buffer, one value at a time, with no intermediate
// tree. Output is maximally compact RFC 8259 JSON: no indentation, no
// trailing newline.
//
//	buf := streamjson.NewBytes(64)
//	ser := streamjson.New(buf)
//	obj := ser.Object()
//	obj.Field("kind", "cat")
//	obj.Field("meow_decibels", 45)
//	obj.End()
//	// buf.String() == `{"kind":"cat","meow_decibels":45}`
//
// Exactly one writer owns the buffer at any moment: opening a nested
// container hands the write position to the child until its End runs.
// Violations of that discipline (using a closed writer, writing past a
// finished document) panic rather than emit malformed JSON.
package streamjson

// Serializer is the root handle over a Buffer. One Serializer produces
// one JSON document: a single top-level container or a single scalar.
type Serializer struct {
	buf  Buffer
	open bool
	done bool
}

// New binds a Serializer to buf. Nothing is written until the first
// Object, Array or Write call.
func New(buf Buffer) *Serializer {
	return &Serializer{buf: buf}
}

func (s *Serializer) start() {
	if s.done {
		panic("streamjson: document already complete")
	}
	if s.open {
		panic("streamjson: top-level container still open")
	}
}

func (s *Serializer) finish() {
	s.open = false
	s.done = true
}

// Object opens the top-level object and returns its writer. The
// document is complete once that writer's End runs.
func (s *Serializer) Object() *ObjectWriter {
	s.start()
	s.open = true
	return startObject(s.buf, s)
}

// Array opens the top-level array and returns its writer.
func (s *Serializer) Array() *ArrayWriter {
	s.start()
	s.open = true
	return startArray(s.buf, s)
}

// Write emits a bare scalar as the entire document. JSON permits any
// value at the top level, not just containers.
func (s *Serializer) Write(val any) {
	s.start()
	appendValue(s.buf, val)
	s.done = true
}

// ValueWriter is the single value slot handed to ComplexField and
// AddComplex callbacks. At most one of Write, Object or Array may be
// called on it; a second call panics.
type ValueWriter struct {
	buf  Buffer
	used bool
	obj  *ObjectWriter
	arr  *ArrayWriter
}

func (v *ValueWriter) claim() {
	if v.used {
		panic("streamjson: value slot already written")
	}
	v.used = true
}

// Write fills the slot with a single scalar or raw value.
func (v *ValueWriter) Write(val any) {
	v.claim()
	appendValue(v.buf, val)
}

// Object fills the slot with an object. Calling End on the returned
// writer is optional: a writer still open when the callback returns is
// closed by the caller of the callback.
func (v *ValueWriter) Object() *ObjectWriter {
	v.claim()
	v.obj = startObject(v.buf, nil)
	return v.obj
}

// Array fills the slot with an array. Same close-on-return rule as
// Object.
func (v *ValueWriter) Array() *ArrayWriter {
	v.claim()
	v.arr = startArray(v.buf, nil)
	return v.arr
}

// writeValueScope runs fn against a fresh slot and settles it after fn
// returns, so the bracket is emitted exactly once no matter what the
// callback did. An untouched slot becomes null.
func writeValueScope(buf Buffer, fn func(*ValueWriter)) {
	vw := &ValueWriter{buf: buf}
	fn(vw)
	switch {
	case !vw.used:
		buf.AppendString("null")
	case vw.obj != nil && !vw.obj.closed:
		vw.obj.End()
	case vw.arr != nil && !vw.arr.closed:
		vw.arr.End()
	}
}
