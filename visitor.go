package gobcore

// Visitor receives one callback per decoded value, driven by the wire
// stream's own traversal order rather than by any target type — the host
// binding layer implements Visitor to project decoded values into its own
// data structures. A single dispatch-by-wire-type callback would force
// every caller to re-derive the value's kind from the descriptor; instead
// the dispatch already happened in the value decoder, so the visitor
// method name itself says what kind of value arrived.
//
// VisitStructField may return ErrSkipVisit to tell the decoder it doesn't
// want that field's value (e.g. an unknown field): the decoder still
// consumes the value's bytes from the stream but makes no Visit* calls for
// it. From any other Visit* method ErrSkipVisit is treated like nil, and
// decoding (including the visits of nested values) carries on. Any other
// non-nil error aborts the current Decode call, wrapped as KindCustom
// unless it already is a *DecodeError.
type Visitor interface {
	VisitBool(v bool) error
	VisitI64(v int64) error
	VisitU64(v uint64) error
	VisitF64(v float64) error
	VisitBytes(v []byte) error // also used for String values (raw bytes; UTF-8 conversion is a binding-layer choice)

	// VisitInterface surfaces a concrete interface value's type name and
	// opaque payload bytes. Binding the name to a concrete Go type requires
	// a type registry the core decoder has no business owning, so that
	// binding is left to the host.
	VisitInterface(name string, raw []byte) error

	// Struct and bootstrap-struct traversal: exactly one
	// VisitStructStart/VisitStructEnd pair brackets zero or more
	// VisitStructField calls, one per present field, in strictly
	// increasing field-id order.
	VisitStructStart(descriptor *Descriptor) error
	VisitStructField(descriptor *Descriptor, field Field) error
	VisitStructEnd(descriptor *Descriptor) error

	// Sequence traversal (slices, arrays, FieldTypeSlice): one
	// VisitSeqStart/VisitSeqEnd pair brackets `length` recursive decodes.
	VisitSeqStart(descriptor *Descriptor, length int) error
	VisitSeqEnd(descriptor *Descriptor) error

	// Map traversal: one VisitMapStart/VisitMapEnd pair brackets `length`
	// (key, value) pairs, each decoded by a fresh recursive call into the
	// visitor (the key's Visit* call happens before the paired value's).
	VisitMapStart(descriptor *Descriptor, length int) error
	VisitMapEnd(descriptor *Descriptor) error
}

// ErrSkipVisit, returned from VisitStructField, tells the decoder the
// visitor declined this field's value but the decoder must still advance
// past its encoded bytes.
var ErrSkipVisit = newErr(KindCustom, "gobcore: visitor requested skip")
