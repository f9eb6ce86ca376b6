package gobcore

import "io"

// Decoder reads a gob byte stream that intermixes type-definition messages
// and value messages, maintaining a per-stream TypeDict and driving a
// caller-supplied Visitor through each decoded value. A Decoder is not
// safe for concurrent use: the dictionary, the reader, and the underlying
// byte source form one conceptual cursor.
type Decoder struct {
	r      *Reader
	dict   *TypeDict
	limits Limits
	log    Logger
}

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// WithLogger attaches a trace Logger; nil disables tracing, as does the
// default no-op Logger.
func WithLogger(l Logger) Option {
	return func(d *Decoder) { d.log = l }
}

// WithLimits overrides DefaultLimits.
func WithLimits(limits Limits) Option {
	return func(d *Decoder) { d.limits = limits }
}

// NewDecoder constructs a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{limits: DefaultLimits, log: noopLogger{}}
	for _, opt := range opts {
		opt(d)
	}
	d.r = NewReaderWithLimits(r, d.limits)
	d.dict = NewTypeDict(d.limits.MaxDictSize)
	return d
}

// Dict exposes the decoder's type dictionary for read-only introspection.
func (d *Decoder) Dict() *TypeDict { return d.dict }

// Decode consumes zero or more type-definition messages followed by one
// value message, driving visitor with the decoded value. It may be
// called repeatedly on the same Decoder to read a stream of independent
// top-level values; the dictionary persists across calls. On error the
// Decoder is left in an unspecified state and should be discarded.
func (d *Decoder) Decode(visitor Visitor) error {
	for {
		// The leading per-message byte count sandboxes this message to a
		// bounded sub-reader: a value's own length prefixes can never read
		// past the message boundary declared up front.
		msgLen, err := d.r.ReadUvarint()
		if err != nil {
			return err
		}
		if d.limits.MaxAllocBytes > 0 && msgLen > uint64(d.limits.MaxAllocBytes) {
			return newErr(KindNumOutOfRange, "gobcore: message length %d exceeds limit %d", msgLen, d.limits.MaxAllocBytes)
		}
		d.r.SetMessageBudget(msgLen)

		id, err := d.r.ReadTypeID()
		if err != nil {
			return err
		}

		if id >= 0 {
			d.logf("decoding value of type %d", id)
			descriptor := d.dict.Lookup(id)
			if descriptor == nil {
				return ErrUndefinedType(id)
			}
			err := d.decodeValue(descriptor, visitor)
			d.r.ClearMessageBudget()
			return err
		}

		defID := -id
		d.logf("defining type %d", defID)

		descriptor, err := d.decodeWireType()
		d.r.ClearMessageBudget()
		if err != nil {
			return err
		}
		if descriptor.Id != defID {
			return ErrDefiningIdMismatch(defID, descriptor.Id)
		}
		if d.dict.BuiltIn(defID) != nil {
			return ErrDefiningBuiltin(defID)
		}
		if err := d.dict.Define(defID, descriptor); err != nil {
			return err
		}
		// loop: a definition message may be followed by more definitions
		// before the next value message.
	}
}

// decodeWireType reads one WireType value (a one-of over Array/Slice/
// Struct/Map) and returns the Descriptor it describes. This is the
// "recursive bootstrap": the value decoder calls back into itself, driven
// by the hard-coded bootstrapWireType descriptor, to parse the very
// message that will register a new descriptor.
func (d *Decoder) decodeWireType() (*Descriptor, error) {
	wt := &wireTypeCollector{}
	if err := d.decodeValue(bootstrapWireType, wt); err != nil {
		return nil, err
	}
	return wt.resolve()
}

// decodeValue reads one value of descriptor's shape and drives exactly one
// Visit* call (or, for struct/sequence/map shapes and complex values, one
// bracketed run of calls) on visitor.
func (d *Decoder) decodeValue(descriptor *Descriptor, visitor Visitor) error {
	switch {
	case descriptor.Kind == KindBool:
		v, err := d.r.ReadBool()
		if err != nil {
			return err
		}
		return ignoreSkip(visitor.VisitBool(v))

	case descriptor.Kind == KindInt:
		v, err := d.r.ReadVarint()
		if err != nil {
			return err
		}
		return ignoreSkip(visitor.VisitI64(v))

	case descriptor.Kind == KindUint:
		v, err := d.r.ReadUvarint()
		if err != nil {
			return err
		}
		return ignoreSkip(visitor.VisitU64(v))

	case descriptor.Kind == KindFloat:
		v, err := d.r.ReadFloat64()
		if err != nil {
			return err
		}
		return ignoreSkip(visitor.VisitF64(v))

	case descriptor.Kind == KindComplex:
		re, err := d.r.ReadFloat64()
		if err != nil {
			return err
		}
		im, err := d.r.ReadFloat64()
		if err != nil {
			return err
		}
		if err := ignoreSkip(visitor.VisitSeqStart(descriptor, 2)); err != nil {
			return err
		}
		if err := ignoreSkip(visitor.VisitF64(re)); err != nil {
			return err
		}
		if err := ignoreSkip(visitor.VisitF64(im)); err != nil {
			return err
		}
		return ignoreSkip(visitor.VisitSeqEnd(descriptor))

	case descriptor.Kind == KindString || descriptor.Kind == KindByteSlice:
		// Both String and ByteSlice always take the direct read_bytes
		// path. Routing ByteSlice through the per-element sequence
		// iterator (treating each byte as its own varint-encoded Uint)
		// would be wrong — bytes are raw, not individually varint-encoded.
		v, err := d.r.ReadBytes()
		if err != nil {
			return err
		}
		return ignoreSkip(visitor.VisitBytes(v))

	case descriptor.Kind == KindInterface:
		return d.decodeInterface(visitor)

	case descriptor.IsStruct():
		return d.decodeStruct(descriptor, visitor)

	case descriptor.IsSequence():
		return d.decodeSeq(descriptor, visitor)

	case descriptor.Kind == KindCustomMap:
		return d.decodeMap(descriptor, visitor)

	default:
		return ErrDecodingUnsupported(descriptor)
	}
}

// decodeInterface reads a concrete-type name followed by a length-prefixed
// value blob and surfaces both raw; binding the name to a concrete Go
// type is a host-library concern.
func (d *Decoder) decodeInterface(visitor Visitor) error {
	nameBytes, err := d.r.ReadBytes()
	if err != nil {
		return err
	}
	if len(nameBytes) == 0 {
		// A nil interface value encodes as an empty name and no payload.
		return ignoreSkip(visitor.VisitInterface("", nil))
	}
	raw, err := d.r.ReadBytes()
	if err != nil {
		return err
	}
	return ignoreSkip(visitor.VisitInterface(string(nameBytes), raw))
}

// decodeStruct implements the delta field-id protocol: a struct value
// is a sequence of (delta, value) pairs terminated by delta == 0.
// currentField starts at -1 and accumulates strictly positive deltas,
// enforcing strictly increasing field ids by construction.
func (d *Decoder) decodeStruct(descriptor *Descriptor, visitor Visitor) error {
	if err := ignoreSkip(visitor.VisitStructStart(descriptor)); err != nil {
		return err
	}

	currentField := int64(-1)
	for {
		delta, err := d.r.ReadUvarint()
		if err != nil {
			return err
		}
		if delta == 0 {
			break
		}
		currentField += int64(delta)

		if currentField < 0 || currentField >= int64(len(descriptor.Fields)) {
			return ErrInvalidField
		}
		field := descriptor.Fields[currentField]

		skip, err := visitStructFieldErr(visitor.VisitStructField(descriptor, field))
		if err != nil {
			return err
		}

		fieldDescriptor := d.dict.Lookup(field.Id)
		if fieldDescriptor == nil {
			return ErrUndefinedType(field.Id)
		}

		if skip {
			if err := d.skipValue(fieldDescriptor); err != nil {
				return err
			}
			continue
		}
		if err := d.decodeValue(fieldDescriptor, visitor); err != nil {
			return err
		}
	}

	return ignoreSkip(visitor.VisitStructEnd(descriptor))
}

// decodeSeq implements the sequence iterator: a uvarint length followed
// by that many values of the element descriptor. Arrays additionally
// check the decoded length against the wire type's declared Len.
func (d *Decoder) decodeSeq(descriptor *Descriptor, visitor Visitor) error {
	length, err := d.r.ReadUvarint()
	if err != nil {
		return err
	}
	if max := uint64(d.limits.MaxSliceLen); max > 0 && length > max {
		return newErr(KindNumOutOfRange, "gobcore: sequence length %d exceeds limit %d", length, max)
	}
	if descriptor.Kind == KindCustomArray && int64(length) != descriptor.Len {
		return ErrInvalidField
	}

	elemDescriptor := d.dict.Lookup(descriptor.Elem)
	if elemDescriptor == nil {
		return ErrUndefinedType(descriptor.Elem)
	}

	if err := ignoreSkip(visitor.VisitSeqStart(descriptor, int(length))); err != nil {
		return err
	}
	for i := uint64(0); i < length; i++ {
		if err := d.decodeValue(elemDescriptor, visitor); err != nil {
			return err
		}
	}
	return ignoreSkip(visitor.VisitSeqEnd(descriptor))
}

// decodeMap reads a uvarint length followed by that many (key, value)
// pairs, each dispatched recursively.
func (d *Decoder) decodeMap(descriptor *Descriptor, visitor Visitor) error {
	length, err := d.r.ReadUvarint()
	if err != nil {
		return err
	}
	if max := uint64(d.limits.MaxSliceLen); max > 0 && length > max {
		return newErr(KindNumOutOfRange, "gobcore: map length %d exceeds limit %d", length, max)
	}

	keyDescriptor := d.dict.Lookup(descriptor.Key)
	if keyDescriptor == nil {
		return ErrUndefinedType(descriptor.Key)
	}
	valDescriptor := d.dict.Lookup(descriptor.Elem)
	if valDescriptor == nil {
		return ErrUndefinedType(descriptor.Elem)
	}

	if err := ignoreSkip(visitor.VisitMapStart(descriptor, int(length))); err != nil {
		return err
	}
	for i := uint64(0); i < length; i++ {
		if err := d.decodeValue(keyDescriptor, visitor); err != nil {
			return err
		}
		if err := d.decodeValue(valDescriptor, visitor); err != nil {
			return err
		}
	}
	return ignoreSkip(visitor.VisitMapEnd(descriptor))
}

// skipValue consumes and discards one value of descriptor's shape without
// invoking the visitor, for a struct field the visitor declined via
// ErrSkipVisit. The stream must still be advanced past the field's
// bytes exactly as if it had been decoded, just without the recursive
// Visit* calls.
func (d *Decoder) skipValue(descriptor *Descriptor) error {
	return d.decodeValue(descriptor, discardVisitor{})
}

func ignoreSkip(err error) error {
	if err == ErrSkipVisit {
		return nil
	}
	if err != nil {
		if _, ok := err.(*DecodeError); ok {
			return err
		}
		return ErrCustom(err)
	}
	return nil
}

func visitStructFieldErr(err error) (skip bool, _ error) {
	if err == ErrSkipVisit {
		return true, nil
	}
	if err != nil {
		if _, ok := err.(*DecodeError); ok {
			return false, err
		}
		return false, ErrCustom(err)
	}
	return false, nil
}
