package gobcore

// gvalue is an untyped decode tree, used only to bootstrap a WireType
// value off the wire (see wireTypeCollector below) without hand-writing a
// bespoke Visitor for each of the seven bootstrap shapes. Nothing outside
// this file's bootstrap use should need it — a host binding layer gets
// the typed Visitor callbacks directly.
type gvalue struct {
	b      bool
	i64    int64
	u64    uint64
	f64    float64
	bytes  []byte
	fields map[string]*gvalue
	seq    []*gvalue
}

func (v *gvalue) str() string {
	if v == nil {
		return ""
	}
	return string(v.bytes)
}

func (v *gvalue) int() int64 {
	if v == nil {
		return 0
	}
	return v.i64
}

func (v *gvalue) field(name string) *gvalue {
	if v == nil {
		return nil
	}
	return v.fields[name]
}

// wireTypeCollector is a Visitor that reconstructs a gvalue tree while the
// decoder walks a WireType value, tracking which struct/seq frame is
// currently being populated and which field name the next value belongs
// to. Stack-based rather than recursive-descent because the decoder, not
// this collector, drives the recursion — the collector just needs to
// remember where in the tree it currently is.
type wireTypeCollector struct {
	stack  []*gvalueFrame
	result *gvalue
}

type gvalueFrame struct {
	target       *gvalue
	pendingField string
}

func (c *wireTypeCollector) assign(v *gvalue) error {
	if len(c.stack) == 0 {
		c.result = v
		return nil
	}
	top := c.stack[len(c.stack)-1]
	if top.target.fields != nil {
		top.target.fields[top.pendingField] = v
	} else {
		top.target.seq = append(top.target.seq, v)
	}
	return nil
}

func (c *wireTypeCollector) VisitBool(v bool) error    { return c.assign(&gvalue{b: v}) }
func (c *wireTypeCollector) VisitI64(v int64) error    { return c.assign(&gvalue{i64: v}) }
func (c *wireTypeCollector) VisitU64(v uint64) error   { return c.assign(&gvalue{u64: v}) }
func (c *wireTypeCollector) VisitF64(v float64) error  { return c.assign(&gvalue{f64: v}) }
func (c *wireTypeCollector) VisitBytes(v []byte) error { return c.assign(&gvalue{bytes: v}) }

func (c *wireTypeCollector) VisitInterface(name string, raw []byte) error {
	return ErrDecodingUnsupported(nil)
}

func (c *wireTypeCollector) VisitStructStart(descriptor *Descriptor) error {
	c.stack = append(c.stack, &gvalueFrame{target: &gvalue{fields: map[string]*gvalue{}}})
	return nil
}

func (c *wireTypeCollector) VisitStructField(descriptor *Descriptor, field Field) error {
	c.stack[len(c.stack)-1].pendingField = field.Name
	return nil
}

func (c *wireTypeCollector) VisitStructEnd(descriptor *Descriptor) error {
	frame := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return c.assign(frame.target)
}

func (c *wireTypeCollector) VisitSeqStart(descriptor *Descriptor, length int) error {
	c.stack = append(c.stack, &gvalueFrame{target: &gvalue{seq: make([]*gvalue, 0, length)}})
	return nil
}

func (c *wireTypeCollector) VisitSeqEnd(descriptor *Descriptor) error {
	frame := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return c.assign(frame.target)
}

func (c *wireTypeCollector) VisitMapStart(descriptor *Descriptor, length int) error {
	return ErrDecodingUnsupported(descriptor)
}

func (c *wireTypeCollector) VisitMapEnd(descriptor *Descriptor) error {
	return ErrDecodingUnsupported(descriptor)
}

// resolve interprets a fully-collected WireType value as the one-of it is
// on the wire, failing AmbiguousWireType unless exactly one of
// ArrayT/SliceT/StructT/MapT was present.
func (c *wireTypeCollector) resolve() (*Descriptor, error) {
	variants := []string{"ArrayT", "SliceT", "StructT", "MapT"}

	var present string
	var count int
	for _, name := range variants {
		if c.result.field(name) != nil {
			present = name
			count++
		}
	}
	if count != 1 {
		return nil, ErrAmbiguousWireType
	}

	switch present {
	case "StructT":
		return structDescriptorFrom(c.result.field("StructT")), nil
	case "SliceT":
		return sliceDescriptorFrom(c.result.field("SliceT")), nil
	case "ArrayT":
		return arrayDescriptorFrom(c.result.field("ArrayT")), nil
	case "MapT":
		return mapDescriptorFrom(c.result.field("MapT")), nil
	default:
		panic("gobcore: unreachable WireType variant")
	}
}

func commonNameID(v *gvalue) (string, TypeId) {
	common := v.field("CommonType")
	return common.field("Name").str(), TypeId(common.field("Id").int())
}

func structDescriptorFrom(v *gvalue) *Descriptor {
	name, id := commonNameID(v)

	var fields []Field
	for _, fv := range v.field("Field").seq {
		fields = append(fields, Field{
			Name: fv.field("Name").str(),
			Id:   TypeId(fv.field("Id").int()),
		})
	}

	return &Descriptor{Kind: KindCustomStruct, Id: id, Name: name, Fields: fields}
}

func sliceDescriptorFrom(v *gvalue) *Descriptor {
	name, id := commonNameID(v)
	return &Descriptor{Kind: KindCustomSlice, Id: id, Name: name, Elem: TypeId(v.field("Elem").int())}
}

func arrayDescriptorFrom(v *gvalue) *Descriptor {
	name, id := commonNameID(v)
	return &Descriptor{
		Kind: KindCustomArray, Id: id, Name: name,
		Elem: TypeId(v.field("Elem").int()),
		Len:  v.field("Len").int(),
	}
}

func mapDescriptorFrom(v *gvalue) *Descriptor {
	name, id := commonNameID(v)
	return &Descriptor{
		Kind: KindCustomMap, Id: id, Name: name,
		Key:  TypeId(v.field("Key").int()),
		Elem: TypeId(v.field("Elem").int()),
	}
}

// discardVisitor consumes a value's bytes (via the normal decode path)
// without recording anything, for struct fields a host Visitor declines
// with ErrSkipVisit.
type discardVisitor struct{}

func (discardVisitor) VisitBool(bool) error                      { return nil }
func (discardVisitor) VisitI64(int64) error                      { return nil }
func (discardVisitor) VisitU64(uint64) error                     { return nil }
func (discardVisitor) VisitF64(float64) error                    { return nil }
func (discardVisitor) VisitBytes([]byte) error                   { return nil }
func (discardVisitor) VisitInterface(string, []byte) error       { return nil }
func (discardVisitor) VisitStructStart(*Descriptor) error        { return nil }
func (discardVisitor) VisitStructField(*Descriptor, Field) error { return nil }
func (discardVisitor) VisitStructEnd(*Descriptor) error          { return nil }
func (discardVisitor) VisitSeqStart(*Descriptor, int) error      { return nil }
func (discardVisitor) VisitSeqEnd(*Descriptor) error             { return nil }
func (discardVisitor) VisitMapStart(*Descriptor, int) error      { return nil }
func (discardVisitor) VisitMapEnd(*Descriptor) error             { return nil }
