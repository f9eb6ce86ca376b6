package gobcore

import "fmt"

// TypeId identifies a type within one stream. A negative TypeId on the wire
// as a message's leading value means "a definition for -TypeId follows";
// non-negative means "a value of TypeId follows". Ids below 64 are
// reserved for built-ins and the bootstrap schema (see the Builtin*Id and
// Bootstrap*Id constants below); user types start at 64.
type TypeId int64

// Reserved, wire-stable type ids.
const (
	BuiltinBoolId      TypeId = 1
	BuiltinIntId       TypeId = 2
	BuiltinUintId      TypeId = 3
	BuiltinFloatId     TypeId = 4
	BuiltinByteSliceId TypeId = 5
	BuiltinStringId    TypeId = 6
	BuiltinComplexId   TypeId = 7
	BuiltinInterfaceId TypeId = 8

	BootstrapWireTypeId       TypeId = 16
	BootstrapArrayTypeId      TypeId = 17
	BootstrapCommonTypeId     TypeId = 18
	BootstrapSliceTypeId      TypeId = 19
	BootstrapStructTypeId     TypeId = 20
	BootstrapFieldTypeId      TypeId = 21
	BootstrapFieldTypeSliceId TypeId = 22
	BootstrapMapTypeId        TypeId = 23

	FirstUserTypeId TypeId = 64
)

// DescKind tags the variant of a Descriptor.
type DescKind int

const (
	KindBool DescKind = iota + 1
	KindInt
	KindUint
	KindFloat
	KindByteSlice
	KindString
	KindComplex
	KindInterface

	// Bootstrap descriptors: hard-coded shapes for the self-describing
	// WireType family, needed to read any stream that defines a user type
	// at all.
	KindBootstrapCommonType
	KindBootstrapFieldType
	KindBootstrapFieldTypeSlice
	KindBootstrapStructType
	KindBootstrapArrayType
	KindBootstrapSliceType
	KindBootstrapMapType
	KindBootstrapWireType

	// User-defined shapes, captured from a WireType value on the wire.
	KindCustomStruct
	KindCustomSlice
	KindCustomArray
	KindCustomMap
)

// Field is one member of a struct shape: its wire name and the TypeId of
// its value type. Field order is significant — it defines the integer
// field id used on the wire (starting at 0).
type Field struct {
	Name string
	Id   TypeId
}

// Descriptor is the decoder's in-memory, immutable representation of a
// type. Descriptors are shared by reference and identified by Id;
// struct/slice/array/map descriptors refer to their element/key/field
// types by TypeId rather than by descriptor pointer, so a dictionary
// lookup — not descriptor construction — is what resolves a
// self-referential or forward-referenced shape.
type Descriptor struct {
	Kind DescKind
	Id   TypeId
	Name string

	Fields []Field // struct shapes

	Elem TypeId // slice/array element type id
	Len  int64  // array length (ArrayType only)

	Key TypeId // map key type id (map shapes)
}

func (d *Descriptor) String() string {
	if d.Name != "" {
		return fmt.Sprintf("%s(id=%d)", d.Name, d.Id)
	}
	return fmt.Sprintf("descriptor(kind=%d,id=%d)", d.Kind, d.Id)
}

// IsStruct reports whether d decodes as a field-delta struct: true for
// both bootstrap struct shapes and user-defined Custom structs.
func (d *Descriptor) IsStruct() bool {
	switch d.Kind {
	case KindBootstrapCommonType, KindBootstrapFieldType, KindBootstrapStructType,
		KindBootstrapArrayType, KindBootstrapSliceType, KindBootstrapMapType, KindBootstrapWireType,
		KindCustomStruct:
		return true
	}
	return false
}

// IsSequence reports whether d decodes as a length-prefixed sequence of
// elements: slices, arrays, and FieldTypeSlice.
func (d *Descriptor) IsSequence() bool {
	switch d.Kind {
	case KindBootstrapFieldTypeSlice, KindCustomSlice, KindCustomArray:
		return true
	}
	return false
}
