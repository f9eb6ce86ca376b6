package gobcore

// Hard-coded descriptors for gob's self-describing WireType family. The
// very first thing a stream containing any user type does is send a
// WireType value encoded in gob itself, so these shapes cannot be
// discovered from the wire — they have to be known in advance, exactly as
// encoding/gob's own decoder hard-codes them.

var bootstrapCommonType = &Descriptor{
	Kind: KindBootstrapCommonType,
	Id:   BootstrapCommonTypeId,
	Name: "CommonType",
	Fields: []Field{
		{Name: "Name", Id: BuiltinStringId},
		{Name: "Id", Id: BuiltinIntId},
	},
}

var bootstrapFieldType = &Descriptor{
	Kind: KindBootstrapFieldType,
	Id:   BootstrapFieldTypeId,
	Name: "FieldType",
	Fields: []Field{
		{Name: "Name", Id: BuiltinStringId},
		{Name: "Id", Id: BuiltinIntId},
	},
}

var bootstrapFieldTypeSlice = &Descriptor{
	Kind: KindBootstrapFieldTypeSlice,
	Id:   BootstrapFieldTypeSliceId,
	Name: "FieldTypeSlice",
	Elem: BootstrapFieldTypeId,
}

var bootstrapStructType = &Descriptor{
	Kind: KindBootstrapStructType,
	Id:   BootstrapStructTypeId,
	Name: "StructType",
	Fields: []Field{
		{Name: "CommonType", Id: BootstrapCommonTypeId},
		{Name: "Field", Id: BootstrapFieldTypeSliceId},
	},
}

var bootstrapArrayType = &Descriptor{
	Kind: KindBootstrapArrayType,
	Id:   BootstrapArrayTypeId,
	Name: "ArrayType",
	Fields: []Field{
		{Name: "CommonType", Id: BootstrapCommonTypeId},
		{Name: "Elem", Id: BuiltinIntId},
		{Name: "Len", Id: BuiltinIntId},
	},
}

var bootstrapSliceType = &Descriptor{
	Kind: KindBootstrapSliceType,
	Id:   BootstrapSliceTypeId,
	Name: "SliceType",
	Fields: []Field{
		{Name: "CommonType", Id: BootstrapCommonTypeId},
		{Name: "Elem", Id: BuiltinIntId},
	},
}

var bootstrapMapType = &Descriptor{
	Kind: KindBootstrapMapType,
	Id:   BootstrapMapTypeId,
	Name: "MapType",
	Fields: []Field{
		{Name: "CommonType", Id: BootstrapCommonTypeId},
		{Name: "Key", Id: BuiltinIntId},
		{Name: "Elem", Id: BuiltinIntId},
	},
}

var bootstrapWireType = &Descriptor{
	Kind: KindBootstrapWireType,
	Id:   BootstrapWireTypeId,
	Name: "WireType",
	Fields: []Field{
		{Name: "ArrayT", Id: BootstrapArrayTypeId},
		{Name: "SliceT", Id: BootstrapSliceTypeId},
		{Name: "StructT", Id: BootstrapStructTypeId},
		{Name: "MapT", Id: BootstrapMapTypeId},
	},
}

var builtinDescriptors = map[TypeId]*Descriptor{
	BuiltinBoolId:      {Kind: KindBool, Id: BuiltinBoolId, Name: "bool"},
	BuiltinIntId:       {Kind: KindInt, Id: BuiltinIntId, Name: "int"},
	BuiltinUintId:      {Kind: KindUint, Id: BuiltinUintId, Name: "uint"},
	BuiltinFloatId:     {Kind: KindFloat, Id: BuiltinFloatId, Name: "float"},
	BuiltinByteSliceId: {Kind: KindByteSlice, Id: BuiltinByteSliceId, Name: "[]byte"},
	BuiltinStringId:    {Kind: KindString, Id: BuiltinStringId, Name: "string"},
	BuiltinComplexId:   {Kind: KindComplex, Id: BuiltinComplexId, Name: "complex"},
	BuiltinInterfaceId: {Kind: KindInterface, Id: BuiltinInterfaceId, Name: "interface"},

	BootstrapCommonTypeId:     bootstrapCommonType,
	BootstrapFieldTypeId:      bootstrapFieldType,
	BootstrapFieldTypeSliceId: bootstrapFieldTypeSlice,
	BootstrapStructTypeId:     bootstrapStructType,
	BootstrapArrayTypeId:      bootstrapArrayType,
	BootstrapSliceTypeId:      bootstrapSliceType,
	BootstrapMapTypeId:        bootstrapMapType,
	BootstrapWireTypeId:       bootstrapWireType,
}
