package gobcore_test

import "math"

// Hand-rolled gob wire fixtures for the adversarial and bootstrap-schema
// test scenarios that the standard library's own encoder cannot easily
// be coaxed into producing (redefinitions, ambiguous one-of). Assembled
// byte-by-byte in the same spirit as a buffer builder, but implementing
// gob's uvarint — a leading signed byte plus big-endian magnitude —
// rather than a continuation-bit varint.

func gobUvarint(v uint64) []byte {
	if v < 0x80 {
		return []byte{byte(v)}
	}

	var tmp [8]byte
	n := 0
	for v > 0 {
		tmp[n] = byte(v)
		v >>= 8
		n++
	}

	out := make([]byte, 0, n+1)
	out = append(out, byte(-n))
	for i := n - 1; i >= 0; i-- {
		out = append(out, tmp[i])
	}
	return out
}

func gobVarint(v int64) []byte {
	var u uint64
	if v < 0 {
		u = uint64(^v)<<1 | 1
	} else {
		u = uint64(v) << 1
	}
	return gobUvarint(u)
}

func gobString(s string) []byte {
	return append(gobUvarint(uint64(len(s))), []byte(s)...)
}

// gobBytes is gobString's shape applied to an arbitrary byte slice, for
// building interface-value payloads (a name blob followed by an opaque
// raw blob, both length-prefixed the same way).
func gobBytes(b []byte) []byte {
	return append(gobUvarint(uint64(len(b))), b...)
}

func gobBool(b bool) []byte {
	if b {
		return gobUvarint(1)
	}
	return gobUvarint(0)
}

func gobFloat64(f float64) []byte {
	bits := math.Float64bits(f)
	var rev uint64
	for i := 0; i < 8; i++ {
		rev = rev<<8 | (bits & 0xff)
		bits >>= 8
	}
	return gobUvarint(rev)
}

// fieldPair is one (field index, already-encoded value) pair for
// encodeStruct, which turns a set of them into the delta field-id
// sequence a struct value carries on the wire.
type fieldPair struct {
	idx int
	val []byte
}

func encodeStruct(fields ...fieldPair) []byte {
	var out []byte
	cur := -1
	for _, f := range fields {
		delta := f.idx - cur
		out = append(out, gobUvarint(uint64(delta))...)
		out = append(out, f.val...)
		cur = f.idx
	}
	return append(out, gobUvarint(0)...)
}

func encodeSeq(elems ...[]byte) []byte {
	out := gobUvarint(uint64(len(elems)))
	for _, e := range elems {
		out = append(out, e...)
	}
	return out
}

func commonTypeBytes(name string, id int64) []byte {
	return encodeStruct(
		fieldPair{0, gobString(name)},
		fieldPair{1, gobVarint(id)},
	)
}

func fieldTypeBytes(name string, id int64) []byte {
	return encodeStruct(
		fieldPair{0, gobString(name)},
		fieldPair{1, gobVarint(id)},
	)
}

func structTypeBytes(name string, id int64, fields ...[]byte) []byte {
	return encodeStruct(
		fieldPair{0, commonTypeBytes(name, id)},
		fieldPair{1, encodeSeq(fields...)},
	)
}

func sliceTypeBytes(name string, id, elem int64) []byte {
	return encodeStruct(
		fieldPair{0, commonTypeBytes(name, id)},
		fieldPair{1, gobVarint(elem)},
	)
}

func arrayTypeBytes(name string, id, elem, length int64) []byte {
	return encodeStruct(
		fieldPair{0, commonTypeBytes(name, id)},
		fieldPair{1, gobVarint(elem)},
		fieldPair{2, gobVarint(length)},
	)
}

func mapTypeBytes(name string, id, key, elem int64) []byte {
	return encodeStruct(
		fieldPair{0, commonTypeBytes(name, id)},
		fieldPair{1, gobVarint(key)},
		fieldPair{2, gobVarint(elem)},
	)
}

func wireTypeStruct(st []byte) []byte { return encodeStruct(fieldPair{2, st}) }
func wireTypeSlice(sl []byte) []byte  { return encodeStruct(fieldPair{1, sl}) }
func wireTypeArray(ar []byte) []byte  { return encodeStruct(fieldPair{0, ar}) }
func wireTypeMap(mp []byte) []byte    { return encodeStruct(fieldPair{3, mp}) }

// wireTypeAmbiguous sets both ArrayT and SliceT, which must be rejected
// with AmbiguousWireType: a WireType value names exactly one shape.
func wireTypeAmbiguous(ar, sl []byte) []byte {
	return encodeStruct(fieldPair{0, ar}, fieldPair{1, sl})
}

func gobMessage(payload []byte) []byte {
	return append(gobUvarint(uint64(len(payload))), payload...)
}

func defMessage(id int64, wireType []byte) []byte {
	return gobMessage(append(gobVarint(-id), wireType...))
}

func valueMessage(id int64, value []byte) []byte {
	return gobMessage(append(gobVarint(id), value...))
}
