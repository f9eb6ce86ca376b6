package gobcore

import (
	"bufio"
	"io"
	"math"
)

// Reader decodes gob's primitive wire encodings from an underlying byte
// source. It owns no buffering beyond what bufio.Reader gives it, and every
// method can fail with an Io error if the source is exhausted or broken.
type Reader struct {
	r      *bufio.Reader
	limits Limits
	budget int64 // remaining bytes allowed for the current top-level message; -1 = unlimited
}

// NewReader wraps r for gob primitive decoding using the default limits.
func NewReader(r io.Reader) *Reader {
	return NewReaderWithLimits(r, DefaultLimits)
}

// NewReaderWithLimits wraps r, bounding allocation-driving reads by limits.
func NewReaderWithLimits(r io.Reader, limits Limits) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br, limits: limits, budget: -1}
}

// SetMessageBudget sandboxes subsequent reads to at most n bytes. The
// stream driver calls this with each message's leading byte-count prefix
// so a value's own declared length can't read past its message boundary.
// ClearMessageBudget lifts the bound again.
func (r *Reader) SetMessageBudget(n uint64) { r.budget = int64(n) }

// ClearMessageBudget removes any bound set by SetMessageBudget.
func (r *Reader) ClearMessageBudget() { r.budget = -1 }

func (r *Reader) consume(n int) error {
	if r.budget < 0 {
		return nil
	}
	r.budget -= int64(n)
	if r.budget < 0 {
		return newErr(KindNumOutOfRange, "gobcore: message body exceeded its declared byte count")
	}
	return nil
}

// ReadUvarint decodes a gob unsigned variable-length integer: a leading
// signed byte b. If b >= 0, that byte IS the value. If b < 0, let n = -b;
// the next n bytes are a big-endian unsigned integer of n bytes.
func (r *Reader) ReadUvarint() (uint64, error) {
	lead, err := r.r.ReadByte()
	if err != nil {
		return 0, wrapIo(err)
	}
	if err := r.consume(1); err != nil {
		return 0, err
	}

	if lead < 0x80 {
		return uint64(lead), nil
	}

	n := 256 - int(lead) // number of following bytes, since lead = uint8(-n)
	if n == 0 {
		return 0, newErr(KindNumZeroBytes, "gobcore: zero-length uvarint lead byte")
	}
	if n > 8 {
		return 0, newErr(KindNumOutOfRange, "gobcore: uvarint length %d exceeds 8 bytes", n)
	}

	var v uint64
	for i := 0; i < n; i++ {
		b, err := r.r.ReadByte()
		if err != nil {
			return 0, wrapIo(err)
		}
		if err := r.consume(1); err != nil {
			return 0, err
		}
		v = v<<8 | uint64(b)
	}
	return v, nil
}

// ReadVarint decodes a gob zig-zag-like signed integer: read a uvarint u,
// then bitwise-complement the shifted magnitude if its low bit is set.
func (r *Reader) ReadVarint() (int64, error) {
	u, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}

	x := int64(u >> 1)
	if u&1 != 0 {
		x = ^x
	}
	return x, nil
}

// ReadTypeID is an alias for ReadVarint: type ids ride the signed encoding
// so that a negative lead can flag a type definition message.
func (r *Reader) ReadTypeID() (TypeId, error) {
	v, err := r.ReadVarint()
	return TypeId(v), err
}

// ReadBool decodes a uvarint and reports whether it is non-zero.
func (r *Reader) ReadBool() (bool, error) {
	u, err := r.ReadUvarint()
	if err != nil {
		return false, err
	}
	return u != 0, nil
}

// ReadFloat64 decodes a uvarint, byte-reverses it, and reinterprets the
// result as an IEEE-754 double. Gob stores floats byte-reversed so that
// small-magnitude values (common in practice) compress well as varints.
func (r *Reader) ReadFloat64() (float64, error) {
	u, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(reverseBytes(u)), nil
}

func reverseBytes(v uint64) uint64 {
	var out uint64
	for i := 0; i < 8; i++ {
		out = out<<8 | (v & 0xff)
		v >>= 8
	}
	return out
}

// ReadBytes reads a uvarint length prefix followed by that many raw bytes.
// It fails with NumOutOfRange if the declared length exceeds the reader's
// configured MaxAllocBytes, guarding against a hostile or truncated length
// prefix driving an unbounded allocation.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if max := r.limits.MaxAllocBytes; max > 0 && n > uint64(max) {
		return nil, newErr(KindNumOutOfRange, "gobcore: byte length %d exceeds limit %d", n, max)
	}
	if err := r.consume(int(n)); err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, wrapIo(err)
	}
	return buf, nil
}

func wrapIo(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return &DecodeError{Kind: KindIo, cause: err}
}
