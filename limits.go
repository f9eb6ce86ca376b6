package gobcore

// Limits bounds the allocations a Decoder will perform in response to
// length prefixes read from an untrusted stream. A length prefix on the
// wire is just a number; without a ceiling, a single hostile prefix can
// request an arbitrarily large allocation before any data backs it up.
// Zero disables the corresponding check.
type Limits struct {
	MaxAllocBytes uint // ceiling on a single ReadBytes call; 0 = unbounded
	MaxSliceLen   uint // ceiling on a single slice/array/map length prefix; 0 = unbounded
	MaxDictSize   int  // ceiling on the number of user types a stream may define; 0 = unbounded
}

// DefaultLimits is conservative enough to stop a hostile length prefix from
// driving a multi-gigabyte allocation, generous enough not to bite real
// payloads.
var DefaultLimits = Limits{
	MaxAllocBytes: 64 << 20, // 64 MiB
	MaxSliceLen:   1 << 24,  // ~16M elements
	MaxDictSize:   1 << 16,
}
