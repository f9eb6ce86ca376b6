package gobcore

import "fmt"

// Kind classifies a decoding failure. It mirrors the error taxonomy gob's
// wire format and this decoder's state machine can produce; it does not
// distinguish among arbitrary binding-layer failures, which are reported
// via KindCustom with the upstream error preserved as cause.
type Kind int

const (
	KindIo Kind = iota + 1
	KindNumZeroBytes
	KindNumOutOfRange
	KindInvalidField
	KindAmbiguousWireType
	KindUndefinedType
	KindTypeAlreadyDefined
	KindDefiningIdMismatch
	KindDefiningBuiltin
	KindDecodingUnsupported
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindIo:
		return "Io"
	case KindNumZeroBytes:
		return "NumZeroBytes"
	case KindNumOutOfRange:
		return "NumOutOfRange"
	case KindInvalidField:
		return "InvalidField"
	case KindAmbiguousWireType:
		return "AmbiguousWireType"
	case KindUndefinedType:
		return "UndefinedType"
	case KindTypeAlreadyDefined:
		return "TypeAlreadyDefined"
	case KindDefiningIdMismatch:
		return "DefiningIdMismatch"
	case KindDefiningBuiltin:
		return "DefiningBuiltin"
	case KindDecodingUnsupported:
		return "DecodingUnsupported"
	case KindCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// DecodeError is the single error type this package returns. TypeId is
// populated for the kinds that carry one (UndefinedType, TypeAlreadyDefined,
// DefiningIdMismatch, DefiningBuiltin); Got is additionally populated for
// DefiningIdMismatch.
type DecodeError struct {
	Kind   Kind
	TypeId TypeId
	Got    TypeId
	msg    string
	cause  error
}

func (e *DecodeError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	switch e.Kind {
	case KindUndefinedType:
		return fmt.Sprintf("gobcore: undefined type id %d", e.TypeId)
	case KindTypeAlreadyDefined:
		return fmt.Sprintf("gobcore: type id %d already defined", e.TypeId)
	case KindDefiningIdMismatch:
		return fmt.Sprintf("gobcore: definition id mismatch: expected %d, got %d", e.TypeId, e.Got)
	case KindDefiningBuiltin:
		return fmt.Sprintf("gobcore: attempt to redefine built-in type id %d", e.TypeId)
	case KindIo:
		return fmt.Sprintf("gobcore: io error: %v", e.cause)
	default:
		return fmt.Sprintf("gobcore: %s", e.Kind)
	}
}

func (e *DecodeError) Unwrap() error { return e.cause }

// Is reports whether target is a *DecodeError with the same Kind, so
// callers can write errors.Is(err, gobcore.ErrInvalidField) against the
// package-level sentinels below.
func (e *DecodeError) Is(target error) bool {
	other, ok := target.(*DecodeError)
	return ok && e.Kind == other.Kind
}

func newErr(kind Kind, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is checks against kinds that carry no payload.
var (
	ErrInvalidField      = &DecodeError{Kind: KindInvalidField, msg: "gobcore: invalid struct field id"}
	ErrAmbiguousWireType = &DecodeError{Kind: KindAmbiguousWireType, msg: "gobcore: WireType must have exactly one variant set"}
)

// ErrUndefinedType builds the UndefinedType(id) error.
func ErrUndefinedType(id TypeId) error {
	return &DecodeError{Kind: KindUndefinedType, TypeId: id}
}

// ErrTypeAlreadyDefined builds the TypeAlreadyDefined(id) error.
func ErrTypeAlreadyDefined(id TypeId) error {
	return &DecodeError{Kind: KindTypeAlreadyDefined, TypeId: id}
}

// ErrDefiningIdMismatch builds the DefiningIdMismatch(expected, got) error.
func ErrDefiningIdMismatch(expected, got TypeId) error {
	return &DecodeError{Kind: KindDefiningIdMismatch, TypeId: expected, Got: got}
}

// ErrDefiningBuiltin builds the DefiningBuiltin(id) error.
func ErrDefiningBuiltin(id TypeId) error {
	return &DecodeError{Kind: KindDefiningBuiltin, TypeId: id}
}

// ErrDecodingUnsupported builds the DecodingUnsupported(descriptor) error.
func ErrDecodingUnsupported(d *Descriptor) error {
	name := "<nil>"
	if d != nil {
		name = d.String()
	}
	return newErr(KindDecodingUnsupported, "gobcore: decoding unsupported for %s", name)
}

// ErrCustom wraps a binding-layer error so it can cross the visitor
// boundary without losing its Kind classification.
func ErrCustom(cause error) error {
	return &DecodeError{Kind: KindCustom, cause: cause, msg: fmt.Sprintf("gobcore: %v", cause)}
}
