package faults

import "fmt"

// Kind classifies a runtime fault that a handler raises and deliberately
// does not recover. The router's recovery boundary is the only place these
// are caught, and it maps every kind to a bare 500.
type Kind string

const (
	KindArithmetic    Kind = "arithmetic"
	KindMissingKey    Kind = "missing_key"
	KindMissingField  Kind = "missing_field"
	KindTypeMismatch  Kind = "type_mismatch"
	KindEmptySequence Kind = "empty_sequence"
	KindDateRange     Kind = "date_range"
	KindRuntime       Kind = "runtime"
)

// Fault is the panic value used for every deliberately unrecovered failure.
type Fault struct {
	Kind    Kind
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// DivisionByZero reports a zero divisor at the given operation site.
func DivisionByZero(site string) *Fault {
	return &Fault{Kind: KindArithmetic, Message: "division by zero in " + site}
}

// MissingKey reports a lookup of a key that is not in its map.
func MissingKey(key string) *Fault {
	return &Fault{Kind: KindMissingKey, Message: fmt.Sprintf("key %q not found", key)}
}

// MissingField reports a required field absent from a request payload.
func MissingField(field string) *Fault {
	return &Fault{Kind: KindMissingField, Message: fmt.Sprintf("field %q not present in payload", field)}
}

// TypeMismatch reports a value whose dynamic type cannot support the
// attempted operation.
func TypeMismatch(want string, got any) *Fault {
	return &Fault{Kind: KindTypeMismatch, Message: fmt.Sprintf("expected %s, got %T", want, got)}
}

// EmptySequence reports an aggregate operation applied to zero elements.
func EmptySequence(op string) *Fault {
	return &Fault{Kind: KindEmptySequence, Message: op + " of empty sequence"}
}

// DateOutOfRange reports an attempt to construct a calendar date outside
// the supported range.
func DateOutOfRange(year, month int) *Fault {
	return &Fault{Kind: KindDateRange, Message: fmt.Sprintf("date out of range: year=%d month=%d", year, month)}
}

// Runtimef builds a generic runtime fault with a formatted message. Used for
// the guard checks that raise explicitly instead of tripping on an operation.
func Runtimef(format string, args ...any) *Fault {
	return &Fault{Kind: KindRuntime, Message: fmt.Sprintf(format, args...)}
}
