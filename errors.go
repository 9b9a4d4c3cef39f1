package wasmbe

import "fmt"

// ErrorKind categorizes a fatal encoder failure.
type ErrorKind string

const (
	ErrUnresolvedName     ErrorKind = "unresolved_name"
	ErrUnknownBuiltin     ErrorKind = "unknown_builtin"
	ErrUnsupportedType    ErrorKind = "unsupported_type"
	ErrUnsupportedExpr    ErrorKind = "unsupported_expr"
	ErrMissingMain        ErrorKind = "missing_main"
	ErrMissingSubModule   ErrorKind = "missing_submodule"
	ErrLabelNotFound      ErrorKind = "label_not_found"
	ErrDuplicateSignature ErrorKind = "duplicate_name"
)

// EncodeError is the value panicked by a fatal encoder failure. The encoder
// never recovers internally; it is the caller's responsibility to install a
// recover if a non-fatal presentation is wanted (e.g. a front-end that wants
// to report a diagnostic instead of crashing).
type EncodeError struct {
	Kind   ErrorKind
	Name   string
	Detail string
}

func (e *EncodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("wasmbe: %s %q: %s", e.Kind, e.Name, e.Detail)
	}
	return fmt.Sprintf("wasmbe: %s %q", e.Kind, e.Name)
}

func fail(kind ErrorKind, name string, detail string) {
	panic(&EncodeError{Kind: kind, Name: name, Detail: detail})
}

func failf(kind ErrorKind, name string, format string, args ...any) {
	fail(kind, name, fmt.Sprintf(format, args...))
}
