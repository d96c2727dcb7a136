package luaapi

import "fmt"

// The script-facing failure kinds. Fatal kinds abort the running entry
// point through the interpreter before any document mutation; advisory
// kinds are logged and the affected field keeps its default.

// ValidationError reports a required argument that is absent or
// structurally malformed, such as mismatched coordinate vector lengths.
type ValidationError struct{ Msg string }

// DomainError reports a value outside its domain, such as an unknown
// enumeration token or an out-of-range color.
type DomainError struct{ Msg string }

// StateError reports missing host context, such as no selected page.
type StateError struct{ Msg string }

// CapabilityError reports an operation the resolved target does not
// support. The call continues without the affected sub-operation.
type CapabilityError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
func (e *DomainError) Error() string     { return e.Msg }
func (e *StateError) Error() string      { return e.Msg }
func (e *CapabilityError) Error() string { return e.Msg }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func domainf(format string, args ...interface{}) error {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

func statef(format string, args ...interface{}) error {
	return &StateError{Msg: fmt.Sprintf(format, args...)}
}

func capabilityf(format string, args ...interface{}) error {
	return &CapabilityError{Msg: fmt.Sprintf(format, args...)}
}
