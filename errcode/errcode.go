package errcode

import "errors"

// Code is a stable error identifier for configuration and allocation faults.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK          Code = "ok"
	Unsupported Code = "unsupported"

	// Registry construction
	UnknownDomain        Code = "unknown_domain"
	UnknownPeripheral    Code = "unknown_peripheral"
	DuplicateDomain      Code = "duplicate_domain"
	DuplicatePeripheral  Code = "duplicate_peripheral"
	InvalidChannelCount  Code = "invalid_channel_count"
	InvalidMetadata      Code = "invalid_metadata"
	RegistryNotInstalled Code = "registry_not_installed"

	// Channel allocation
	UnknownChannel Code = "unknown_channel"
	ChannelInUse   Code = "channel_in_use"
	NoChannel      Code = "no_channel"

	Error Code = "error" // generic fallback
)

// E keeps an operation name, detail and cause next to a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is(err, errcode.ChannelInUse) match a wrapped *E.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// New builds an *E for op with a detail message.
func New(c Code, op, msg string) *E { return &E{C: c, Op: op, Msg: msg} }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Error
}
