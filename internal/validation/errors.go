package validation

import (
	"fmt"
	"strings"
)

// Kind identifies which validation rule failed.
type Kind string

const (
	InvalidQuantity Kind = "InvalidQuantity"
	MalformedField  Kind = "MalformedField"
	PinFormat       Kind = "PinFormat"
)

// Error is a validation failure resolved at the point of entry. It never
// crosses into the pricing or filter engines except as InvalidQuantity.
type Error struct {
	Kind    Kind   `json:"kind"`
	Field   string `json:"field,omitempty"`
	Message string `json:"error"`
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
}

// Is matches another *Error with the same Kind, so errors.Is(err,
// &Error{Kind: PinFormat}) works regardless of field and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Field == "" || t.Field == e.Field)
}

// Errors collects per-field failures for a wizard step.
type Errors []*Error

func (es Errors) Error() string {
	msgs := make([]string, 0, len(es))
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Field returns the failure for a field, or nil.
func (es Errors) Field(name string) *Error {
	for _, e := range es {
		if e.Field == name {
			return e
		}
	}
	return nil
}

// OrNil returns nil for an empty set so callers can `return errs.OrNil()`.
func (es Errors) OrNil() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

func malformed(field, msg string) *Error {
	return &Error{Kind: MalformedField, Field: field, Message: msg}
}
