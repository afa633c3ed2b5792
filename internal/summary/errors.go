package summary

import "errors"

// Kind classifies the fatal failures of a summarization request.
// Degraded generation is not represented here: a failed LLM call is
// recovered in place as section text and never fails the request.
type Kind int

const (
	// KindUnknown covers errors produced outside this package.
	KindUnknown Kind = iota

	// KindMissingInput means no lead identifier was supplied.
	KindMissingInput

	// KindNotFound means a CRM query returned zero rows for the lead
	// or its campaign history (query transport failures are folded
	// into the same class at the data layer).
	KindNotFound

	// KindUnparseable means the single-call variant's output could
	// not be split into the required sections.
	KindUnparseable
)

// Error is a classified summarization failure. The boundary layer maps
// Kind to an HTTP status and Message to the single-key error payload.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// newError builds an Error with an optional wrapped cause.
func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf extracts the Kind from err, or KindUnknown for foreign
// errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
