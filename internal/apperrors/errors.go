package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind categorizes a failure in the analysis pipeline
type Kind string

const (
	KindMissingImage     Kind = "missing_image"
	KindInvalidImage     Kind = "invalid_image"
	KindModelUnavailable Kind = "model_unavailable"
	KindModelCall        Kind = "model_call"
	KindJSONNotFound     Kind = "json_not_found"
	KindJSONDecode       Kind = "json_decode"
	KindSchemaViolation  Kind = "schema_violation"
)

// Error is a structured pipeline error
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so sentinel comparisons work with errors.Is
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Sentinels for errors.Is comparisons.
var (
	ErrMissingImage     = &Error{Kind: KindMissingImage}
	ErrInvalidImage     = &Error{Kind: KindInvalidImage}
	ErrModelUnavailable = &Error{Kind: KindModelUnavailable}
	ErrJSONNotFound     = &Error{Kind: KindJSONNotFound}
	ErrJSONDecode       = &Error{Kind: KindJSONDecode}
	ErrSchemaViolation  = &Error{Kind: KindSchemaViolation}
)

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsParseFailure reports whether err came from reconciling the model reply
func IsParseFailure(err error) bool {
	switch KindOf(err) {
	case KindJSONNotFound, KindJSONDecode, KindSchemaViolation:
		return true
	}
	return false
}

// StatusCode maps an error to the HTTP status the analyze endpoint answers with.
// Only a missing image is the caller's fault; everything else is a 500.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if KindOf(err) == KindMissingImage {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
