package lookup

import (
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies a lookup failure.
type Kind int

const (
	// Validation is a missing or malformed parameter. No upstream call was
	// made.
	Validation Kind = iota
	// NotFound means an upstream answered but had no usable record.
	NotFound
	// UpstreamFailure covers transport, decoding and any other unexpected
	// failure.
	UpstreamFailure
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case UpstreamFailure:
		return "upstream_failure"
	}
	return "unknown"
}

// StatusCode maps the kind to the HTTP status returned to callers.
func (k Kind) StatusCode() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

const (
	msgModeMissing       = "Mode not specified! Use 'game' or 'user'"
	msgPlaceIDMissing    = "Place ID not specified!"
	msgUserIDMissing     = "User ID not specified!"
	msgModeInvalid       = "Invalid mode. Use 'game' or 'user'."
	msgSizeInvalid       = "Invalid size. Use a positive integer."
	msgCircularInvalid   = "Invalid isCircular. Use 'true' or 'false'."
	msgGameResponseType  = "Invalid response type. Only 'json' is supported for games."
	msgUserResponseType  = "Invalid response type for user"
	msgGameNotFound      = "Game details not found"
	msgThumbnailNotFound = "Thumbnail data not found"
	msgUserNotFound      = "User info not found"
	msgUpstreamFailure   = "Failed to fetch from Roblox"
	msgBadRequest        = "Invalid request"
)

// Error is a classified lookup failure. Err is set for upstream failures and
// surfaces as the details field of the error body.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(msg string) *Error {
	return &Error{Kind: Validation, Message: msg}
}

func notFoundError(msg string) *Error {
	return &Error{Kind: NotFound, Message: msg}
}

func upstreamError(err error) *Error {
	return &Error{Kind: UpstreamFailure, Message: msgUpstreamFailure, Err: err}
}

// asError classifies any error. Unclassified errors are upstream failures.
func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return upstreamError(err)
}
