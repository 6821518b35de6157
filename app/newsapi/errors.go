package newsapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoContent is returned when the article has no content to summarize.
var ErrNoContent = errors.New("article has no content to summarize")

// ErrInvalidArgument is returned when a call is rejected before sending a request.
var ErrInvalidArgument = errors.New("invalid argument")

// Operation names, they are used in user-facing messages.
const (
	OpListArticles = "fetch articles"
	OpGetArticle   = "fetch article"
	OpGetSummary   = "fetch summary"
	OpTriggerFetch = "trigger fetch"
)

// RequestFailedError is returned when the server responded with a non-2xx
// status, or when the request could not be completed at all.
// In the latter case Status is zero and Err holds the cause.
type RequestFailedError struct {
	Op     string
	Status int
	Err    error
}

// Error implements error.
func (e *RequestFailedError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: bad status code: %d", e.Op, e.Status)
}

// Unwrap returns the underlying cause.
func (e *RequestFailedError) Unwrap() error { return e.Err }

// Failure is a kind of failure of a remote call.
type Failure int

const (
	// FailureNone means that there were no error.
	FailureNone Failure = iota
	// FailureNoContent means that the article has nothing to summarize.
	FailureNoContent
	// FailureRequest is any other failure of the request.
	FailureRequest
)

// String implements fmt.Stringer.
func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureNoContent:
		return "no content"
	default:
		return "request failed"
	}
}

// Classify returns the kind of the failure.
func Classify(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrNoContent):
		return FailureNoContent
	default:
		return FailureRequest
	}
}

// Message returns text to show to the user for the given error.
func Message(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, ErrNoContent) {
		return "Article has no content to summarize"
	}

	var rfErr *RequestFailedError
	if errors.As(err, &rfErr) {
		if rfErr.Status == 0 {
			return fmt.Sprintf("Failed to %s: %v", rfErr.Op, rfErr.Err)
		}
		return fmt.Sprintf("Failed to %s: %d", rfErr.Op, rfErr.Status)
	}

	return err.Error()
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
