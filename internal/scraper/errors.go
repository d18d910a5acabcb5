package scraper

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorKind labels the cause of a FetchError.
type ErrorKind string

const (
	KindRequest    ErrorKind = "request"
	KindTimeout    ErrorKind = "timeout"
	KindConnection ErrorKind = "connection"
	KindStatus     ErrorKind = "status"
	KindParse      ErrorKind = "parse"
)

// FetchError reports a failed fetch of a schedule page.
type FetchError struct {
	Kind       ErrorKind
	URL        string
	StatusCode int // set for KindStatus
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("fetch failed: unexpected status code %d for url %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("fetch failed: %s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// classifyError wraps a transport error into a FetchError.
func classifyError(url string, err error) *FetchError {
	if isTimeout(err) {
		return &FetchError{Kind: KindTimeout, URL: url, Err: err}
	}
	return &FetchError{Kind: KindConnection, URL: url, Err: err}
}

// classifyParseError wraps a body read or parse error into a FetchError.
// A deadline hit while reading the body is a timeout.
func classifyParseError(url string, err error) *FetchError {
	if isTimeout(err) {
		return &FetchError{Kind: KindTimeout, URL: url, Err: err}
	}
	return &FetchError{Kind: KindParse, URL: url, Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// ErrorLabel returns the kind label of err, for metrics.
func ErrorLabel(err error) string {
	if err == nil {
		return "none"
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return string(fe.Kind)
	}
	return "other"
}
