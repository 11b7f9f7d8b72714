package fetch

import (
	"errors"
	"fmt"
)

// Kind identifies why a fetch failed.
type Kind int

const (
	// KindTransport means the request never completed: DNS, refused
	// connection, CORS rejection in the browser, cancelled context.
	KindTransport Kind = iota + 1
	// KindResponse means the endpoint answered with a non-2xx status.
	KindResponse
	// KindDecode means a 2xx body did not carry a usable count.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindResponse:
		return "response"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned by FetchRemoteCount for every failure.
type Error struct {
	// Op is the operation that failed (e.g., "fetch.FetchRemoteCount").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// URL is the endpoint that was requested.
	URL string
	// Status is the HTTP status code for KindResponse, zero otherwise.
	Status int
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindResponse:
		return fmt.Sprintf("%s [%s] %s: HTTP status %d", e.Op, e.Kind, e.URL, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s [%s] %s: %v", e.Op, e.Kind, e.URL, e.Err)
	default:
		return fmt.Sprintf("%s [%s] %s", e.Op, e.Kind, e.URL)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a fetch error of kind KindTransport.
func IsTransport(err error) bool {
	return kindOf(err) == KindTransport
}

// IsResponse reports whether err is a fetch error of kind KindResponse.
func IsResponse(err error) bool {
	return kindOf(err) == KindResponse
}

// IsDecode reports whether err is a fetch error of kind KindDecode.
func IsDecode(err error) bool {
	return kindOf(err) == KindDecode
}

func kindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}
