package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"

	"wkp/internal/core/apiclient/rawdatafetcher"
)

var ErrNoTitles = errors.New("no titles to query")

// Kind is the stage at which a lookup failed.
type Kind int

const (
	KindTitle Kind = iota // body could not be decoded into pages
	KindConnect
	KindRedirect
	KindRequest
	KindResponse
)

func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindConnect:
		return "connection"
	case KindRedirect:
		return "redirect"
	case KindResponse:
		return "response"
	default:
		return "request"
	}
}

type WikiError struct {
	Kind   Kind
	Titles []string
	Err    error
}

func (e *WikiError) Error() string {
	return fmt.Sprintf("one of the %ss didn't yield a proper response\nprovided titles: %q\nerror: %v",
		e.Kind, e.Titles, e.Err)
}

func (e *WikiError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx answer from the API host.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return "unexpected status: " + e.Status
}

// classifyTransport maps an error from the HTTP round trip to a Kind.
func classifyTransport(err error) Kind {
	if errors.Is(err, rawdatafetcher.ErrTooManyRedirects) {
		return KindRedirect
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindRequest
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindRequest
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindConnect
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return KindConnect
	}
	return KindRequest
}
