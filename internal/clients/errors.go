package clients

import (
	"errors"
	"fmt"
)

// Kind classifies why a lookup failed.
type Kind string

const (
	KindInvalidInput      Kind = "invalid_input"
	KindConnection        Kind = "connection_error"
	KindTimeout           Kind = "timeout"
	KindServer            Kind = "server_error"
	KindMalformedResponse Kind = "malformed_response"
	KindNotFound          Kind = "not_found"
)

// LookupError is returned by LookupClient.Lookup for every failure. Which
// fields are set depends on Kind: Status and Body only for KindServer,
// Err for transport and decode failures.
type LookupError struct {
	Kind    Kind
	Word    string
	BaseURL string
	Status  int
	Body    string
	Err     error
}

func (e *LookupError) Error() string {
	switch e.Kind {
	case KindInvalidInput:
		return "no word provided for lookup"
	case KindConnection:
		return fmt.Sprintf("could not connect to dictionary proxy at %s: %v", e.BaseURL, e.Err)
	case KindTimeout:
		return fmt.Sprintf("dictionary proxy at %s timed out: %v", e.BaseURL, e.Err)
	case KindServer:
		return fmt.Sprintf("dictionary proxy responded with status %d: %s", e.Status, e.Body)
	case KindMalformedResponse:
		return fmt.Sprintf("dictionary proxy returned malformed response: %v", e.Err)
	case KindNotFound:
		return fmt.Sprintf("no definition found for %q", e.Word)
	default:
		return fmt.Sprintf("dictionary lookup failed: %v", e.Err)
	}
}

func (e *LookupError) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first LookupError in err's chain, or ""
// when there is none.
func KindOf(err error) Kind {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}
