package entities

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrCredentialsMissing    = errors.New("provider credentials missing")
	ErrTokenExchangeFailed   = errors.New("access token exchange failed")
	ErrProviderRequestFailed = errors.New("provider request failed")
)

// ProviderError describes a failed upstream call. Kind is one of
// ErrTokenExchangeFailed or ErrProviderRequestFailed; Body holds the
// provider's error payload when it answered at all.
type ProviderError struct {
	Kind       error
	Provider   PaymentProvider
	StatusCode int
	Body       []byte
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %s: status %d: %s", e.Provider, e.Kind, e.StatusCode, string(e.Body))
	default:
		return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	}
}

func (e *ProviderError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// Details is what callers see under "details": the provider's JSON body
// verbatim, its raw text, or the transport error message.
func (e *ProviderError) Details() any {
	if len(e.Body) > 0 {
		if json.Valid(e.Body) {
			return json.RawMessage(e.Body)
		}
		return string(e.Body)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return nil
}

func NewProviderHTTPError(kind error, provider PaymentProvider, status int, body []byte) *ProviderError {
	return &ProviderError{Kind: kind, Provider: provider, StatusCode: status, Body: body}
}

func NewProviderTransportError(kind error, provider PaymentProvider, err error) *ProviderError {
	return &ProviderError{Kind: kind, Provider: provider, Err: err}
}
