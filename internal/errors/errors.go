// Package errors defines the domain error values returned by the simulated
// backend. Expected failures are surfaced to callers as values carrying a
// stable code and a user-facing message, never as panics.
package errors

import "errors"

// DomainError is a business-rule or simulated-infrastructure failure.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NetworkFailure builds the uniformly injected transient failure with the
// operation-specific message shown to the user.
func NetworkFailure(message string) *DomainError {
	return &DomainError{
		Code:    CodeNetworkFailure,
		Message: message,
	}
}

const CodeNetworkFailure = "NETWORK_FAILURE"

// IsNetworkFailure reports whether err is the injected transient failure,
// as opposed to a business rejection.
func IsNetworkFailure(err error) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == CodeNetworkFailure
	}
	return false
}

// AsDomain unwraps err into a DomainError if it is one.
func AsDomain(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
