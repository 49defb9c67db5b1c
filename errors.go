package apidoc

import (
	"errors"
	"fmt"
)

// Sentinel errors for document assembly.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrEmptyPath        = errors.New("route normalized to an empty path")
	ErrEmptyMethod      = errors.New("endpoint has no method")
)

// ContractError reports an endpoint description that violates the
// discovery contract. Assembly stops at the first one and returns no
// document.
type ContractError struct {
	Method string
	Route  string
	Err    error
}

// Error returns the message including the offending endpoint.
func (e *ContractError) Error() string {
	return fmt.Sprintf("apidoc: endpoint %s %q: %v", e.Method, e.Route, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ContractError) Unwrap() error { return e.Err }

// IsContractError reports whether err is or wraps a *ContractError.
func IsContractError(err error) bool {
	var ce *ContractError
	return errors.As(err, &ce)
}
