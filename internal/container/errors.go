package container

import (
	"errors"
	"fmt"
	"strings"

	"github.com/giantswarm/wirecheck/internal/dependency"
)

var (
	// ErrNotRegistered is returned when no registration satisfies a type.
	ErrNotRegistered = errors.New("service not registered")

	// ErrCircularResolution is returned when resolving a service needs the
	// service itself. Startup validation reports the same condition before
	// anything is resolved.
	ErrCircularResolution = errors.New("circular dependency during resolution")
)

// DuplicateRegistrationError is returned when a service type is registered
// twice.
type DuplicateRegistrationError struct {
	ServiceType dependency.TypeID
}

// Error implements the error interface.
func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("service %s already registered", e.ServiceType)
}

// ResolutionError describes a failure to build a service, with the chain of
// services that was being resolved.
type ResolutionError struct {
	ServiceType dependency.TypeID
	Chain       []dependency.TypeID
	Err         error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("resolve %s: %v", e.ServiceType, e.Err)
	if len(e.Chain) > 1 {
		names := make([]string, len(e.Chain))
		for i, id := range e.Chain {
			names[i] = id.String()
		}
		msg += " (chain: " + strings.Join(names, " -> ") + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ResolutionError) Unwrap() error {
	return e.Err
}
