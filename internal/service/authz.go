package service

import "velodesk/internal/models"

// Decision is the outcome of an authorization check, evaluated at the start
// of every operation instead of inside middleware.
type Decision int

const (
	Allowed Decision = iota
	Unauthenticated
	Forbidden
)

// Authorize checks the caller against the allowed roles. With no roles
// listed, any authenticated caller passes.
func Authorize(c Caller, roles ...models.Role) Decision {
	if c.ID == "" {
		return Unauthenticated
	}
	if len(roles) == 0 {
		return Allowed
	}
	for _, r := range roles {
		if c.Role == r {
			return Allowed
		}
	}
	return Forbidden
}

// Err maps a decision onto the service error taxonomy; Allowed maps to nil.
func (d Decision) Err() error {
	switch d {
	case Unauthenticated:
		return ErrUnauthenticated
	case Forbidden:
		return ErrForbidden
	default:
		return nil
	}
}
