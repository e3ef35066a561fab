package auth

import (
	"context"
	"errors"
)

// Role is the caller's role as supplied by the access gate.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

var ErrInvalidRole = errors.New("invalid role")

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// Principal identifies the caller of an operation. It is resolved at the
// transport boundary and passed explicitly into every service call; the
// services never read caller identity from ambient state.
type Principal struct {
	UserID int64
	Name   string
	Email  string
	Role   Role
}

// IsAdmin reports whether the principal carries the administrative role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

type ctxKey struct{}

// WithPrincipal returns a context carrying the caller's principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext extracts the caller's principal set by the identity middleware.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)

	return p, ok
}
