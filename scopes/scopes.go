// Package scopes derives the required scope expression for an access request
// and evaluates whether a caller's held scope set satisfies it.
//
// A scope is an opaque string capability token. A held scope satisfies a
// required scope when the two are equal, or when the held scope ends in "*"
// and everything before the star is a prefix of the required scope.
package scopes

import (
	"context"
	"strings"

	"github.com/c2fo/bucketcreds"
)

// Expression is a boolean expression over scope strings.
type Expression interface {
	// Satisfied reports whether the held scope set satisfies the expression.
	Satisfied(held []string) bool

	// String renders the expression for denial messages.
	String() string
}

// Scope is a single required scope string.
type Scope string

// Satisfied reports whether any held scope satisfies this scope.
func (s Scope) Satisfied(held []string) bool {
	for _, h := range held {
		if satisfies(h, string(s)) {
			return true
		}
	}
	return false
}

// String returns the scope string.
func (s Scope) String() string { return string(s) }

// AnyOf is satisfied when at least one sub-expression is satisfied.
type AnyOf []Expression

// Satisfied reports whether any sub-expression is satisfied.
func (e AnyOf) Satisfied(held []string) bool {
	for _, sub := range e {
		if sub.Satisfied(held) {
			return true
		}
	}
	return false
}

// String renders the expression as AnyOf(a, b, ...).
func (e AnyOf) String() string { return render("AnyOf", e) }

// AllOf is satisfied only when every sub-expression is satisfied.
type AllOf []Expression

// Satisfied reports whether every sub-expression is satisfied.
func (e AllOf) Satisfied(held []string) bool {
	for _, sub := range e {
		if !sub.Satisfied(held) {
			return false
		}
	}
	return true
}

// String renders the expression as AllOf(a, b, ...).
func (e AllOf) String() string { return render("AllOf", e) }

func render(name string, subs []Expression) string {
	parts := make([]string, len(subs))
	for i, sub := range subs {
		parts[i] = sub.String()
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}

func satisfies(held, required string) bool {
	if held == required {
		return true
	}
	if strings.HasSuffix(held, "*") {
		return strings.HasPrefix(required, strings.TrimSuffix(held, "*"))
	}
	return false
}

// ForRequest returns the required scope expression for a validated access
// request. The bucket and prefix are embedded verbatim, including any trailing
// slash. Read-only access is satisfied by either the read-only or the
// read-write scope; read-write access requires exactly the read-write scope.
func ForRequest(req bucketcreds.AccessRequest) Expression {
	readWrite := Scope("auth:storage:read-write:" + req.Bucket + "/" + req.Prefix)
	if req.Level.ReadOnly() {
		readOnly := Scope("auth:storage:read-only:" + req.Bucket + "/" + req.Prefix)
		return AnyOf{readOnly, readWrite}
	}
	return readWrite
}

// Authorizer is the default bucketcreds.Authorizer, backed by the caller's
// held scope set. It is stateless; the zero value is ready to use.
type Authorizer struct{}

// Authorize evaluates the required scope expression for the request against
// the caller's scopes.
func (Authorizer) Authorize(_ context.Context, caller bucketcreds.Caller, req bucketcreds.AccessRequest) error {
	required := ForRequest(req)
	if !required.Satisfied(caller.Scopes) {
		return bucketcreds.NewAuthorizationError("client %q does not satisfy required scopes %s", caller.ClientID, required)
	}
	return nil
}
