package mocks

import (
	"context"

	"github.com/c2fo/bucketcreds"
)

// Authorizer is a mock implementation of the bucketcreds.Authorizer interface
// returning a fixed decision.
type Authorizer struct {
	SideEffect error
	IsCalled   bool
	Caller     bucketcreds.Caller
	Request    bucketcreds.AccessRequest
}

// Authorize mocks the authorization decision, recording the call
func (m *Authorizer) Authorize(_ context.Context, caller bucketcreds.Caller, req bucketcreds.AccessRequest) error {
	m.IsCalled = true
	m.Caller = caller
	m.Request = req
	return m.SideEffect
}
