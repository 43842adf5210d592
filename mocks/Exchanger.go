package mocks

import (
	"context"

	"github.com/c2fo/bucketcreds"
	"github.com/c2fo/bucketcreds/policy"
)

// Exchanger is a mock implementation of the bucketcreds.Exchanger interface.
type Exchanger struct {
	SideEffect error
	Credential *bucketcreds.TemporaryCredential
	IsCalled   bool
	Policy     *policy.Policy
	Name       string
}

// Exchange mocks the credential exchange, recording the submitted policy and name
func (m *Exchanger) Exchange(_ context.Context, doc *policy.Policy, name string) (*bucketcreds.TemporaryCredential, error) {
	m.IsCalled = true
	m.Policy = doc
	m.Name = name
	if m.SideEffect != nil {
		return nil, m.SideEffect
	}
	return m.Credential, nil
}
