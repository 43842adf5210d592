package mocks

import (
	"context"

	awssts "github.com/aws/aws-sdk-go-v2/service/sts"
)

// FederationClient is a mock implementation of the sts.Client interface.
type FederationClient struct {
	SideEffect error
	Output     *awssts.GetFederationTokenOutput
	IsCalled   bool
	Input      *awssts.GetFederationTokenInput
}

// GetFederationToken mocks the STS GetFederationToken call, recording its input
func (m *FederationClient) GetFederationToken(_ context.Context, params *awssts.GetFederationTokenInput, _ ...func(*awssts.Options)) (*awssts.GetFederationTokenOutput, error) {
	m.IsCalled = true
	m.Input = params
	if m.SideEffect != nil {
		return nil, m.SideEffect
	}
	return m.Output, nil
}
