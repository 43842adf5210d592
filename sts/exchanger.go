// Package sts exchanges access policies for temporary credentials using AWS
// STS federation tokens.
package sts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssts "github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"

	"github.com/c2fo/bucketcreds"
	"github.com/c2fo/bucketcreds/policy"
)

// Client defines the single STS operation the exchanger uses, allowing the
// AWS client to be swapped for a mock in tests.
type Client interface {
	GetFederationToken(ctx context.Context, params *awssts.GetFederationTokenInput, optFns ...func(*awssts.Options)) (*awssts.GetFederationTokenOutput, error)
}

// Exchanger implements bucketcreds.Exchanger on top of STS GetFederationToken.
// Every minted credential carries the fixed bucketcreds.CredentialTTL
// validity. The exchanger performs no retries of its own: retry policy, if
// any, belongs to the configured sdk retryer.
type Exchanger struct {
	client  Client
	options Options
}

// NewExchanger returns an Exchanger with default options.
func NewExchanger() *Exchanger {
	return &Exchanger{}
}

// WithOptions sets client options and returns the exchanger (chainable)
func (e *Exchanger) WithOptions(opts Options) *Exchanger {
	e.options = opts
	// client is reset so that a new one is created from the new options when
	// Client() is next called
	e.client = nil
	return e
}

// WithClient passes in an sts client and returns the exchanger (chainable)
func (e *Exchanger) WithClient(client Client) *Exchanger {
	e.client = client
	return e
}

// Client returns the underlying sts client, creating it lazily if necessary.
func (e *Exchanger) Client(ctx context.Context) (Client, error) {
	if e.client == nil {
		var err error
		e.client, err = getClient(ctx, e.options)
		if err != nil {
			return nil, err
		}
	}
	return e.client, nil
}

// Exchange submits the policy document plus the fixed duration and the
// caller-identifying name to STS and returns the resulting temporary
// credential. The surrounding request's context is propagated so an abandoned
// request cancels the in-flight call. Failures are surfaced as
// bucketcreds.ErrUpstream and never retried here.
func (e *Exchanger) Exchange(ctx context.Context, doc *policy.Policy, name string) (*bucketcreds.TemporaryCredential, error) {
	client, err := e.Client(ctx)
	if err != nil {
		return nil, bucketcreds.WrapUpstreamError(err)
	}

	policyJSON, err := doc.JSON()
	if err != nil {
		return nil, bucketcreds.WrapUpstreamError(err)
	}

	out, err := client.GetFederationToken(ctx, &awssts.GetFederationTokenInput{
		Name:            aws.String(name),
		Policy:          aws.String(policyJSON),
		DurationSeconds: aws.Int32(int32(bucketcreds.CredentialTTL / time.Second)),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, bucketcreds.WrapUpstreamError(fmt.Errorf("sts %s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage()))
		}
		return nil, bucketcreds.WrapUpstreamError(err)
	}

	creds := out.Credentials
	if creds == nil {
		return nil, bucketcreds.WrapUpstreamError(errors.New("sts returned no credentials"))
	}

	return &bucketcreds.TemporaryCredential{
		AccessKeyID:     aws.ToString(creds.AccessKeyId),
		SecretAccessKey: aws.ToString(creds.SecretAccessKey),
		SessionToken:    aws.ToString(creds.SessionToken),
		Expiration:      aws.ToTime(creds.Expiration),
	}, nil
}
