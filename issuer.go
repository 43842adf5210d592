package bucketcreds

import (
	"context"

	"github.com/c2fo/bucketcreds/policy"
)

// Issuer runs the credential-minting pipeline: input validation, scope-based
// authorization, least-privilege policy construction, and the exchange for a
// temporary credential. Issuer holds no mutable state; a single instance
// serves any number of concurrent requests.
type Issuer struct {
	authorizer Authorizer
	exchanger  Exchanger
}

// NewIssuer returns an Issuer wired to the given collaborators.
func NewIssuer(authorizer Authorizer, exchanger Exchanger) *Issuer {
	return &Issuer{authorizer: authorizer, exchanger: exchanger}
}

// IssueCredentials validates the raw request, authorizes the caller, and
// exchanges a freshly built policy for a temporary credential.
//
// Authorization happens exactly once, after validation and before any policy
// construction, so no policy is ever built for an unauthorized request.
// Errors from any stage are terminal: authorization denials propagate
// unmodified and exchange failures are not retried. There is no partial
// success and no fallback policy - the pipeline issues exactly the requested
// least-privilege credential or nothing.
func (i *Issuer) IssueCredentials(ctx context.Context, caller Caller, level, bucket, prefix string) (*TemporaryCredential, error) {
	req, err := ParseAccessRequest(level, bucket, prefix)
	if err != nil {
		return nil, err
	}

	if err := i.authorizer.Authorize(ctx, caller, req); err != nil {
		return nil, err
	}

	doc := policy.Build(req.Bucket, req.Prefix, req.Level.ReadOnly())

	return i.exchanger.Exchange(ctx, doc, caller.ClientID)
}
