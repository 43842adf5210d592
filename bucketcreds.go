package bucketcreds

import (
	"context"
	"time"

	"github.com/c2fo/bucketcreds/policy"
)

// Level is the caller-chosen access tier. It determines both the scopes the
// caller must hold and the S3 actions the minted credential is granted.
type Level string

const (
	// LevelReadOnly grants GetObject only.
	LevelReadOnly Level = "read-only"

	// LevelReadWrite grants GetObject, PutObject, and DeleteObject.
	LevelReadWrite Level = "read-write"
)

// ReadOnly reports whether the level is the read-only tier.
func (l Level) ReadOnly() bool {
	return l == LevelReadOnly
}

// CredentialTTL is the fixed validity of every minted credential. It is not
// configurable per request.
const CredentialTTL = 3600 * time.Second

// AccessRequest is a validated request for scoped credentials. Construct one
// with ParseAccessRequest; the zero value is not meaningful.
type AccessRequest struct {
	Level  Level
	Bucket string
	Prefix string
}

// Caller identifies the client asking for credentials along with the scopes it
// holds. ClientID doubles as the federation-token name label so the issued
// credential is attributable to the caller in provider audit logs.
type Caller struct {
	ClientID string
	Scopes   []string
}

// TemporaryCredential is the time-boxed access/secret/session token triple
// returned by the exchange service. It is never stored server-side.
type TemporaryCredential struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
}

// Authorizer decides whether a caller's held scopes satisfy the required scope
// expression for an access request. Implementations must return an error that
// matches ErrAuthorization on denial.
type Authorizer interface {
	Authorize(ctx context.Context, caller Caller, req AccessRequest) error
}

// Exchanger trades an access policy for a temporary credential valid for
// CredentialTTL. name is a caller-identifying label passed through to the
// provider. Implementations must return an error that matches ErrUpstream on
// failure and must not retry.
type Exchanger interface {
	Exchange(ctx context.Context, doc *policy.Policy, name string) (*TemporaryCredential, error)
}
