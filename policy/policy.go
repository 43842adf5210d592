// Package policy builds least-privilege S3 access policy documents scoped to a
// single bucket and key-prefix. Statements and resource names are constructed
// through typed builders rather than string templates so bucket and prefix
// interpolation cannot be broken by special characters.
package policy

import "encoding/json"

// Version is the policy language version understood by the provider.
const Version = "2012-10-17"

// S3 actions granted by the builder. Object-ACL-mutating actions (PutObjectAcl
// and friends) are never included; a write that passes a non-default ACL is
// treated by the provider as an ACL mutation and denied there.
const (
	ActionGetObject         = "s3:GetObject"
	ActionPutObject         = "s3:PutObject"
	ActionDeleteObject      = "s3:DeleteObject"
	ActionListBucket        = "s3:ListBucket"
	ActionGetBucketLocation = "s3:GetBucketLocation"
)

// ARN is a typed S3 resource name.
type ARN string

// String returns the ARN as a plain string.
func (a ARN) String() string { return string(a) }

// BucketARN returns the resource name for a bucket root.
func BucketARN(bucket string) ARN {
	return ARN("arn:aws:s3:::" + bucket)
}

// ObjectPrefixARN returns the wildcard resource name matching every key that
// starts with prefix. The wildcard is concatenated with no separator inserted:
// callers who want prefix-as-directory semantics must include the trailing
// slash themselves. A prefix that does not end in "/" also matches sibling
// keys that merely share the string prefix (prefix "my-folder" matches
// "my-folder.txt"); that is documented caller responsibility, preserved here.
func ObjectPrefixARN(bucket, prefix string) ARN {
	return ARN("arn:aws:s3:::" + bucket + "/" + prefix + "*")
}

// Statement is a single named policy statement.
type Statement struct {
	Sid       string                       `json:"Sid"`
	Effect    string                       `json:"Effect"`
	Action    []string                     `json:"Action"`
	Resource  []string                     `json:"Resource"`
	Condition map[string]map[string]string `json:"Condition,omitempty"`
}

// Policy is a provider-native policy document: an ordered set of named
// statements. Built fresh per request; never reused or cached.
type Policy struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

// Allow starts an allow statement with the given Sid and actions (chainable).
func Allow(sid string, actions ...string) *Statement {
	return &Statement{Sid: sid, Effect: "Allow", Action: actions}
}

// On sets the statement's resources (chainable).
func (s *Statement) On(resources ...ARN) *Statement {
	for _, r := range resources {
		s.Resource = append(s.Resource, r.String())
	}
	return s
}

// WhenKeyPrefix restricts the statement to keys matching the given pattern via
// a StringLike condition on s3:prefix (chainable).
func (s *Statement) WhenKeyPrefix(pattern string) *Statement {
	s.Condition = map[string]map[string]string{
		"StringLike": {"s3:prefix": pattern},
	}
	return s
}

// Build constructs the least-privilege policy for the requested bucket, prefix,
// and access level:
//
//   - ObjectAccess: GetObject (plus PutObject and DeleteObject for read-write)
//     on <bucket>/<prefix>*
//   - ListAccess: ListBucket on the bucket root, restricted to keys starting
//     with <prefix>* so list access is not implicitly granted bucket-wide
//   - LocationAccess: GetBucketLocation on the bucket, needed by storage
//     clients that discover the regional endpoint before issuing requests
//
// Build is pure data transformation; it cannot fail on a validated request.
func Build(bucket, prefix string, readOnly bool) *Policy {
	actions := []string{ActionGetObject}
	if !readOnly {
		actions = append(actions, ActionPutObject, ActionDeleteObject)
	}

	return &Policy{
		Version: Version,
		Statement: []Statement{
			*Allow("ObjectAccess", actions...).On(ObjectPrefixARN(bucket, prefix)),
			*Allow("ListAccess", ActionListBucket).On(BucketARN(bucket)).WhenKeyPrefix(prefix + "*"),
			*Allow("LocationAccess", ActionGetBucketLocation).On(BucketARN(bucket)),
		},
	}
}

// JSON renders the policy document for the exchange call.
func (p *Policy) JSON() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
