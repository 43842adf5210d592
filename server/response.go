package server

import (
	"time"

	"github.com/c2fo/bucketcreds"
)

// FormatIAMRoleCompat is the format query value selecting the
// instance-metadata-compatible response shape. Any other value is ignored and
// the native shape is used - the selector is matched, not validated.
const FormatIAMRoleCompat = "iam-role-compat"

// NativeCredentials is the credential triple inside the native response.
type NativeCredentials struct {
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	SessionToken    string `json:"sessionToken"`
}

// NativeResponse is the default response shape.
type NativeResponse struct {
	Credentials NativeCredentials `json:"credentials"`
	Expires     string            `json:"expires"`
}

// IAMRoleCompatResponse mirrors the cloud provider's instance-metadata
// credential document. Field names and casing must match exactly; the shape
// exists solely for tools that expect the metadata endpoint's own format.
type IAMRoleCompatResponse struct {
	Code            string `json:"Code"`
	Type            string `json:"Type"`
	LastUpdated     string `json:"LastUpdated"`
	AccessKeyID     string `json:"AccessKeyId"`
	SecretAccessKey string `json:"SecretAccessKey"`
	Token           string `json:"Token"`
	Expiration      string `json:"Expiration"`
}

func renderNative(cred *bucketcreds.TemporaryCredential) NativeResponse {
	return NativeResponse{
		Credentials: NativeCredentials{
			AccessKeyID:     cred.AccessKeyID,
			SecretAccessKey: cred.SecretAccessKey,
			SessionToken:    cred.SessionToken,
		},
		Expires: cred.Expiration.UTC().Format(time.RFC3339),
	}
}

func renderIAMRoleCompat(cred *bucketcreds.TemporaryCredential, now time.Time) IAMRoleCompatResponse {
	return IAMRoleCompatResponse{
		Code:            "Success",
		Type:            "AWS-HMAC",
		LastUpdated:     now.UTC().Format(time.RFC3339),
		AccessKeyID:     cred.AccessKeyID,
		SecretAccessKey: cred.SecretAccessKey,
		Token:           cred.SessionToken,
		Expiration:      cred.Expiration.UTC().Format(time.RFC3339),
	}
}
