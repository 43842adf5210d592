package server

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/bucketcreds"
)

type responseTestSuite struct {
	suite.Suite

	cred *bucketcreds.TemporaryCredential
	now  time.Time
}

func (r *responseTestSuite) SetupTest() {
	r.cred = &bucketcreds.TemporaryCredential{
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		SessionToken:    "token",
		Expiration:      time.Date(2026, 8, 23, 13, 0, 0, 0, time.UTC),
	}
	r.now = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
}

func (r *responseTestSuite) keysOf(v any) map[string]any {
	raw, err := json.Marshal(v)
	r.Require().NoError(err)
	var decoded map[string]any
	r.Require().NoError(json.Unmarshal(raw, &decoded))
	return decoded
}

func (r *responseTestSuite) TestNative() {
	body := r.keysOf(renderNative(r.cred))

	r.Len(body, 2)
	r.Contains(body, "credentials")
	r.Contains(body, "expires")
	r.NotContains(body, "Code")
	r.NotContains(body, "Type")

	creds, ok := body["credentials"].(map[string]any)
	r.Require().True(ok)
	r.Equal("AKIDEXAMPLE", creds["accessKeyId"])
	r.Equal("secret", creds["secretAccessKey"])
	r.Equal("token", creds["sessionToken"])
	r.Equal("2026-08-23T13:00:00Z", body["expires"])
}

func (r *responseTestSuite) TestIAMRoleCompat() {
	body := r.keysOf(renderIAMRoleCompat(r.cred, r.now))

	// the field set and casing exist solely for compatibility with tools that
	// read the provider's instance-metadata credential shape
	r.Len(body, 7)
	for _, key := range []string{"Code", "Type", "LastUpdated", "AccessKeyId", "SecretAccessKey", "Token", "Expiration"} {
		r.Contains(body, key)
	}
	r.NotContains(body, "credentials")
	r.NotContains(body, "expires")

	r.Equal("Success", body["Code"])
	r.Equal("AWS-HMAC", body["Type"])
	r.Equal("2026-08-23T12:00:00Z", body["LastUpdated"])
	r.Equal("AKIDEXAMPLE", body["AccessKeyId"])
	r.Equal("secret", body["SecretAccessKey"])
	r.Equal("token", body["Token"])
	r.Equal("2026-08-23T13:00:00Z", body["Expiration"])
}

func TestResponse(t *testing.T) {
	suite.Run(t, new(responseTestSuite))
}
