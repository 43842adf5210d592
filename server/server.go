// Package server exposes the credential-minting pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/c2fo/bucketcreds"
)

// callerKey is the gin context key the middleware stores the caller under.
const callerKey = "bucketcreds.caller"

// CredentialIssuer is the pipeline surface the server drives.
type CredentialIssuer interface {
	IssueCredentials(ctx context.Context, caller bucketcreds.Caller, level, bucket, prefix string) (*bucketcreds.TemporaryCredential, error)
}

// Server holds the route handlers. It is stateless; one instance serves any
// number of concurrent requests.
type Server struct {
	issuer CredentialIssuer
}

// New returns a Server driving the given issuer.
func New(issuer CredentialIssuer) *Server {
	return &Server{issuer: issuer}
}

// Register attaches the service routes to the router.
func (s *Server) Register(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"alive": true})
	})

	creds := r.Group("/credentials")
	creds.Use(CallerMiddleware())
	creds.GET("/s3/:level/:bucket/*prefix", s.handleS3Credentials)
}

// CallerMiddleware reads the caller identity injected by the fronting gateway:
// X-Client-Id carries the client identifier, X-Client-Scopes the
// space-separated scope set. Requests without an identity are rejected before
// the pipeline runs.
func CallerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetHeader("X-Client-Id")
		if clientID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "AuthenticationError",
				"message": "missing X-Client-Id header",
			})
			return
		}

		c.Set(callerKey, bucketcreds.Caller{
			ClientID: clientID,
			Scopes:   strings.Fields(c.GetHeader("X-Client-Scopes")),
		})
		c.Next()
	}
}

func (s *Server) handleS3Credentials(c *gin.Context) {
	caller := c.MustGet(callerKey).(bucketcreds.Caller)

	// the wildcard route param always carries the path separator it matched
	// on; strip exactly that one slash so a caller-supplied leading slash
	// still reaches the validator intact
	prefix := strings.TrimPrefix(c.Param("prefix"), "/")

	cred, err := s.issuer.IssueCredentials(
		c.Request.Context(),
		caller,
		c.Param("level"),
		c.Param("bucket"),
		prefix,
	)
	if err != nil {
		c.JSON(statusFor(err), gin.H{
			"code":    bucketcreds.ErrorKind(err),
			"message": err.Error(),
		})
		return
	}

	if c.Query("format") == FormatIAMRoleCompat {
		c.JSON(http.StatusOK, renderIAMRoleCompat(cred, time.Now()))
		return
	}
	c.JSON(http.StatusOK, renderNative(cred))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, bucketcreds.ErrInput):
		return http.StatusBadRequest
	case errors.Is(err, bucketcreds.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, bucketcreds.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
