package scopes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/bucketcreds"
)

type scopesTestSuite struct {
	suite.Suite
}

func (s *scopesTestSuite) TestForRequest() {
	readOnly := ForRequest(bucketcreds.AccessRequest{
		Level:  bucketcreds.LevelReadOnly,
		Bucket: "mybucket",
		Prefix: "team/",
	})
	s.Equal(
		"AnyOf(auth:storage:read-only:mybucket/team/, auth:storage:read-write:mybucket/team/)",
		readOnly.String(),
		"read-only is satisfied by either scope; bucket and prefix embedded verbatim",
	)

	readWrite := ForRequest(bucketcreds.AccessRequest{
		Level:  bucketcreds.LevelReadWrite,
		Bucket: "mybucket",
		Prefix: "team/",
	})
	s.Equal("auth:storage:read-write:mybucket/team/", readWrite.String(),
		"read-write requires exactly the read-write scope")

	noSlash := ForRequest(bucketcreds.AccessRequest{
		Level:  bucketcreds.LevelReadWrite,
		Bucket: "mybucket",
		Prefix: "team",
	})
	s.Equal("auth:storage:read-write:mybucket/team", noSlash.String(),
		"trailing-slash absence is preserved in the scope string")
}

type satisfactionTest struct {
	expression Expression
	held       []string
	satisfied  bool
	message    string
}

func (s *scopesTestSuite) TestSatisfaction() {
	required := Scope("auth:storage:read-write:mybucket/team/")

	tests := []satisfactionTest{
		{
			expression: required,
			held:       []string{"auth:storage:read-write:mybucket/team/"},
			satisfied:  true,
			message:    "exact match",
		},
		{
			expression: required,
			held:       []string{"auth:storage:read-write:mybucket/*"},
			satisfied:  true,
			message:    "final-star expansion",
		},
		{
			expression: required,
			held:       []string{"*"},
			satisfied:  true,
			message:    "bare star satisfies everything",
		},
		{
			expression: required,
			held:       []string{"auth:storage:read-only:mybucket/team/"},
			satisfied:  false,
			message:    "read-only does not satisfy read-write",
		},
		{
			expression: required,
			held:       []string{"auth:storage:read-write:mybucket/other/"},
			satisfied:  false,
			message:    "different prefix",
		},
		{
			expression: required,
			held:       nil,
			satisfied:  false,
			message:    "no scopes held",
		},
		{
			expression: required,
			held:       []string{"auth:storage:read-write:mybucket/team/extra"},
			satisfied:  false,
			message:    "a longer held scope without a star is not a match",
		},
		{
			expression: AnyOf{Scope("a"), Scope("b")},
			held:       []string{"b"},
			satisfied:  true,
			message:    "AnyOf needs one branch",
		},
		{
			expression: AnyOf{Scope("a"), Scope("b")},
			held:       []string{"c"},
			satisfied:  false,
			message:    "AnyOf with no branch held",
		},
		{
			expression: AllOf{Scope("a"), Scope("b")},
			held:       []string{"a", "b"},
			satisfied:  true,
			message:    "AllOf needs every branch",
		},
		{
			expression: AllOf{Scope("a"), Scope("b")},
			held:       []string{"a"},
			satisfied:  false,
			message:    "AllOf with a missing branch",
		},
	}

	for _, test := range tests {
		s.Equal(test.satisfied, test.expression.Satisfied(test.held), test.message)
	}
}

func (s *scopesTestSuite) TestAuthorizer() {
	req := bucketcreds.AccessRequest{
		Level:  bucketcreds.LevelReadOnly,
		Bucket: "mybucket",
		Prefix: "team/",
	}

	granted := bucketcreds.Caller{
		ClientID: "worker-1",
		Scopes:   []string{"auth:storage:read-write:mybucket/team/"},
	}
	s.NoError(Authorizer{}.Authorize(context.Background(), granted, req),
		"read-write scope satisfies a read-only request")

	denied := bucketcreds.Caller{
		ClientID: "worker-2",
		Scopes:   []string{"auth:storage:read-only:otherbucket/team/"},
	}
	err := Authorizer{}.Authorize(context.Background(), denied, req)
	s.ErrorIs(err, bucketcreds.ErrAuthorization)
	s.Contains(err.Error(), "worker-2")
	s.Contains(err.Error(), "auth:storage:read-only:mybucket/team/")
}

func TestScopes(t *testing.T) {
	suite.Run(t, new(scopesTestSuite))
}
