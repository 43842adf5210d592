/*
Package bucketcreds mints short-lived, narrowly-scoped S3 credentials.

A caller that already holds a set of permission scopes asks for credentials
limited to a single bucket and key-prefix at a chosen access level (read-only or
read-write).  The package runs a fixed pipeline for every request:

	validate input -> authorize caller scopes -> build least-privilege policy ->
	exchange policy for a federation token -> render the response

Each stage is a pure function or a single external call.  There is no branching
back and no retry loop; a failure at any stage terminates the request with one
of three error kinds (ErrInput, ErrAuthorization, ErrUpstream).

The service never produces a credential broader than requested.  The access
level maps onto an exact S3 action set ({GetObject} for read-only,
{GetObject, PutObject, DeleteObject} for read-write) and the policy is scoped
to exactly the requested bucket and prefix.  Object-ACL-mutating actions are
never granted.

Every invocation is stateless and independently authorized.  Nothing is cached
or persisted; the temporary credential is owned solely by the response.

Collaborators are consumed as injected interfaces so the pipeline is testable
with fakes:

  - Authorizer decides whether the caller's scope set satisfies the
    level-dependent required scope expression (default implementation in the
    scopes package).
  - Exchanger trades an access policy for a temporary credential with a fixed
    one-hour validity (AWS STS implementation in the sts package).

The server package exposes the pipeline over HTTP:

	GET /credentials/s3/{level}/{bucket}/{prefix}?format=iam-role-compat

See the policy package for the exact statements emitted and the documented
prefix-wildcard matching behavior.
*/
package bucketcreds
