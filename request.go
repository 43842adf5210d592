package bucketcreds

import "strings"

// ParseAccessRequest normalizes and rejects malformed input, returning a
// validated AccessRequest. Beyond the rules below the bucket and prefix are
// passed through unmodified, including trailing-slash presence or absence.
//
// Rules:
//   - level must be exactly "read-only" or "read-write"
//   - bucket may not contain "." (provider naming convention; dotted buckets
//     break virtual-hosted-style addressing)
//   - prefix may not start with "/". Slash-prefixed keys are legal on the
//     provider but are rejected here to discourage accidental double-slash keys.
func ParseAccessRequest(level, bucket, prefix string) (AccessRequest, error) {
	lvl := Level(level)
	if lvl != LevelReadOnly && lvl != LevelReadWrite {
		return AccessRequest{}, NewInputError("level %q is not valid - must be %q or %q", level, LevelReadOnly, LevelReadWrite)
	}

	if strings.Contains(bucket, ".") {
		return AccessRequest{}, NewInputError("bucket %q is not valid - may not contain dots", bucket)
	}

	if strings.HasPrefix(prefix, "/") {
		return AccessRequest{}, NewInputError("prefix %q is not valid - may not start with a slash", prefix)
	}

	return AccessRequest{Level: lvl, Bucket: bucket, Prefix: prefix}, nil
}
