package relay

import (
	"fmt"
	"net/http"

	"reportgate/internal/constants"
)

// FetchResult is the raw outcome of one remote GET. It lives for a single
// invocation and is discarded after streaming or error reporting.
type FetchResult struct {
	Body       []byte
	StatusCode int
}

// Artifact is a validated report payload ready for emission.
type Artifact struct {
	Bytes       []byte
	DisplayName string
}

// Validate classifies a fetch result. Anything other than a 200 is a remote
// failure carrying the status and the attempted URL (truncated for logs).
// A 200 whose body does not exceed the plausibility floor is rejected: that
// is how server-side HTML error pages are filtered out. No structural PDF
// check is performed beyond that.
func Validate(res *FetchResult, requestURL string) error {
	if res.StatusCode != http.StatusOK {
		return &Error{
			Kind:    constants.ErrKindRemoteError,
			Message: fmt.Sprintf("remote server returned %d for %s", res.StatusCode, truncateURL(requestURL)),
		}
	}

	if len(res.Body) <= constants.MinArtifactBytes {
		return &Error{
			Kind:    constants.ErrKindEmptyOrInvalidArtifact,
			Message: fmt.Sprintf("payload of %d bytes does not exceed the %d byte plausibility floor", len(res.Body), constants.MinArtifactBytes),
		}
	}

	return nil
}

// truncateURL keeps failure messages and logs bounded
func truncateURL(u string) string {
	const max = 120
	if len(u) <= max {
		return u
	}
	return u[:max] + "..."
}
