package relay

import (
	"errors"
	"fmt"
	"net/http"

	"reportgate/internal/constants"
)

// Error is the failure surface of the relay pipeline. Every stage reports
// failures as *Error so the request boundary can map them to one terminal
// response.
type Error struct {
	Kind    string
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the error kind, normalizing anything outside the taxonomy
// to a generic internal failure.
func KindOf(err error) string {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return constants.ErrKindInternal
}

// HTTPStatus maps an error kind to the status code of the terminal response.
func HTTPStatus(kind string) int {
	switch kind {
	case constants.ErrKindInvalidInput:
		return http.StatusBadRequest
	case constants.ErrKindReportNotFound, constants.ErrKindSettingsNotFound:
		return http.StatusNotFound
	case constants.ErrKindTransportError, constants.ErrKindRemoteError, constants.ErrKindEmptyOrInvalidArtifact:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
