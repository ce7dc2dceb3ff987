package constants

// Relay Error Kinds
// These constants classify every failure the report relay can surface.

// Input and configuration lookup errors
const (
	ErrKindInvalidInput       = "INVALID_INPUT"
	ErrKindReportNotFound     = "REPORT_NOT_FOUND"
	ErrKindSettingsNotFound   = "SETTINGS_NOT_FOUND"
	ErrKindIntegrityViolation = "INTEGRITY_VIOLATION"
)

// Remote fetch errors
const (
	ErrKindTransportError         = "TRANSPORT_ERROR"
	ErrKindRemoteError            = "REMOTE_ERROR"
	ErrKindEmptyOrInvalidArtifact = "EMPTY_OR_INVALID_ARTIFACT"
)

// Fallback for anything the taxonomy does not anticipate
const (
	ErrKindInternal = "INTERNAL_ERROR"
)

// Error Messages
// Human-readable messages corresponding to error kinds

var RelayErrorMessages = map[string]string{
	ErrKindInvalidInput:       "A required identifier is missing or malformed",
	ErrKindReportNotFound:     "No active report definition exists for this identifier",
	ErrKindSettingsNotFound:   "No active connection settings exist for this identifier",
	ErrKindIntegrityViolation: "Multiple active configuration rows matched a single identifier",

	ErrKindTransportError:         "Unable to reach the remote reporting server",
	ErrKindRemoteError:            "The remote reporting server returned a non-success status",
	ErrKindEmptyOrInvalidArtifact: "The fetched payload is empty or too small to be a rendered report",

	ErrKindInternal: "An unknown error occurred",
}

// GetErrorMessage returns the human-readable message for an error kind
func GetErrorMessage(kind string) string {
	if msg, exists := RelayErrorMessages[kind]; exists {
		return msg
	}
	return "An unknown error occurred"
}
