package constants

import "time"

type (
	APIStatus       string
	DispositionMode string
)

const (
	APIStatusSuccess APIStatus = "success"
	APIStatusError   APIStatus = "error"

	DispositionInline     DispositionMode = "inline"
	DispositionAttachment DispositionMode = "attachment"
)

// Reporting server integration constants. These belong to the REST API
// contract of the remote server, not to any configuration row.
const (
	// ReportRESTSegment sits between the configured base URL and the
	// report path on every request.
	ReportRESTSegment = "rest_v2/reports"

	// ReportFileExtension is appended to the report path when missing.
	ReportFileExtension = ".pdf"

	// ReportContentType is sent as Accept on the fetch and as
	// Content-Type on the emitted stream.
	ReportContentType = "application/pdf"

	// ReportFetchTimeout bounds the remote GET. Exceeding it is a hard
	// failure; the relay never retries.
	ReportFetchTimeout = 30 * time.Second

	// MinArtifactBytes is the plausibility floor for a rendered report
	// body; a body must exceed it to stream. Server-side HTML error pages
	// come in at or under this, real PDFs well over it.
	MinArtifactBytes = 1024
)
