package api

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"reportgate/internal/constants"
	"reportgate/internal/logging"
	"reportgate/internal/metrics"
	"reportgate/internal/middleware"
	"reportgate/internal/relay"
	"reportgate/internal/services"
)

// EmitterConfig carries the resolved output-framing settings. The
// disposition mode is configuration, never hardcoded; callers may still
// override it per request.
type EmitterConfig struct {
	DefaultDisposition constants.DispositionMode
	TimestampFilenames bool
}

// EmitterConfigFromEnv resolves framing settings at startup.
func EmitterConfigFromEnv() EmitterConfig {
	cfg := EmitterConfig{
		DefaultDisposition: constants.DispositionInline,
	}

	if mode := os.Getenv("REPORT_DISPOSITION"); mode == string(constants.DispositionAttachment) {
		cfg.DefaultDisposition = constants.DispositionAttachment
	}
	if os.Getenv("REPORT_FILENAME_TIMESTAMP") == "true" {
		cfg.TimestampFilenames = true
	}

	return cfg
}

// FetchReportHandler handles GET /api/v1/reports/{report_id}
//
// Query parameters: settings_id (optional override of the definition's home
// server), params (optional ;-delimited parameter string replacing stored
// defaults), disposition (optional inline|attachment).
func FetchReportHandler(svc *services.ReportService, metricsReg *metrics.MetricsRegistry, cfg EmitterConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		reportID, err := strconv.ParseInt(chi.URLParam(r, "report_id"), 10, 64)
		if err != nil || reportID <= 0 {
			metricsReg.RelayFailuresTotal.WithLabelValues(constants.ErrKindInvalidInput).Inc()
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "report_id must be a positive integer")
			return
		}

		var settingsID int64
		if qs := r.URL.Query().Get("settings_id"); qs != "" {
			settingsID, err = strconv.ParseInt(qs, 10, 64)
			if err != nil || settingsID <= 0 {
				metricsReg.RelayFailuresTotal.WithLabelValues(constants.ErrKindInvalidInput).Inc()
				respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "settings_id must be a positive integer")
				return
			}
		}

		paramOverride := r.URL.Query().Get("params")

		// All input validation happens before the first lookup; a bad
		// disposition must not cost a remote fetch.
		mode := cfg.DefaultDisposition
		if q := r.URL.Query().Get("disposition"); q != "" {
			switch constants.DispositionMode(q) {
			case constants.DispositionInline, constants.DispositionAttachment:
				mode = constants.DispositionMode(q)
			default:
				metricsReg.RelayFailuresTotal.WithLabelValues(constants.ErrKindInvalidInput).Inc()
				respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "disposition must be inline or attachment")
				return
			}
		}

		start := time.Now()
		artifact, err := svc.FetchReport(r.Context(), reportID, settingsID, paramOverride)
		metricsReg.RemoteFetchDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metricsReg.RelayFailuresTotal.WithLabelValues(relay.KindOf(err)).Inc()
			respondWithRelayError(w, err)
			return
		}

		metricsReg.ReportsStreamedTotal.Inc()
		metricsReg.StreamedBytesTotal.Add(float64(len(artifact.Bytes)))

		logging.WithRelay(middleware.RequestIDFromContext(r.Context()), reportID, settingsID).Infow(
			"Report streamed",
			"bytes", len(artifact.Bytes),
		)

		emitArtifact(w, artifact, mode, cfg.TimestampFilenames)
		// Framing is complete; nothing may write to w past this point.
	}
}

// emitArtifact writes the output framing and the validated bytes. It is
// only ever called after full validation, so a failure can no longer
// produce partial output.
func emitArtifact(w http.ResponseWriter, artifact *relay.Artifact, mode constants.DispositionMode, timestamped bool) {
	name := artifactFileName(artifact.DisplayName, timestamped)

	w.Header().Set("Content-Type", constants.ReportContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Bytes)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", mode, name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Bytes)
}

// artifactFileName derives the download name from the report's display
// name, optionally timestamp-suffixed to dodge caller-side cache collisions.
func artifactFileName(displayName string, timestamped bool) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '/', '\n', '\r':
			return '_'
		}
		return r
	}, displayName)
	if name == "" {
		name = "report"
	}

	if timestamped {
		name += "_" + time.Now().Format("20060102150405")
	}
	return name + constants.ReportFileExtension
}
