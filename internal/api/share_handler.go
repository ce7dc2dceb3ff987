package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"reportgate/internal/common"
	"reportgate/internal/constants"
	"reportgate/internal/logging"
	"reportgate/internal/metrics"
	"reportgate/internal/middleware"
	"reportgate/internal/models/dtos"
	"reportgate/internal/relay"
	"reportgate/internal/services"
)

const (
	defaultShareTTL = 15 * time.Minute
	maxShareTTL     = 24 * time.Hour
)

// ShareReportHandler handles POST /api/v1/reports/{report_id}/share
//
// Issues a short-lived single-use link that redeems through the public
// surface without an API key.
func ShareReportHandler(signer *common.URLSignerService, svc *services.ReportService, publicBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportID, err := strconv.ParseInt(chi.URLParam(r, "report_id"), 10, 64)
		if err != nil || reportID <= 0 {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "report_id must be a positive integer")
			return
		}

		ttl := defaultShareTTL
		var req dtos.ShareReportReq
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "invalid request body")
				return
			}
			if req.TTLSeconds > 0 {
				ttl = time.Duration(req.TTLSeconds) * time.Second
				if ttl > maxShareTTL {
					ttl = maxShareTTL
				}
			}
		}

		// A link for a report nobody can fetch is useless; surface the
		// lookup failure now rather than at redemption time.
		if _, err := svc.FetchReportDefinition(r.Context(), reportID); err != nil {
			respondWithRelayError(w, err)
			return
		}

		token, expiresAt, err := signer.GenerateShareToken(reportID, ttl)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, constants.ErrKindInternal, err.Error())
			return
		}

		resp := dtos.ShareReportResp{
			URL:       publicBaseURL + "/public/reports?token=" + url.QueryEscape(token),
			ExpiresAt: expiresAt,
		}
		respondWithSuccess(w, http.StatusOK, &resp)
	}
}

// PublicReportHandler handles GET /public/reports?token=...
//
// Redeems a share token and runs the same relay pipeline as the
// authenticated fetch endpoint.
func PublicReportHandler(signer *common.URLSignerService, svc *services.ReportService, metricsReg *metrics.MetricsRegistry, cfg EmitterConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			respondWithError(w, http.StatusBadRequest, constants.ErrKindInvalidInput, "token is required")
			return
		}

		st, err := signer.RedeemToken(r.Context(), tokenString)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, constants.ErrKindInvalidInput, "invalid, expired or already used share token")
			return
		}

		start := time.Now()
		artifact, err := svc.FetchReport(r.Context(), st.ReportID, 0, "")
		metricsReg.RemoteFetchDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metricsReg.RelayFailuresTotal.WithLabelValues(relay.KindOf(err)).Inc()
			respondWithRelayError(w, err)
			return
		}

		metricsReg.ReportsStreamedTotal.Inc()
		metricsReg.StreamedBytesTotal.Add(float64(len(artifact.Bytes)))

		logging.WithRelay(middleware.RequestIDFromContext(r.Context()), st.ReportID, 0).Infow(
			"Shared report streamed",
			"token_id", st.TokenID,
			"bytes", len(artifact.Bytes),
		)

		emitArtifact(w, artifact, cfg.DefaultDisposition, cfg.TimestampFilenames)
	}
}
