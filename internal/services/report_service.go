package services

import (
	"context"
	"time"

	"reportgate/internal/constants"
	"reportgate/internal/logging"
	"reportgate/internal/models/entities"
	"reportgate/internal/relay"
)

// SettingsStore is the read-only lookup for connection settings.
type SettingsStore interface {
	GetActiveSettings(ctx context.Context, id int64) (*entities.ConnectionSettings, error)
}

// ReportStore is the read-only lookup for report definitions.
type ReportStore interface {
	GetActiveReport(ctx context.Context, id int64) (*entities.ReportDefinition, error)
}

// ReportFetcher issues the remote GET for a built request.
type ReportFetcher interface {
	Fetch(ctx context.Context, req relay.Request) (*relay.FetchResult, error)
}

// ReportService runs the relay pipeline for one request: two configuration
// lookups, parameter resolution, URL construction, the remote fetch, and
// validation. All state is local to the invocation; repeat calls always do
// fresh lookups and a fresh fetch.
type ReportService struct {
	settings SettingsStore
	reports  ReportStore
	fetcher  ReportFetcher
}

func NewReportService(settings SettingsStore, reports ReportStore, fetcher ReportFetcher) *ReportService {
	return &ReportService{
		settings: settings,
		reports:  reports,
		fetcher:  fetcher,
	}
}

// FetchReportDefinition exposes the definition lookup for callers that need
// report metadata without performing a remote fetch.
func (s *ReportService) FetchReportDefinition(ctx context.Context, reportID int64) (*entities.ReportDefinition, error) {
	if reportID <= 0 {
		return nil, &relay.Error{
			Kind:    constants.ErrKindInvalidInput,
			Message: "report id is required",
		}
	}
	return s.reports.GetActiveReport(ctx, reportID)
}

// FetchReport resolves the report identified by reportID into a validated
// artifact. settingsID <= 0 means "not supplied": the report definition's
// own settings reference is used, which lets a report fall back to its home
// server while still allowing an override.
func (s *ReportService) FetchReport(ctx context.Context, reportID, settingsID int64, paramOverride string) (*relay.Artifact, error) {
	if reportID <= 0 {
		return nil, &relay.Error{
			Kind:    constants.ErrKindInvalidInput,
			Message: "report id is required",
		}
	}

	def, err := s.reports.GetActiveReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if settingsID <= 0 {
		settingsID = def.SettingsID
	}

	settings, err := s.settings.GetActiveSettings(ctx, settingsID)
	if err != nil {
		return nil, err
	}

	query := relay.EncodeQuery(relay.ResolveParams(paramOverride, def.DefaultParams.String))
	req := relay.BuildRequest(settings, def, query)

	start := time.Now()
	res, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := relay.Validate(res, req.URL); err != nil {
		return nil, err
	}

	logging.Info("Report fetched",
		"report_id", reportID,
		"settings_id", settingsID,
		"status_code", res.StatusCode,
		"bytes", len(res.Body),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &relay.Artifact{
		Bytes:       res.Body,
		DisplayName: def.DisplayName,
	}, nil
}
