package providers

import (
	"context"
	"io"
	"net/http"

	"reportgate/internal/constants"
	"reportgate/internal/relay"
)

// ReportServerProvider performs the single authenticated GET against the
// remote reporting server.
type ReportServerProvider struct {
	Client *http.Client
}

// NewReportServerProvider creates a provider with the fixed fetch timeout.
func NewReportServerProvider() *ReportServerProvider {
	return &ReportServerProvider{
		Client: &http.Client{
			Timeout: constants.ReportFetchTimeout,
		},
	}
}

// Fetch issues one synchronous GET with Basic Auth and returns the raw
// bytes plus status code. Connection, DNS, TLS and timeout failures all
// surface as TransportError and are never retried here; resubmission is a
// caller decision.
func (p *ReportServerProvider) Fetch(ctx context.Context, req relay.Request) (*relay.FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, "GET", req.URL, nil)
	if err != nil {
		return nil, &relay.Error{
			Kind:    constants.ErrKindTransportError,
			Message: "Failed to create request",
			Err:     err,
		}
	}

	// Credentials ride out-of-band, never in the URL
	httpReq.SetBasicAuth(req.Username, req.Secret)
	httpReq.Header.Set("Accept", constants.ReportContentType)

	resp, err := p.Client.Do(httpReq)
	if err != nil {
		return nil, &relay.Error{
			Kind:    constants.ErrKindTransportError,
			Message: constants.GetErrorMessage(constants.ErrKindTransportError),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &relay.Error{
			Kind:    constants.ErrKindTransportError,
			Message: "Failed to read response body",
			Err:     err,
		}
	}

	return &relay.FetchResult{
		Body:       body,
		StatusCode: resp.StatusCode,
	}, nil
}
