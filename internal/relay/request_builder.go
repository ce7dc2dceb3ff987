package relay

import (
	"strings"
	"time"

	"reportgate/internal/constants"
	"reportgate/internal/models/entities"
)

// Request is one fully resolved outgoing call: absolute URL, credentials
// carried out-of-band as Basic Auth, and the fixed wait bound.
type Request struct {
	URL      string
	Username string
	Secret   string
	Timeout  time.Duration
}

// BuildRequest combines connection settings, report definition and the
// encoded query into the absolute request URL. The base URL loses any
// trailing slash, the report path any leading slash, and the fixed REST
// segment of the server API sits between them. The ".pdf" extension is
// appended only when the path does not already carry it (case-sensitive).
func BuildRequest(settings *entities.ConnectionSettings, def *entities.ReportDefinition, query string) Request {
	base := strings.TrimRight(settings.BaseURL, "/")
	path := strings.TrimLeft(def.Path, "/")
	if !strings.HasSuffix(path, constants.ReportFileExtension) {
		path += constants.ReportFileExtension
	}

	url := base + "/" + constants.ReportRESTSegment + "/" + path
	if query != "" {
		url += "?" + query
	}

	return Request{
		URL:      url,
		Username: settings.Username,
		Secret:   settings.Secret,
		Timeout:  constants.ReportFetchTimeout,
	}
}
