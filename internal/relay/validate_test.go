package relay

import (
	"bytes"
	"strings"
	"testing"

	"reportgate/internal/constants"
)

func TestValidate_SmallBodyRejected(t *testing.T) {
	res := &FetchResult{
		Body:       bytes.Repeat([]byte("x"), 50),
		StatusCode: 200,
	}

	err := Validate(res, "http://reports.example.com/rest_v2/reports/sales.pdf")
	if err == nil {
		t.Fatal("Expected error for 50-byte body")
	}
	if KindOf(err) != constants.ErrKindEmptyOrInvalidArtifact {
		t.Errorf("Expected kind %s, got %s", constants.ErrKindEmptyOrInvalidArtifact, KindOf(err))
	}
}

func TestValidate_EmptyBodyRejected(t *testing.T) {
	err := Validate(&FetchResult{Body: nil, StatusCode: 200}, "http://example.com")

	if KindOf(err) != constants.ErrKindEmptyOrInvalidArtifact {
		t.Errorf("Expected kind %s, got %v", constants.ErrKindEmptyOrInvalidArtifact, err)
	}
}

func TestValidate_ThresholdBoundary(t *testing.T) {
	// The body must exceed the floor: exactly-at-threshold is still an
	// implausible artifact, one byte over streams.
	atFloor := &FetchResult{
		Body:       bytes.Repeat([]byte("x"), constants.MinArtifactBytes),
		StatusCode: 200,
	}
	err := Validate(atFloor, "http://example.com")
	if KindOf(err) != constants.ErrKindEmptyOrInvalidArtifact {
		t.Errorf("Expected kind %s for %d-byte body, got %v",
			constants.ErrKindEmptyOrInvalidArtifact, constants.MinArtifactBytes, err)
	}

	overFloor := &FetchResult{
		Body:       bytes.Repeat([]byte("x"), constants.MinArtifactBytes+1),
		StatusCode: 200,
	}
	if err := Validate(overFloor, "http://example.com"); err != nil {
		t.Errorf("Expected %d-byte body to validate, got %v", constants.MinArtifactBytes+1, err)
	}
}

func TestValidate_PlausibleBodyAccepted(t *testing.T) {
	res := &FetchResult{
		Body:       bytes.Repeat([]byte("x"), 5000),
		StatusCode: 200,
	}

	if err := Validate(res, "http://example.com"); err != nil {
		t.Errorf("Expected 5000-byte body to validate, got %v", err)
	}
}

func TestValidate_NonSuccessStatusRejectedRegardlessOfLength(t *testing.T) {
	res := &FetchResult{
		Body:       bytes.Repeat([]byte("x"), 5000),
		StatusCode: 404,
	}

	err := Validate(res, "http://example.com")
	if KindOf(err) != constants.ErrKindRemoteError {
		t.Errorf("Expected kind %s, got %v", constants.ErrKindRemoteError, err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected status in message, got %q", err.Error())
	}
}

func TestValidate_RemoteErrorTruncatesLongURL(t *testing.T) {
	longURL := "http://example.com/" + strings.Repeat("a", 500)
	err := Validate(&FetchResult{StatusCode: 500}, longURL)

	if strings.Contains(err.Error(), longURL) {
		t.Error("Expected URL to be truncated in error message")
	}
	if !strings.Contains(err.Error(), "...") {
		t.Errorf("Expected truncation marker, got %q", err.Error())
	}
}
