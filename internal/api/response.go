package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"reportgate/internal/constants"
	"reportgate/internal/models/dtos/responses"
	"reportgate/internal/relay"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    string(constants.APIStatusSuccess),
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, kind, message string) {
	resp := responses.APIResponse[any]{
		Status:    string(constants.APIStatusError),
		Timestamp: time.Now().UTC(),
		Kind:      kind,
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

// respondWithRelayError converts any pipeline failure into the single
// terminal error response. Errors outside the relay taxonomy are normalized
// to a generic internal failure carrying the underlying message.
func respondWithRelayError(w http.ResponseWriter, err error) {
	kind := relay.KindOf(err)

	message := err.Error()
	var re *relay.Error
	if errors.As(err, &re) {
		message = re.Message
	}

	respondWithError(w, relay.HTTPStatus(kind), kind, message)
}
