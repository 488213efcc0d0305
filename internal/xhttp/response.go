package xhttp

import (
	"errors"
	"net/http"

	go_json "github.com/goccy/go-json"

	"github.com/Render-Screenshot/rs-go/apierr"
)

func WriteJSON(w http.ResponseWriter, status int, data any) {
	SetHeaderContentTypeApplicationJSON(w)
	w.WriteHeader(status)
	_ = go_json.NewEncoder(w).Encode(data)
}

func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

type errorBody struct {
	Code    apierr.Code `json:"code"`
	Message string      `json:"message"`
}

// WriteError renders err in the API's own error shape. Errors that are not
// an *apierr.Error are reported as internal errors without their text.
func WriteError(w http.ResponseWriter, err error) {
	var e *apierr.Error
	if !errors.As(err, &e) {
		e = apierr.Internal()
	}
	if e.RetryAfter > 0 {
		SetHeaderRetryAfter(w, e.RetryAfter)
	}
	WriteJSON(w, e.StatusCode, errorBody{Code: e.Code, Message: e.Message})
}
