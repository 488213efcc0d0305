package xhttp

import (
	"net/http"
	"strconv"
	"time"
)

const (
	XForwardedFor = "X-Forwarded-For"
	XRequestID    = "X-Request-ID"
	Authorization = "Authorization"
	Accept        = "Accept"
	UserAgent     = "User-Agent"
	RetryAfter    = "Retry-After"
)

const ContentType = "Content-Type"

const (
	ApplicationJSON = "application/json"
	ImageAny        = "image/*"
	ApplicationPDF  = "application/pdf"
)

func SetHeaderRequestID(w http.ResponseWriter, requestID string) {
	w.Header().Set(XRequestID, requestID)
}

func SetHeaderContentTypeApplicationJSON(w http.ResponseWriter) {
	w.Header().Set(ContentType, ApplicationJSON)
}

func SetHeaderRetryAfter(w http.ResponseWriter, retryAfter time.Duration) {
	retryAfterSeconds := int(retryAfter.Seconds())
	w.Header().Set(RetryAfter, strconv.Itoa(retryAfterSeconds))
}
