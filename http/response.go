package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"mortgage-api/domain"
)

type calculationResponse struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
	domain.PaymentBreakdown
}

type scheduleResponse struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
	domain.AmortizationSchedule
}

type termComparisonResponse struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
	domain.TermComparison
}

type errorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func decodeJSON(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeJSON encodes into a buffer first so a marshalling failure never
// produces a half-written 200 response.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{
		Success:   false,
		Error:     msg,
		Timestamp: timestamp(),
	})
}

// writeServiceError maps a ValidationError to 400 and anything else to a
// generic 500 so internal error text never reaches the client.
func writeServiceError(w http.ResponseWriter, log *logrus.Logger, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		writeError(w, http.StatusBadRequest, vErr.Error())
		return
	}
	log.WithError(err).Error("calculation failed")
	writeError(w, http.StatusInternalServerError, "internal server error")
}
