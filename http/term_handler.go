package http

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"mortgage-api/service"
)

type TermHandler struct {
	service *service.TermService
	log     *logrus.Logger
}

func NewTermHandler(service *service.TermService, log *logrus.Logger) *TermHandler {
	return &TermHandler{service: service, log: log}
}

func (h *TermHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req compareTermsRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	comparison, err := h.service.CompareTerms(r.Context(), input, req.Terms)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, termComparisonResponse{
		Success:        true,
		Timestamp:      timestamp(),
		TermComparison: comparison,
	})
}
