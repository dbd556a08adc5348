package http

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"mortgage-api/service"
)

type MortgageHandler struct {
	service *service.MortgageService
	log     *logrus.Logger
}

func NewMortgageHandler(service *service.MortgageService, log *logrus.Logger) *MortgageHandler {
	return &MortgageHandler{service: service, log: log}
}

func (h *MortgageHandler) Calculate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req calculationRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	breakdown, err := h.service.Calculate(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, calculationResponse{
		Success:          true,
		Timestamp:        timestamp(),
		PaymentBreakdown: breakdown,
	})
}
