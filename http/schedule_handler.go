package http

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"mortgage-api/service"
)

type ScheduleHandler struct {
	service *service.ScheduleService
	log     *logrus.Logger
}

func NewScheduleHandler(service *service.ScheduleService, log *logrus.Logger) *ScheduleHandler {
	return &ScheduleHandler{service: service, log: log}
}

func (h *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {

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

	schedule, err := h.service.Schedule(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, scheduleResponse{
		Success:              true,
		Timestamp:            timestamp(),
		AmortizationSchedule: schedule,
	})
}
