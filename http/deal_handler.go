package http

import (
	"net/http"

	"go.uber.org/zap"

	"investment-engine/domain"
	"investment-engine/report"
	"investment-engine/service"
)

type DealHandler struct {
	service *service.ProjectionService
	logger  *zap.Logger
}

func NewDealHandler(service *service.ProjectionService, logger *zap.Logger) *DealHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DealHandler{service: service, logger: logger}
}

type ProjectionResponse struct {
	Scenarios []domain.Projection `json:"scenarios"`
}

func (h *DealHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	var req PeriodRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	metrics := h.service.Metrics(req.toDomain())
	writeJSON(w, http.StatusOK, report.Metrics(metrics), h.logger)
}

func (h *DealHandler) Project(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	input, err := req.toService()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	projections, err := h.service.Project(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ProjectionResponse{Scenarios: report.Projections(projections)}, h.logger)
}
