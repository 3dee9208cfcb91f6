package http

import (
	"net/http"

	"go.uber.org/zap"

	"investment-engine/report"
	"investment-engine/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *zap.Logger
}

func NewLoanHandler(service *service.LoanService, logger *zap.Logger) *LoanHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoanHandler{service: service, logger: logger}
}

func (h *LoanHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	var req LoanTermsRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	terms, err := req.toDomain("terms")
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	result, err := h.service.GenerateSchedule(r.Context(), terms)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, report.Schedule(result), h.logger)
}
