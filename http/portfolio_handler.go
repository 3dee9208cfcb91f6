package http

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"investment-engine/domain"
	"investment-engine/report"
	"investment-engine/service"
)

type PortfolioHandler struct {
	service *service.PortfolioService
	history *service.HistoryService
	logger  *zap.Logger
}

func NewPortfolioHandler(
	portfolio *service.PortfolioService,
	history *service.HistoryService,
	logger *zap.Logger,
) *PortfolioHandler {

	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortfolioHandler{service: portfolio, history: history, logger: logger}
}

func (h *PortfolioHandler) Liquidity(w http.ResponseWriter, r *http.Request) {
	var req PortfolioRequest
	if !decodeRequest(w, r, &req, h.logger) {
		return
	}

	input, err := req.toService()
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	result, err := h.service.Liquidity(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, report.Liquidity(result), h.logger)
}

type HistoryResponse struct {
	Calculations []domain.CalculationRecord `json:"calculations"`
}

// History serves GET /calculations?limit=N.
func (h *PortfolioHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer", h.logger)
			return
		}
		limit = n
	}

	records, err := h.history.Recent(limit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}
	if records == nil {
		records = []domain.CalculationRecord{}
	}

	writeJSON(w, http.StatusOK, HistoryResponse{Calculations: records}, h.logger)
}
