package http

import (
	"net/http"

	"go.uber.org/zap"
)

type Handlers struct {
	Loan      *LoanHandler
	Deal      *DealHandler
	Portfolio *PortfolioHandler
}

// NewRouter mounts every endpoint on a ServeMux. Calculation endpoints sit
// behind the rate limiter; health and history do not.
func NewRouter(h Handlers, limiter *RateLimiter, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	limited := func(fn http.HandlerFunc) http.Handler {
		if limiter == nil {
			return fn
		}
		return RateLimitMiddleware(limiter, logger, fn)
	}

	mux := http.NewServeMux()
	mux.Handle("/loan/schedule", limited(h.Loan.GenerateSchedule))
	mux.Handle("/deal/metrics", limited(h.Deal.Metrics))
	mux.Handle("/deal/projection", limited(h.Deal.Project))
	mux.Handle("/portfolio/liquidity", limited(h.Portfolio.Liquidity))
	mux.HandleFunc("/calculations", h.Portfolio.History)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	})

	return RequestLogMiddleware(logger, mux)
}
