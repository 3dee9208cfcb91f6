package service

const (
	KindSchedule   = "schedule"
	KindMetrics    = "metrics"
	KindProjection = "projection"
	KindLiquidity  = "liquidity"

	DefaultHistoryLimit = 20
)

// Limits bound request sizes so a single call stays cheap. They are checked
// before the finance package sees the input.
type Limits struct {
	MaxLoanAmount      float64
	MaxInterestRate    float64
	MaxTermYears       int
	MaxSimulationYears int
	MaxPlans           int
}

func DefaultLimits() Limits {
	return Limits{
		MaxLoanAmount:      1_000_000_000.0,
		MaxInterestRate:    100.0,
		MaxTermYears:       50,
		MaxSimulationYears: 100,
		MaxPlans:           200,
	}
}
