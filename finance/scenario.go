package finance

import "investment-engine/domain"

const (
	ScenarioBase        = "base"
	ScenarioOptimistic  = "optimistic"
	ScenarioPessimistic = "pessimistic"
	ScenarioCustom      = "custom"
)

var (
	Identity    = domain.ScenarioAdjustment{Appreciation: 1, RentIncrease: 1, ExpenseIncrease: 1, Vacancy: 1}
	Optimistic  = domain.ScenarioAdjustment{Appreciation: 1.5, RentIncrease: 1.5, ExpenseIncrease: 0.8, Vacancy: 0.5}
	Pessimistic = domain.ScenarioAdjustment{Appreciation: 0.5, RentIncrease: 0.5, ExpenseIncrease: 1.5, Vacancy: 2.0}
)

type namedScenario struct {
	name string
	adj  domain.ScenarioAdjustment
}

// ProjectAll runs the standard scenarios against the same deal. A custom
// adjustment, when given, is appended as a fourth scenario.
func ProjectAll(
	deal domain.DealParameters,
	years int,
	custom *domain.ScenarioAdjustment,
) ([]domain.Projection, error) {

	scenarios := []namedScenario{
		{ScenarioBase, Identity},
		{ScenarioOptimistic, Optimistic},
		{ScenarioPessimistic, Pessimistic},
	}
	if custom != nil {
		scenarios = append(scenarios, namedScenario{ScenarioCustom, *custom})
	}

	projections := make([]domain.Projection, 0, len(scenarios))
	for _, sc := range scenarios {
		p, err := Project(deal, years, sc.adj)
		if err != nil {
			return nil, err
		}
		p.Scenario = sc.name
		projections = append(projections, p)
	}

	return projections, nil
}
