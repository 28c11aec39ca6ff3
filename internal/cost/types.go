// Package cost holds the pipeline's document types and the local cost
// arithmetic. Nothing here touches the network.
package cost

// Profile is the structured project profile extracted from a free-form
// description. It is written once and only regenerated wholesale.
type Profile struct {
	Name                      string            `json:"name"`
	BudgetINRPerMonth         float64           `json:"budget_inr_per_month"`
	Description               string            `json:"description"`
	TechStack                 map[string]string `json:"tech_stack"`
	NonFunctionalRequirements []string          `json:"non_functional_requirements"`
}

// BillingRecord is one synthetic billing line item.
type BillingRecord struct {
	Month         string  `json:"month"`
	Service       string  `json:"service"`
	ResourceID    string  `json:"resource_id"`
	Region        string  `json:"region"`
	UsageType     string  `json:"usage_type"`
	UsageQuantity float64 `json:"usage_quantity"`
	Unit          string  `json:"unit"`
	CostINR       float64 `json:"cost_inr"`
	Desc          string  `json:"desc"`
}

// Recommendation is one LLM-sourced optimization suggestion.
type Recommendation struct {
	Title                string   `json:"title"`
	Service              string   `json:"service"`
	CurrentCost          float64  `json:"current_cost"`
	PotentialSavings     float64  `json:"potential_savings"`
	RecommendationType   string   `json:"recommendation_type"`
	Description          string   `json:"description"`
	ImplementationEffort string   `json:"implementation_effort"`
	RiskLevel            string   `json:"risk_level"`
	Steps                []string `json:"steps"`
	CloudProviders       []string `json:"cloud_providers"`
}

// Analysis is the locally computed cost picture for one month.
type Analysis struct {
	TotalMonthlyCost float64            `json:"total_monthly_cost"`
	Budget           float64            `json:"budget"`
	BudgetVariance   float64            `json:"budget_variance"`
	ServiceCosts map[string]float64 `json:"service_costs"`
	// HighCostServices holds the top services by cost. The map carries
	// no ordering; TopServices gives the ranked list.
	HighCostServices map[string]float64 `json:"high_cost_services"`
	IsOverBudget     bool               `json:"is_over_budget"`
}

// Summary aggregates the recommendation set against the total cost.
type Summary struct {
	TotalPotentialSavings     float64 `json:"total_potential_savings"`
	SavingsPercentage         float64 `json:"savings_percentage"`
	RecommendationsCount      int     `json:"recommendations_count"`
	HighImpactRecommendations int     `json:"high_impact_recommendations"`
}

// Report is the final analysis document, fully overwritten on re-run.
type Report struct {
	ProjectName     string           `json:"project_name"`
	Analysis        Analysis         `json:"analysis"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         Summary          `json:"summary"`
}
