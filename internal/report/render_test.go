package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/cost"
)

func sampleReport() *cost.Report {
	return &cost.Report{
		ProjectName: "Blog",
		Analysis: cost.Analysis{
			TotalMonthlyCost: 600,
			Budget:           500,
			BudgetVariance:   100,
			ServiceCosts:     map[string]float64{"EC2": 400, "S3": 200},
			HighCostServices: map[string]float64{"EC2": 400, "S3": 200},
			IsOverBudget:     true,
		},
		Recommendations: []cost.Recommendation{
			{
				Title:                "Right-size EC2",
				Service:              "EC2",
				CurrentCost:          400,
				PotentialSavings:     120,
				RecommendationType:   "right_sizing",
				Description:          "Downsize over-provisioned instances",
				ImplementationEffort: "low",
				RiskLevel:            "low",
				Steps:                []string{"audit usage", "resize", "monitor"},
				CloudProviders:       []string{"AWS", "GCP"},
			},
		},
		Summary: cost.Summary{
			TotalPotentialSavings:     120,
			SavingsPercentage:         20,
			RecommendationsCount:      1,
			HighImpactRecommendations: 1,
		},
	}
}

func TestRender_Sections(t *testing.T) {
	out := Render(sampleReport())

	assert.Contains(t, out, "COST OPTIMIZATION REPORT")
	assert.Contains(t, out, "Project: Blog")
	assert.Contains(t, out, "Total Monthly Cost: ₹600.00")
	assert.Contains(t, out, "Budget: ₹500.00")
	assert.Contains(t, out, "Budget Variance: ₹100.00")
	assert.Contains(t, out, "Status: OVER BUDGET")
	assert.Contains(t, out, "EC2: ₹400.00")
	assert.Contains(t, out, "Savings Percentage: 20.00%")
	assert.Contains(t, out, "1. Right-size EC2")
	assert.Contains(t, out, "     - audit usage")
	assert.Contains(t, out, "Cloud Providers: AWS, GCP")
}

func TestRender_WithinBudget(t *testing.T) {
	r := sampleReport()
	r.Analysis.IsOverBudget = false

	out := Render(r)
	assert.Contains(t, out, "Status: WITHIN BUDGET")
	assert.NotContains(t, out, "OVER BUDGET")
}

func TestRender_ServiceCostsSorted(t *testing.T) {
	out := Render(sampleReport())
	assert.Less(t, strings.Index(out, "EC2: ₹"), strings.Index(out, "S3: ₹"))
}
