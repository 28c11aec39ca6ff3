package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rec(service string, costINR float64) BillingRecord {
	return BillingRecord{Month: "2025-01", Service: service, CostINR: costINR}
}

func TestCompute_Totals(t *testing.T) {
	records := []BillingRecord{rec("EC2", 100), rec("RDS", 200), rec("S3", 300)}

	a := Compute(500, records)

	assert.Equal(t, 600.0, a.TotalMonthlyCost)
	assert.Equal(t, 500.0, a.Budget)
	assert.Equal(t, 100.0, a.BudgetVariance)
	assert.True(t, a.IsOverBudget)
}

func TestCompute_UnderBudget(t *testing.T) {
	a := Compute(1000, []BillingRecord{rec("EC2", 400)})
	assert.Equal(t, -600.0, a.BudgetVariance)
	assert.False(t, a.IsOverBudget)
}

func TestCompute_GroupsByService(t *testing.T) {
	records := []BillingRecord{
		rec("EC2", 100), rec("S3", 50), rec("EC2", 150), rec("S3", 25),
	}

	a := Compute(500, records)

	assert.Equal(t, map[string]float64{"EC2": 250, "S3": 75}, a.ServiceCosts)
}

func TestCompute_HighCostServicesTop3(t *testing.T) {
	records := []BillingRecord{
		rec("Lambda", 10), rec("EC2", 500), rec("S3", 100),
		rec("RDS", 300), rec("CloudWatch", 50),
	}

	a := Compute(1000, records)

	assert.Equal(t, map[string]float64{"EC2": 500, "RDS": 300, "S3": 100}, a.HighCostServices)
}

func TestTopServices_DescendingStableTies(t *testing.T) {
	// EC2 and RDS tie; EC2 appears first in the records, so it ranks first.
	records := []BillingRecord{
		rec("S3", 50), rec("EC2", 200), rec("RDS", 200), rec("Lambda", 400),
	}

	assert.Equal(t, []string{"Lambda", "EC2", "RDS"}, TopServices(records, 3))
	assert.Equal(t, []string{"Lambda"}, TopServices(records, 1))
}

func TestCompute_NoRecords(t *testing.T) {
	a := Compute(500, nil)
	assert.Equal(t, 0.0, a.TotalMonthlyCost)
	assert.Equal(t, -500.0, a.BudgetVariance)
	assert.False(t, a.IsOverBudget)
	assert.Empty(t, a.ServiceCosts)
	assert.Empty(t, a.HighCostServices)
}

func TestSummarize(t *testing.T) {
	recs := []Recommendation{
		{Title: "Right-size EC2", PotentialSavings: 60},
		{Title: "S3 lifecycle", PotentialSavings: 90},
	}

	s := Summarize(600, recs)

	assert.Equal(t, 150.0, s.TotalPotentialSavings)
	assert.Equal(t, 25.0, s.SavingsPercentage)
	assert.Equal(t, 2, s.RecommendationsCount)
	// Both exceed 10% of 600.
	assert.Equal(t, 2, s.HighImpactRecommendations)
}

func TestSummarize_ZeroTotalCost(t *testing.T) {
	s := Summarize(0, []Recommendation{{PotentialSavings: 100}})
	assert.Equal(t, 0.0, s.SavingsPercentage)
	assert.Equal(t, 100.0, s.TotalPotentialSavings)
}

func TestSummarize_HighImpactThreshold(t *testing.T) {
	recs := []Recommendation{
		{PotentialSavings: 59},  // below 10% of 600
		{PotentialSavings: 60},  // exactly 10%, not above
		{PotentialSavings: 61},  // above
	}
	s := Summarize(600, recs)
	assert.Equal(t, 1, s.HighImpactRecommendations)
}

func TestSummarize_RoundsToTwoDecimals(t *testing.T) {
	s := Summarize(300, []Recommendation{{PotentialSavings: 100}})
	assert.Equal(t, 33.33, s.SavingsPercentage)
}
