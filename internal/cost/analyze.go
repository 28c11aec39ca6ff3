package cost

import (
	"sort"

	"github.com/shopspring/decimal"
)

const topServiceCount = 3

// Compute derives the cost analysis from billing records and the
// profile budget. Sums go through decimal to avoid drift across many
// small float additions; values stay float64 at the JSON boundary.
func Compute(budget float64, records []BillingRecord) Analysis {
	total := decimal.Zero
	serviceTotals := make(map[string]decimal.Decimal)
	var order []string // first-encountered service order, for stable tie-breaks

	for _, rec := range records {
		c := decimal.NewFromFloat(rec.CostINR)
		total = total.Add(c)
		if _, seen := serviceTotals[rec.Service]; !seen {
			order = append(order, rec.Service)
		}
		serviceTotals[rec.Service] = serviceTotals[rec.Service].Add(c)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return serviceTotals[order[i]].GreaterThan(serviceTotals[order[j]])
	})

	serviceCosts := make(map[string]float64, len(serviceTotals))
	for service, d := range serviceTotals {
		serviceCosts[service] = d.InexactFloat64()
	}

	highCost := make(map[string]float64)
	for i, service := range order {
		if i >= topServiceCount {
			break
		}
		highCost[service] = serviceTotals[service].InexactFloat64()
	}

	totalCost := total.InexactFloat64()
	variance := total.Sub(decimal.NewFromFloat(budget)).InexactFloat64()

	return Analysis{
		TotalMonthlyCost: totalCost,
		Budget:           budget,
		BudgetVariance:   variance,
		ServiceCosts:     serviceCosts,
		HighCostServices: highCost,
		IsOverBudget:     totalCost > budget,
	}
}

// Summarize computes the report summary from validated recommendations
// and the precomputed total cost. When the total cost is zero the
// savings percentage is zero regardless of savings.
func Summarize(totalCost float64, recs []Recommendation) Summary {
	savings := decimal.Zero
	highImpact := 0
	for _, rec := range recs {
		savings = savings.Add(decimal.NewFromFloat(rec.PotentialSavings))
		if rec.PotentialSavings > totalCost*0.1 {
			highImpact++
		}
	}

	percentage := 0.0
	if totalCost > 0 {
		percentage = savings.
			Div(decimal.NewFromFloat(totalCost)).
			Mul(decimal.NewFromInt(100)).
			Round(2).
			InexactFloat64()
	}

	return Summary{
		TotalPotentialSavings:     savings.InexactFloat64(),
		SavingsPercentage:         percentage,
		RecommendationsCount:      len(recs),
		HighImpactRecommendations: highImpact,
	}
}

// TopServices returns the high-cost services ordered by descending
// cost, ties in first-encountered record order. The Analysis map loses
// ordering; callers use this for a stable ranking.
func TopServices(records []BillingRecord, n int) []string {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, rec := range records {
		if _, seen := totals[rec.Service]; !seen {
			order = append(order, rec.Service)
		}
		totals[rec.Service] = totals[rec.Service].Add(decimal.NewFromFloat(rec.CostINR))
	}
	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]].GreaterThan(totals[order[j]])
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}
