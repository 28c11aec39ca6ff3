// Package report renders the cost optimization report to flat text.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/cost"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/utils"
)

const ruleWidth = 70

func rule(ch string) string {
	return strings.Repeat(ch, ruleWidth)
}

// Render produces the plain-text export of a report.
func Render(r *cost.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", rule("="))
	fmt.Fprintf(&b, "COST OPTIMIZATION REPORT\n")
	fmt.Fprintf(&b, "%s\n\n", rule("="))
	fmt.Fprintf(&b, "Project: %s\n\n", r.ProjectName)

	a := r.Analysis
	fmt.Fprintf(&b, "COST ANALYSIS\n%s\n", rule("-"))
	fmt.Fprintf(&b, "Total Monthly Cost: %s\n", utils.Currency(a.TotalMonthlyCost))
	fmt.Fprintf(&b, "Budget: %s\n", utils.Currency(a.Budget))
	fmt.Fprintf(&b, "Budget Variance: %s\n", utils.Currency(a.BudgetVariance))
	status := "WITHIN BUDGET"
	if a.IsOverBudget {
		status = "OVER BUDGET"
	}
	fmt.Fprintf(&b, "Status: %s\n\n", status)

	fmt.Fprintf(&b, "Service Costs:\n")
	services := make([]string, 0, len(a.ServiceCosts))
	for service := range a.ServiceCosts {
		services = append(services, service)
	}
	sort.Strings(services)
	for _, service := range services {
		fmt.Fprintf(&b, "  %s: %s\n", service, utils.Currency(a.ServiceCosts[service]))
	}
	fmt.Fprintf(&b, "\n")

	s := r.Summary
	fmt.Fprintf(&b, "SUMMARY\n%s\n", rule("-"))
	fmt.Fprintf(&b, "Total Potential Savings: %s\n", utils.Currency(s.TotalPotentialSavings))
	fmt.Fprintf(&b, "Savings Percentage: %.2f%%\n", s.SavingsPercentage)
	fmt.Fprintf(&b, "Recommendations Count: %d\n\n", s.RecommendationsCount)

	fmt.Fprintf(&b, "RECOMMENDATIONS\n%s\n\n", rule("-"))
	for i, rec := range r.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec.Title)
		fmt.Fprintf(&b, "   Service: %s\n", rec.Service)
		fmt.Fprintf(&b, "   Current Cost: %s\n", utils.Currency(rec.CurrentCost))
		fmt.Fprintf(&b, "   Potential Savings: %s\n", utils.Currency(rec.PotentialSavings))
		fmt.Fprintf(&b, "   Type: %s\n", rec.RecommendationType)
		fmt.Fprintf(&b, "   Implementation Effort: %s\n", rec.ImplementationEffort)
		fmt.Fprintf(&b, "   Risk Level: %s\n", rec.RiskLevel)
		fmt.Fprintf(&b, "   Description: %s\n", rec.Description)
		fmt.Fprintf(&b, "   Cloud Providers: %s\n", strings.Join(rec.CloudProviders, ", "))
		fmt.Fprintf(&b, "   Implementation Steps:\n")
		for _, step := range rec.Steps {
			fmt.Fprintf(&b, "     - %s\n", step)
		}
		fmt.Fprintf(&b, "\n")
	}

	return b.String()
}
