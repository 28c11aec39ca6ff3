// Package pipeline runs the three LLM-backed stages: profile
// extraction, billing generation, and cost analysis. Stages are
// strictly linear; each is gated on the previous stage's document.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/cost"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/journal"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/llm"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/schema"
	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/store"
)

// Soft bounds on generated billing records. Violations log a warning
// but never fail the stage.
const (
	minBillingRecords = 12
	maxBillingRecords = 20
)

var profileContract = schema.Contract{
	Kind:     schema.KindObject,
	Required: []string{"name", "budget_inr_per_month", "description", "tech_stack", "non_functional_requirements"},
	Numeric:  []string{"budget_inr_per_month"},
	Objects:  []string{"tech_stack"},
	Arrays:   []string{"non_functional_requirements"},
}

var billingContract = schema.Contract{
	Kind: schema.KindArray,
	Required: []string{
		"month", "service", "resource_id", "region", "usage_type",
		"usage_quantity", "unit", "cost_inr", "desc",
	},
}

var recommendationContract = schema.Contract{
	Kind: schema.KindArray,
	Required: []string{
		"title", "service", "current_cost", "potential_savings",
		"recommendation_type", "description", "implementation_effort",
		"risk_level", "steps", "cloud_providers",
	},
}

// Pipeline wires the stages to the document store, the completion
// client, and the run journal.
type Pipeline struct {
	store   *store.Store
	llm     llm.Completer
	journal *journal.Journal
	runID   string
}

// New creates a pipeline. The journal may be nil.
func New(st *store.Store, completer llm.Completer, j *journal.Journal) *Pipeline {
	return &Pipeline{
		store:   st,
		llm:     completer,
		journal: j,
		runID:   journal.NewRunID(),
	}
}

// Run executes all three stages in order.
func (p *Pipeline) Run(ctx context.Context) (*cost.Report, error) {
	if _, err := p.ExtractProfile(ctx); err != nil {
		return nil, err
	}
	if _, err := p.GenerateBilling(ctx); err != nil {
		return nil, err
	}
	return p.AnalyzeCosts(ctx)
}

// ExtractProfile turns the saved project description into a structured
// profile document.
func (p *Pipeline) ExtractProfile(ctx context.Context) (profile *cost.Profile, err error) {
	done := p.journaled("profile")
	defer func() { done(err) }()

	description, readErr := p.store.ReadText(store.Description)
	if errors.Is(readErr, store.ErrNotFound) {
		err = &PrerequisiteMissingError{
			Document: "project description",
			Hint:     "save one first with the describe command",
		}
		return nil, err
	}
	if readErr != nil {
		err = readErr
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		err = &PrerequisiteMissingError{
			Document: "project description",
			Hint:     "the saved description is empty; save one with the describe command",
		}
		return nil, err
	}

	raw, llmErr := p.llm.Complete(ctx, profilePrompt(description), llm.KindObject, 1500)
	if llmErr != nil {
		err = fmt.Errorf("extracting project profile: %w", llmErr)
		return nil, err
	}
	if verr := schema.Validate(raw, profileContract); verr != nil {
		err = fmt.Errorf("extracting project profile: %w", verr)
		return nil, err
	}

	profile = &cost.Profile{}
	if decodeErr := decode(raw, profile); decodeErr != nil {
		err = fmt.Errorf("extracting project profile: %w", decodeErr)
		return nil, err
	}

	if writeErr := p.store.WriteJSON(store.Profile, profile); writeErr != nil {
		err = writeErr
		return nil, err
	}

	log.Info().Str("project", profile.Name).Float64("budget_inr", profile.BudgetINRPerMonth).
		Msg("project profile extracted")
	return profile, nil
}

// GenerateBilling produces the synthetic billing document from the
// profile.
func (p *Pipeline) GenerateBilling(ctx context.Context) (records []cost.BillingRecord, err error) {
	done := p.journaled("billing")
	defer func() { done(err) }()

	profile := &cost.Profile{}
	if readErr := p.store.ReadJSON(store.Profile, profile); readErr != nil {
		if errors.Is(readErr, store.ErrNotFound) {
			err = &PrerequisiteMissingError{
				Document: "project profile",
				Hint:     "run profile extraction first",
			}
			return nil, err
		}
		err = readErr
		return nil, err
	}

	raw, llmErr := p.llm.Complete(ctx, billingPrompt(profile), llm.KindArray, 3000)
	if llmErr != nil {
		err = fmt.Errorf("generating billing data: %w", llmErr)
		return nil, err
	}
	if verr := schema.Validate(raw, billingContract); verr != nil {
		err = fmt.Errorf("generating billing data: %w", verr)
		return nil, err
	}

	if decodeErr := decode(raw, &records); decodeErr != nil {
		err = fmt.Errorf("generating billing data: %w", decodeErr)
		return nil, err
	}

	if len(records) < minBillingRecords || len(records) > maxBillingRecords {
		log.Warn().Int("count", len(records)).
			Msgf("generated %d billing records, expected %d-%d", len(records), minBillingRecords, maxBillingRecords)
	}

	if writeErr := p.store.WriteJSON(store.Billing, records); writeErr != nil {
		err = writeErr
		return nil, err
	}

	log.Info().Int("records", len(records)).Msg("billing data generated")
	return records, nil
}

// AnalyzeCosts computes the cost analysis locally, asks the backend for
// recommendations, and writes the final report document.
func (p *Pipeline) AnalyzeCosts(ctx context.Context) (report *cost.Report, err error) {
	done := p.journaled("analysis")
	defer func() { done(err) }()

	profile := &cost.Profile{}
	if readErr := p.store.ReadJSON(store.Profile, profile); readErr != nil {
		if errors.Is(readErr, store.ErrNotFound) {
			err = &PrerequisiteMissingError{Document: "project profile", Hint: "run profile extraction first"}
			return nil, err
		}
		err = readErr
		return nil, err
	}

	var records []cost.BillingRecord
	if readErr := p.store.ReadJSON(store.Billing, &records); readErr != nil {
		if errors.Is(readErr, store.ErrNotFound) {
			err = &PrerequisiteMissingError{Document: "billing data", Hint: "run billing generation first"}
			return nil, err
		}
		err = readErr
		return nil, err
	}

	analysis := cost.Compute(profile.BudgetINRPerMonth, records)

	sample := records
	if len(sample) > 5 {
		sample = sample[:5]
	}

	raw, llmErr := p.llm.Complete(ctx, recommendationsPrompt(profile, analysis, sample), llm.KindObject, 4000)
	if llmErr != nil {
		err = fmt.Errorf("generating recommendations: %w", llmErr)
		return nil, err
	}

	recsRaw, extractErr := recommendationsValue(raw)
	if extractErr != nil {
		err = fmt.Errorf("generating recommendations: %w", extractErr)
		return nil, err
	}
	if verr := schema.Validate(recsRaw, recommendationContract); verr != nil {
		err = fmt.Errorf("generating recommendations: %w", verr)
		return nil, err
	}

	var recommendations []cost.Recommendation
	if decodeErr := decode(recsRaw, &recommendations); decodeErr != nil {
		err = fmt.Errorf("generating recommendations: %w", decodeErr)
		return nil, err
	}

	report = &cost.Report{
		ProjectName:     profile.Name,
		Analysis:        analysis,
		Recommendations: recommendations,
		Summary:         cost.Summarize(analysis.TotalMonthlyCost, recommendations),
	}

	if writeErr := p.store.WriteJSON(store.Report, report); writeErr != nil {
		err = writeErr
		return nil, err
	}

	log.Info().
		Float64("total_cost_inr", analysis.TotalMonthlyCost).
		Float64("budget_inr", analysis.Budget).
		Bool("over_budget", analysis.IsOverBudget).
		Strs("top_services", cost.TopServices(records, 3)).
		Int("recommendations", len(recommendations)).
		Float64("potential_savings_inr", report.Summary.TotalPotentialSavings).
		Msg("cost analysis complete")
	return report, nil
}

// recommendationsValue accepts either {"recommendations": [...]} or a
// bare array, the two shapes models actually produce for this prompt.
func recommendationsValue(raw any) (any, error) {
	switch v := raw.(type) {
	case map[string]any:
		recs, ok := v["recommendations"]
		if !ok {
			return nil, errors.New("response has no recommendations field")
		}
		return recs, nil
	case []any:
		return v, nil
	default:
		return nil, errors.New("response is neither an object nor an array")
	}
}

// journaled opens a journal entry for a stage; the returned func closes
// it with the stage's named return error.
func (p *Pipeline) journaled(stage string) func(error) {
	id := p.journal.Begin(p.runID, stage)
	return func(err error) {
		p.journal.End(id, err)
	}
}

func decode(raw, v any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
