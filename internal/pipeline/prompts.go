package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/bhoomigoyal/cloud-cost-optimizer/internal/cost"
)

func profilePrompt(description string) string {
	return fmt.Sprintf(`You are an AI assistant that extracts structured project details from free-form text.
Extract the following information and return ONLY valid JSON (no markdown, no code blocks, no explanations, just pure JSON).

CRITICAL: Return ONLY the JSON object. Do not include any text before or after the JSON. Do not use markdown code blocks.

Required JSON structure:
{
  "name": "Project Name",
  "budget_inr_per_month": <number>,
  "description": "Full project description",
  "tech_stack": {
    "frontend": "<technology>",
    "backend": "<technology>",
    "database": "<technology>",
    "hosting": "<cloud provider>",
    ... (add other relevant tech stack fields)
  },
  "non_functional_requirements": ["requirement1", "requirement2", ...]
}

Project Description:
%s

Return ONLY the JSON object, nothing else.`, description)
}

func billingPrompt(profile *cost.Profile) string {
	budget := profile.BudgetINRPerMonth
	if budget == 0 {
		budget = 10000
	}
	profileJSON, _ := json.MarshalIndent(profile, "", "  ")

	return fmt.Sprintf(`You are a cloud billing data generator. Generate realistic synthetic cloud billing records.
Generate 12-20 billing records as a JSON array. Each record must have these exact fields:

CRITICAL: Return ONLY the JSON array. Do not include any text before or after the JSON. Do not use markdown code blocks.

Required structure for each record:
{
  "month": "YYYY-MM",
  "service": "<service name like EC2, RDS, S3, Lambda, etc>",
  "resource_id": "<unique resource identifier>",
  "region": "<AWS region like ap-south-1, us-east-1, etc>",
  "usage_type": "<usage type description>",
  "usage_quantity": <number>,
  "unit": "<unit like hours, GB, requests, etc>",
  "cost_inr": <number>,
  "desc": "<description of the resource>"
}

Rules:
1. Generate EXACTLY 12-20 records (preferably 15-18)
2. Total monthly cost should be close to but can exceed budget: %.0f INR per month
3. Distribute costs across: compute (EC2, Lambda), database (RDS, DynamoDB), storage (S3), networking (CloudFront, Load Balancer), monitoring (CloudWatch)
4. Use realistic AWS service names and regions
5. Generate records for a single month (use same month for all records, e.g., "2025-01")
6. Ensure resource_id is unique for each record
7. Make usage_quantity and cost_inr realistic and proportional
8. Include variety: some high-cost items, some low-cost items

Project Profile:
%s

Return ONLY a JSON array, nothing else. No markdown, no code blocks, no explanations.`, budget, profileJSON)
}

func recommendationsPrompt(profile *cost.Profile, analysis cost.Analysis, sample []cost.BillingRecord) string {
	profileJSON, _ := json.MarshalIndent(profile, "", "  ")
	analysisJSON, _ := json.MarshalIndent(analysis, "", "  ")
	sampleJSON, _ := json.MarshalIndent(sample, "", "  ")

	return fmt.Sprintf(`You are a cloud cost optimization expert. Generate 6-10 detailed cost optimization recommendations.

CRITICAL: Return ONLY the JSON object. Do not include any text before or after the JSON. Do not use markdown code blocks.

Return ONLY a JSON object with this exact structure:
{
  "recommendations": [
    {
      "title": "<recommendation title>",
      "service": "<service name>",
      "current_cost": <number>,
      "potential_savings": <number>,
      "recommendation_type": "<open_source|free_tier|alternative_provider|optimization|right_sizing|cost-effective_storage>",
      "description": "<detailed description>",
      "implementation_effort": "<low|medium|high>",
      "risk_level": "<low|medium|high>",
      "steps": ["step1", "step2", "step3"],
      "cloud_providers": ["AWS", "Azure", "GCP", "Open Source", ...]
    },
    ...
  ]
}

Requirements:
1. Generate EXACTLY 6-10 recommendations (preferably 7-9)
2. Include multi-cloud alternatives (AWS, Azure, GCP)
3. Include open-source/free-tier alternatives where applicable
4. Focus on high-cost services first
5. Each recommendation must have all fields above
6. recommendation_type should be one of: open_source, free_tier, alternative_provider, optimization, right_sizing, cost-effective_storage
7. Make potential_savings realistic (typically 20-50%% of current_cost)
8. Include at least one open-source alternative recommendation
9. Each recommendation must have at least 3 steps in the steps array

Project Profile:
%s

Cost Analysis:
%s

Billing Data (sample):
%s

Return ONLY the JSON object with recommendations array, nothing else.`, profileJSON, analysisJSON, sampleJSON)
}
