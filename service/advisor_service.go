package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/Aashish23092/tax-advisor/client"
	"github.com/Aashish23092/tax-advisor/dto"
)

const advisorDisclaimer = "This is automated advice based on general rules. For complex tax situations, " +
	"investments, or specific queries, please consult a qualified Chartered Accountant."

// AIAdvisor turns a finished tax comparison into natural-language insights.
// The calculation result itself is never modified: when the model is absent
// or misbehaves, rule-based fallback insights are returned instead.
type AIAdvisor struct {
	gemini *client.GeminiClient
}

// NewAIAdvisor creates the advisor. A nil gemini client disables AI
// generation and makes every call use the fallback path.
func NewAIAdvisor(gemini *client.GeminiClient) *AIAdvisor {
	return &AIAdvisor{gemini: gemini}
}

// GenerateTaxSuggestions produces insights for a calculation.
func (a *AIAdvisor) GenerateTaxSuggestions(slip dto.SalarySlipData, profile dto.UserTaxProfile, result dto.TaxComparisonResult) dto.AIInsights {
	if a.gemini == nil {
		return a.fallbackInsights(slip, profile, result)
	}

	prompt := fmt.Sprintf(`%s

Here is the user's tax information:
%s

Analyze this information and provide personalized tax-saving suggestions. Focus on:
1. Unused deduction potential (especially 80C if not at max)
2. HRA optimization if applicable
3. Health insurance benefits (80D)
4. Any other relevant deductions based on their profile

Respond ONLY with valid JSON, no markdown formatting.`, advisorSystemPrompt, buildTaxContext(slip, profile, result))

	responseText, err := a.gemini.GenerateContent(prompt)
	if err != nil {
		log.Printf("AI suggestion generation failed, using fallback: %v", err)
		return a.fallbackInsights(slip, profile, result)
	}

	var insights dto.AIInsights
	if err := json.Unmarshal([]byte(stripCodeFences(responseText)), &insights); err != nil {
		log.Printf("Failed to parse AI suggestions, using fallback: %v", err)
		return a.fallbackInsights(slip, profile, result)
	}

	insights.AIGenerated = true
	if insights.Disclaimer == "" {
		insights.Disclaimer = advisorDisclaimer
	}
	return insights
}

const advisorSystemPrompt = `You are an expert Indian tax advisor assistant. Your role is to:
1. Analyze the user's tax profile and calculation results
2. Provide specific, actionable tax-saving suggestions
3. Explain tax concepts in simple, easy-to-understand language
4. Focus on legitimate tax-saving strategies under Indian Income Tax Act

IMPORTANT RULES:
- Only suggest legal tax-saving methods
- Be specific about section numbers and limits
- Use Indian Rupee amounts
- Keep explanations concise but informative
- If a deduction is not fully utilized, highlight it

FORMAT YOUR RESPONSE AS JSON with these exact keys:
{
    "summary": "A 2-3 sentence summary of the tax situation",
    "regime_explanation": "Why the recommended regime is better for this user",
    "suggestions": [
        {
            "section": "Section name (e.g., 80C, 80D)",
            "title": "Short title of the suggestion",
            "current_status": "What the user has currently",
            "potential_saving": "How much more they could save",
            "action_items": ["Specific action 1", "Specific action 2"],
            "priority": "high/medium/low"
        }
    ],
    "additional_tips": ["General tip 1", "General tip 2"],
    "disclaimer": "Standard disclaimer about consulting a CA for complex situations"
}`

// buildTaxContext renders the slip, profile and result into the prompt
// context shared by the advisor and the chat.
func buildTaxContext(slip dto.SalarySlipData, profile dto.UserTaxProfile, result dto.TaxComparisonResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "USER TAX PROFILE:\n")
	fmt.Fprintf(&b, "- Annual Gross Salary: Rs %.2f\n", slip.GrossSalary)
	fmt.Fprintf(&b, "- Basic Salary: Rs %.2f\n", slip.BasicSalary)
	fmt.Fprintf(&b, "- HRA Received: Rs %.2f\n", slip.HRA)
	if profile.Age > 0 {
		fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
	}
	if profile.CityType != "" {
		fmt.Fprintf(&b, "- City Type: %s\n", profile.CityType)
	}
	fmt.Fprintf(&b, "- Annual Rent Paid: Rs %.2f\n", profile.RentPaid)

	fmt.Fprintf(&b, "\nCURRENT DEDUCTIONS CLAIMED:\n")
	fmt.Fprintf(&b, "- Section 80C: Rs %.2f (max Rs 150,000)\n", profile.Section80C)
	fmt.Fprintf(&b, "- Section 80D: Rs %.2f (max Rs 25,000; Rs 50,000 for senior citizens)\n", profile.Section80D)
	fmt.Fprintf(&b, "- Section 80G: Rs %.2f\n", profile.Section80G)
	fmt.Fprintf(&b, "- Section 80TTA: Rs %.2f (max Rs 10,000)\n", profile.Section80TTA)
	fmt.Fprintf(&b, "- Section 24(b): Rs %.2f (max Rs 200,000)\n", profile.Section24B)

	fmt.Fprintf(&b, "\nTAX CALCULATION RESULTS:\nOLD REGIME:\n")
	fmt.Fprintf(&b, "- Total Deductions: Rs %.2f\n", result.OldRegime.TotalDeductions)
	fmt.Fprintf(&b, "- Taxable Income: Rs %.2f\n", result.OldRegime.TaxableIncome)
	fmt.Fprintf(&b, "- Total Tax Payable: Rs %.2f\n", result.OldRegime.TotalTax)
	fmt.Fprintf(&b, "- Effective Tax Rate: %.2f%%\n", result.OldRegime.EffectiveTaxRate)

	fmt.Fprintf(&b, "NEW REGIME:\n")
	fmt.Fprintf(&b, "- Total Deductions: Rs %.2f\n", result.NewRegime.TotalDeductions)
	fmt.Fprintf(&b, "- Taxable Income: Rs %.2f\n", result.NewRegime.TaxableIncome)
	fmt.Fprintf(&b, "- Total Tax Payable: Rs %.2f\n", result.NewRegime.TotalTax)
	fmt.Fprintf(&b, "- Effective Tax Rate: %.2f%%\n", result.NewRegime.EffectiveTaxRate)

	fmt.Fprintf(&b, "\nRECOMMENDATION: %s regime\n", strings.ToUpper(result.RecommendedRegime))
	fmt.Fprintf(&b, "POTENTIAL SAVINGS: Rs %.2f (%.2f%%)\n", result.SavingsAmount, result.SavingsPercentage)

	return b.String()
}

// stripCodeFences removes a surrounding markdown code block if the model
// wrapped its JSON despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	lines := strings.Split(s, "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], "```") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// fallbackInsights builds rule-based suggestions from the deduction gaps.
func (a *AIAdvisor) fallbackInsights(slip dto.SalarySlipData, profile dto.UserTaxProfile, result dto.TaxComparisonResult) dto.AIInsights {
	suggestions := []dto.TaxSuggestion{}

	if remaining := 150000 - profile.Section80C; remaining > 0 {
		priority := "medium"
		if remaining > 50000 {
			priority = "high"
		}
		suggestions = append(suggestions, dto.TaxSuggestion{
			Section:         "Section 80C",
			Title:           "Maximize 80C Deductions",
			CurrentStatus:   fmt.Sprintf("Currently claimed: Rs %.0f", profile.Section80C),
			PotentialSaving: fmt.Sprintf("You can invest Rs %.0f more (up to Rs 1,50,000 limit)", remaining),
			ActionItems: []string{
				"Invest in PPF (Public Provident Fund)",
				"Consider ELSS mutual funds for tax saving with growth potential",
				"Life insurance premiums also qualify under 80C",
			},
			Priority: priority,
		})
	}

	max80D := 25000.0
	if profile.IsSeniorCitizen {
		max80D = 50000.0
	}
	if remaining := max80D - profile.Section80D; remaining > 0 {
		priority := "medium"
		if profile.Section80D == 0 {
			priority = "high"
		}
		suggestions = append(suggestions, dto.TaxSuggestion{
			Section:         "Section 80D",
			Title:           "Health Insurance Benefits",
			CurrentStatus:   fmt.Sprintf("Currently claimed: Rs %.0f", profile.Section80D),
			PotentialSaving: fmt.Sprintf("You can claim Rs %.0f more", remaining),
			ActionItems: []string{
				"Get health insurance if you don't have one",
				"Adding parents to health coverage allows an additional deduction",
				"Preventive health check-up expenses (up to Rs 5,000) also qualify",
			},
			Priority: priority,
		})
	}

	if slip.HRA > 0 && profile.RentPaid <= 0 {
		suggestions = append(suggestions, dto.TaxSuggestion{
			Section:         "HRA Exemption",
			Title:           "Claim HRA Exemption",
			CurrentStatus:   "HRA not being claimed (no rent information provided)",
			PotentialSaving: "Significant tax savings possible if you pay rent",
			ActionItems: []string{
				"If you pay rent, collect rent receipts from your landlord",
				"Get the landlord's PAN if annual rent exceeds Rs 1,00,000",
				"Ensure a rent agreement is in place",
			},
			Priority: "high",
		})
	}

	if profile.Section24B == 0 {
		suggestions = append(suggestions, dto.TaxSuggestion{
			Section:         "Section 24(b)",
			Title:           "Home Loan Interest Deduction",
			CurrentStatus:   "No home loan interest claimed",
			PotentialSaving: "Up to Rs 2,00,000 deduction available for self-occupied property",
			ActionItems: []string{
				"If you have a home loan, claim the interest component",
				"Principal repayment qualifies under Section 80C",
			},
			Priority: "low",
		})
	}

	regimeExplanation := "The New Regime is better for you because your current deductions are limited. " +
		"It offers lower tax rates with a higher basic exemption, which wins when deductions are small."
	if result.RecommendedRegime == "old" {
		regimeExplanation = fmt.Sprintf(
			"The Old Regime is better for you because your deductions (Rs %.0f) are substantial. "+
				"With significant 80C investments, health insurance or HRA claims, the old regime "+
				"reduces your taxable income more than the new regime's lower rates save.",
			result.OldRegime.TotalDeductions)
	}

	return dto.AIInsights{
		AIGenerated: false,
		Summary: fmt.Sprintf("Based on your annual income of Rs %.0f, the %s regime saves you Rs %.0f in taxes.",
			slip.GrossSalary, strings.ToUpper(result.RecommendedRegime), result.SavingsAmount),
		RegimeExplanation: regimeExplanation,
		Suggestions:       suggestions,
		AdditionalTips: []string{
			"Consider NPS for an additional Rs 50,000 deduction under Section 80CCD(1B)",
			"Keep all investment proofs and receipts organized for verification",
			"Submit investment declarations to your employer before March for correct TDS",
		},
		Disclaimer: advisorDisclaimer,
	}
}
