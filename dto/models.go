package dto

// ParsingConfidence summarizes how much of the slip was read directly from
// the document text. Backfilled values never count as found.
type ParsingConfidence struct {
	OverallConfidence float64 `json:"overall_confidence"`
	FieldsFound       int     `json:"fields_found"`
	FieldsTotal       int     `json:"fields_total"`
}

// SalarySlipData is one parsed salary slip (or the equivalent entered
// manually). It is built once by the parser or the form path and never
// mutated afterwards.
type SalarySlipData struct {
	// Identity
	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeID   string `json:"employee_id,omitempty"`
	PAN          string `json:"pan,omitempty"`
	PayMonth     string `json:"pay_month,omitempty"`

	// Earnings
	BasicSalary         float64 `json:"basic_salary"`
	DearnessAllowance   float64 `json:"dearness_allowance"`
	HRA                 float64 `json:"hra"`
	ConveyanceAllowance float64 `json:"conveyance_allowance"`
	TransportAllowance  float64 `json:"transport_allowance"`
	SpecialAllowance    float64 `json:"special_allowance"`
	MedicalAllowance    float64 `json:"medical_allowance"`
	LTA                 float64 `json:"lta"`
	Bonus               float64 `json:"bonus"`
	OtherAllowances     float64 `json:"other_allowances"`

	GrossSalary float64 `json:"gross_salary"`

	// Deductions
	PFEmployee      float64 `json:"pf_employee"`
	PFEmployer      float64 `json:"pf_employer"`
	ProfessionalTax float64 `json:"professional_tax"`
	IncomeTax       float64 `json:"income_tax"`
	OtherDeductions float64 `json:"other_deductions"`

	NetSalary float64 `json:"net_salary"`

	// Metadata
	ParsingConfidence ParsingConfidence `json:"parsing_confidence"`
	MissingFields     []string          `json:"missing_fields"`
	AssumptionsMade   []string          `json:"assumptions_made"`
}

// UserTaxProfile carries the deduction claims and personal details supplied
// by the user for one calculation. Claimed amounts are unclamped here;
// statutory limits are applied inside the tax calculator.
type UserTaxProfile struct {
	Age             int    `json:"age,omitempty"`
	IsSeniorCitizen bool   `json:"is_senior_citizen"`
	RentPaid        float64 `json:"rent_paid"`
	CityType        string `json:"city_type,omitempty"` // "metro" or "non-metro"

	Section80C   float64 `json:"section_80c"`
	Section80D   float64 `json:"section_80d"`
	Section80G   float64 `json:"section_80g"`
	Section80TTA float64 `json:"section_80tta"`
	Section24B   float64 `json:"section_24b"`

	HasHomeLoan        bool `json:"has_home_loan"`
	HasHealthInsurance bool `json:"has_health_insurance"`
}

// RegimeResult is the full breakdown of one regime's computation. Section
// amounts are post-clamping, i.e. what was actually allowed.
type RegimeResult struct {
	GrossSalary       float64 `json:"gross_salary"`
	StandardDeduction float64 `json:"standard_deduction"`
	HRAExemption      float64 `json:"hra_exemption"`
	Section80C        float64 `json:"section_80c"`
	Section80D        float64 `json:"section_80d"`
	Section80G        float64 `json:"section_80g"`
	Section80TTA      float64 `json:"section_80tta"`
	Section24B        float64 `json:"section_24b"`
	TotalDeductions   float64 `json:"total_deductions"`
	TaxableIncome     float64 `json:"taxable_income"`
	TaxBeforeCess     float64 `json:"tax_before_cess"`
	Cess              float64 `json:"cess"`
	TotalTax          float64 `json:"total_tax"`
	EffectiveTaxRate  float64 `json:"effective_tax_rate"`
}

// TaxComparisonResult wraps both regime computations and the recommendation.
type TaxComparisonResult struct {
	OldRegime         RegimeResult `json:"old_regime"`
	NewRegime         RegimeResult `json:"new_regime"`
	RecommendedRegime string       `json:"recommended_regime"` // "old" or "new"
	SavingsAmount     float64      `json:"savings_amount"`
	SavingsPercentage float64      `json:"savings_percentage"`
	Assumptions       []string     `json:"assumptions"`
}

// TaxSuggestion is a single actionable tax-saving suggestion.
type TaxSuggestion struct {
	Section         string   `json:"section"`
	Title           string   `json:"title"`
	CurrentStatus   string   `json:"current_status"`
	PotentialSaving string   `json:"potential_saving"`
	ActionItems     []string `json:"action_items"`
	Priority        string   `json:"priority"` // high, medium, low
}

// AIInsights is the advisor's natural-language layer over a calculation.
// AIGenerated is false when the model was unavailable and the static
// fallback was used instead.
type AIInsights struct {
	AIGenerated       bool            `json:"ai_generated"`
	Summary           string          `json:"summary"`
	RegimeExplanation string          `json:"regime_explanation"`
	Suggestions       []TaxSuggestion `json:"suggestions"`
	AdditionalTips    []string        `json:"additional_tips"`
	Disclaimer        string          `json:"disclaimer"`
}
