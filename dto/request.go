package dto

// TaxCalculationRequest is the form/JSON payload for a tax calculation.
// Amounts are annual figures in rupees; the caller is expected to supply
// non-negative values.
type TaxCalculationRequest struct {
	// Salary components
	BasicSalary         float64 `form:"basic_salary" json:"basic_salary" binding:"required"`
	DearnessAllowance   float64 `form:"dearness_allowance" json:"dearness_allowance"`
	HRA                 float64 `form:"hra" json:"hra"`
	ConveyanceAllowance float64 `form:"conveyance_allowance" json:"conveyance_allowance"`
	TransportAllowance  float64 `form:"transport_allowance" json:"transport_allowance"`
	SpecialAllowance    float64 `form:"special_allowance" json:"special_allowance"`
	MedicalAllowance    float64 `form:"medical_allowance" json:"medical_allowance"`
	LTA                 float64 `form:"lta" json:"lta"`
	Bonus               float64 `form:"bonus" json:"bonus"`
	OtherAllowances     float64 `form:"other_allowances" json:"other_allowances"`
	GrossSalary         float64 `form:"gross_salary" json:"gross_salary" binding:"required"`
	PFEmployee          float64 `form:"pf_employee" json:"pf_employee"`
	ProfessionalTax     float64 `form:"professional_tax" json:"professional_tax"`
	IncomeTax           float64 `form:"income_tax" json:"income_tax"`
	OtherDeductions     float64 `form:"other_deductions" json:"other_deductions"`
	NetSalary           float64 `form:"net_salary" json:"net_salary"`

	// User profile
	Age          int     `form:"age" json:"age"`
	RentPaid     float64 `form:"rent_paid" json:"rent_paid"`
	CityType     string  `form:"city_type" json:"city_type"`
	Section80C   float64 `form:"section_80c" json:"section_80c"`
	Section80D   float64 `form:"section_80d" json:"section_80d"`
	Section80G   float64 `form:"section_80g" json:"section_80g"`
	Section80TTA float64 `form:"section_80tta" json:"section_80tta"`
	Section24B   float64 `form:"section_24b" json:"section_24b"`
}

// ToSalarySlipData builds the immutable slip record for the form input path,
// bypassing the parser.
func (r *TaxCalculationRequest) ToSalarySlipData() SalarySlipData {
	return SalarySlipData{
		BasicSalary:         r.BasicSalary,
		DearnessAllowance:   r.DearnessAllowance,
		HRA:                 r.HRA,
		ConveyanceAllowance: r.ConveyanceAllowance,
		TransportAllowance:  r.TransportAllowance,
		SpecialAllowance:    r.SpecialAllowance,
		MedicalAllowance:    r.MedicalAllowance,
		LTA:                 r.LTA,
		Bonus:               r.Bonus,
		OtherAllowances:     r.OtherAllowances,
		GrossSalary:         r.GrossSalary,
		PFEmployee:          r.PFEmployee,
		ProfessionalTax:     r.ProfessionalTax,
		IncomeTax:           r.IncomeTax,
		OtherDeductions:     r.OtherDeductions,
		NetSalary:           r.NetSalary,
	}
}

// ToUserTaxProfile builds the deduction profile. Senior-citizen status and
// the home-loan/health-insurance flags are derived, not asked separately.
func (r *TaxCalculationRequest) ToUserTaxProfile() UserTaxProfile {
	cityType := r.CityType
	if cityType == "" {
		cityType = "non-metro"
	}
	return UserTaxProfile{
		Age:                r.Age,
		IsSeniorCitizen:    r.Age >= 60,
		RentPaid:           r.RentPaid,
		CityType:           cityType,
		Section80C:         r.Section80C,
		Section80D:         r.Section80D,
		Section80G:         r.Section80G,
		Section80TTA:       r.Section80TTA,
		Section24B:         r.Section24B,
		HasHomeLoan:        r.Section24B > 0,
		HasHealthInsurance: r.Section80D > 0,
	}
}

// ChatRequest is one user turn in a post-analysis chat session.
type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}
