package config

// SlipField is one recognized salary slip component: the internal key the
// parser reports and the label shown to users.
type SlipField struct {
	Key   string
	Label string
}

// SalarySlipFields is the fixed, ordered registry of components the parser
// attempts to extract. Missing-field reporting follows this order.
var SalarySlipFields = []SlipField{
	{Key: "basic_salary", Label: "Basic Salary"},
	{Key: "dearness_allowance", Label: "Dearness Allowance"},
	{Key: "hra", Label: "House Rent Allowance"},
	{Key: "conveyance_allowance", Label: "Conveyance Allowance"},
	{Key: "transport_allowance", Label: "Transport Allowance"},
	{Key: "special_allowance", Label: "Special Allowance"},
	{Key: "medical_allowance", Label: "Medical Allowance"},
	{Key: "lta", Label: "Leave Travel Allowance"},
	{Key: "bonus", Label: "Bonus"},
	{Key: "gross_salary", Label: "Gross Salary"},
	{Key: "pf_employee", Label: "PF (Employee Contribution)"},
	{Key: "pf_employer", Label: "PF (Employer Contribution)"},
	{Key: "professional_tax", Label: "Professional Tax"},
	{Key: "income_tax", Label: "Income Tax (TDS)"},
	{Key: "net_salary", Label: "Net Salary"},
}

// FieldLabel returns the display label for a field key, or the key itself
// when it is not in the registry.
func FieldLabel(key string) string {
	for _, f := range SalarySlipFields {
		if f.Key == key {
			return f.Label
		}
	}
	return key
}
