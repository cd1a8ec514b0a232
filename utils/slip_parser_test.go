package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aashish23092/tax-advisor/dto"
)

func TestParseSalarySlip(t *testing.T) {
	text := `
		ABC Corp Ltd.
		Employee Name: John Doe
		Emp ID: EMP042
		PAN: ABCDE1234F
		Pay Slip for October 2025
		Basic Salary: 50,000.00
		House Rent Allowance: 20,000.00
		Special Allowance: 10,000.00
		PF (Employee): 6000
		Income Tax: 3500
		Net Salary: 70300.00
		Professional Tax: 200
	`

	data, missing, err := ParseSalarySlip(text)

	assert.NoError(t, err)
	assert.Equal(t, "John Doe", data.EmployeeName)
	assert.Equal(t, "EMP042", data.EmployeeID)
	assert.Equal(t, "ABCDE1234F", data.PAN)
	assert.Equal(t, "October 2025", data.PayMonth)

	assert.Equal(t, 50000.00, data.BasicSalary)
	assert.Equal(t, 20000.00, data.HRA)
	assert.Equal(t, 10000.00, data.SpecialAllowance)
	assert.Equal(t, 6000.00, data.PFEmployee)
	assert.Equal(t, 3500.00, data.IncomeTax)
	assert.Equal(t, 70300.00, data.NetSalary)
	assert.Equal(t, 200.00, data.ProfessionalTax)

	// Gross was not printed on the slip; it is derived from the components.
	assert.Equal(t, 80000.00, data.GrossSalary)
	assert.Contains(t, data.AssumptionsMade, "Gross salary calculated from components")
	assert.NotContains(t, missing, "gross_salary")

	assert.Equal(t, []string{
		"dearness_allowance",
		"conveyance_allowance",
		"transport_allowance",
		"medical_allowance",
		"lta",
		"bonus",
		"pf_employer",
	}, missing)

	// 7 of 15 fields were read directly; the derived gross does not count.
	assert.Equal(t, 7, data.ParsingConfidence.FieldsFound)
	assert.Equal(t, 15, data.ParsingConfidence.FieldsTotal)
	assert.Equal(t, 46.67, data.ParsingConfidence.OverallConfidence)
}

func TestParseSalarySlipEmptyText(t *testing.T) {
	_, _, err := ParseSalarySlip("")
	assert.ErrorIs(t, err, dto.ErrNoTextContent)

	_, _, err = ParseSalarySlip("   \n\t  ")
	assert.ErrorIs(t, err, dto.ErrNoTextContent)
}

func TestParseSalarySlipIndianGrouping(t *testing.T) {
	text := `
		Basic Salary: Rs. 1,50,000.00
		Gross Salary: Rs. 2,25,000.00
		Net Salary: Rs. 2,00,000.00
	`

	data, _, err := ParseSalarySlip(text)

	assert.NoError(t, err)
	assert.Equal(t, 150000.00, data.BasicSalary)
	assert.Equal(t, 225000.00, data.GrossSalary)
	assert.Equal(t, 200000.00, data.NetSalary)
}

func TestParseSalarySlipProfessionalTaxShortNumber(t *testing.T) {
	// A longer number later on the line must not shadow the small
	// professional tax value.
	text := `
		Professional Tax: 200 Gross Salary: 825000
	`

	data, _, err := ParseSalarySlip(text)

	assert.NoError(t, err)
	assert.Equal(t, 200.00, data.ProfessionalTax)
	assert.Equal(t, 825000.00, data.GrossSalary)
}

func TestParseSalarySlipOutOfRangeDiscarded(t *testing.T) {
	text := `
		Bonus: 99999999
		Basic Salary: 40000
	`

	data, missing, err := ParseSalarySlip(text)

	assert.NoError(t, err)
	assert.Equal(t, 0.00, data.Bonus)
	assert.Contains(t, missing, "bonus")
	assert.Equal(t, 40000.00, data.BasicSalary)
}

func TestParseSalarySlipNetDerivedFromGross(t *testing.T) {
	text := `
		Basic Salary: 60000
		Gross Salary: 90000
		PF (Employee): 5000
		Income Tax: 2000
	`

	data, missing, err := ParseSalarySlip(text)

	assert.NoError(t, err)
	assert.Equal(t, 83000.00, data.NetSalary)
	assert.Contains(t, data.AssumptionsMade, "Net salary calculated from gross minus deductions")
	assert.NotContains(t, missing, "net_salary")
}

func TestParseSalarySlipAbbreviatedLabels(t *testing.T) {
	text := `
		Basic: 45000
		H.R.A. 18000
		D.A. 5000
		L.T.A. 8000
	`

	data, _, err := ParseSalarySlip(text)

	assert.NoError(t, err)
	assert.Equal(t, 45000.00, data.BasicSalary)
	assert.Equal(t, 18000.00, data.HRA)
	assert.Equal(t, 5000.00, data.DearnessAllowance)
	assert.Equal(t, 8000.00, data.LTA)
}
