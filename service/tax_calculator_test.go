package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Aashish23092/tax-advisor/config"
	"github.com/Aashish23092/tax-advisor/dto"
)

func newTestCalculator() *TaxCalculator {
	return NewTaxCalculator(config.NewTaxConfigFY2024_25())
}

func TestSlabTaxZeroIncome(t *testing.T) {
	cfg := config.NewTaxConfigFY2024_25()

	assert.True(t, slabTax(decimal.Zero, cfg.OldRegimeSlabs).IsZero())
	assert.True(t, slabTax(decimal.Zero, cfg.NewRegimeSlabs).IsZero())
}

func TestSlabTaxOldRegimeBracketEdge(t *testing.T) {
	cfg := config.NewTaxConfigFY2024_25()

	// 10L sits exactly on the top bracket edge:
	// 2.5L at 0% + 2.5L at 5% + 5L at 20% = 112,500.
	tax := slabTax(decimal.NewFromInt(1000000), cfg.OldRegimeSlabs)
	assert.True(t, tax.Equal(decimal.NewFromInt(112500)), "got %s", tax)
}

func TestSlabTaxMonotonic(t *testing.T) {
	cfg := config.NewTaxConfigFY2024_25()

	incomes := []int64{0, 100000, 250000, 300000, 500000, 700000, 999999, 1000000, 1000001, 2500000}
	prev := decimal.NewFromInt(-1)
	for _, income := range incomes {
		tax := slabTax(decimal.NewFromInt(income), cfg.NewRegimeSlabs)
		assert.True(t, tax.GreaterThanOrEqual(prev), "tax decreased at income %d", income)
		prev = tax
	}
}

func TestCalculateOldRegimeTotals(t *testing.T) {
	calc := newTestCalculator()

	// Gross 10.5L with only the standard deduction leaves taxable income
	// exactly 10L under the old regime: 112,500 before cess, 117,000 total.
	slip := dto.SalarySlipData{GrossSalary: 1050000}
	result := calc.Calculate(slip, dto.UserTaxProfile{})

	assert.Equal(t, 50000.00, result.OldRegime.StandardDeduction)
	assert.Equal(t, 1000000.00, result.OldRegime.TaxableIncome)
	assert.Equal(t, 112500.00, result.OldRegime.TaxBeforeCess)
	assert.Equal(t, 4500.00, result.OldRegime.Cess)
	assert.Equal(t, 117000.00, result.OldRegime.TotalTax)
	assert.Equal(t, 11.14, result.OldRegime.EffectiveTaxRate)
}

func TestCalculateNewRegimeTotals(t *testing.T) {
	calc := newTestCalculator()

	slip := dto.SalarySlipData{GrossSalary: 800000}
	result := calc.Calculate(slip, dto.UserTaxProfile{})

	assert.Equal(t, 750000.00, result.NewRegime.TaxableIncome)
	assert.Equal(t, 25000.00, result.NewRegime.TaxBeforeCess)
	assert.Equal(t, 26000.00, result.NewRegime.TotalTax)
	assert.Equal(t, 50000.00, result.NewRegime.TotalDeductions)
}

func TestCalculateSection80CClamped(t *testing.T) {
	calc := newTestCalculator()

	slip := dto.SalarySlipData{GrossSalary: 1200000}
	profile := dto.UserTaxProfile{Section80C: 200000}
	result := calc.Calculate(slip, profile)

	assert.Equal(t, 150000.00, result.OldRegime.Section80C)
	assert.Equal(t, 200000.00, result.OldRegime.TotalDeductions) // standard + clamped 80C

	// The new regime ignores section claims entirely.
	assert.Equal(t, 50000.00, result.NewRegime.TotalDeductions)
	assert.Equal(t, 0.00, result.NewRegime.Section80C)
}

func TestCalculateSection80DSeniorLimit(t *testing.T) {
	calc := newTestCalculator()
	slip := dto.SalarySlipData{GrossSalary: 900000}

	regular := calc.Calculate(slip, dto.UserTaxProfile{Age: 45, Section80D: 60000})
	senior := calc.Calculate(slip, dto.UserTaxProfile{Age: 65, IsSeniorCitizen: true, Section80D: 60000})

	assert.Equal(t, 25000.00, regular.OldRegime.Section80D)
	assert.Equal(t, 50000.00, senior.OldRegime.Section80D)
}

func TestHRAExemption(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name     string
		hra      float64
		basic    float64
		rent     float64
		cityType string
		expected int64
	}{
		{
			name:     "no rent declared",
			hra:      120000,
			basic:    500000,
			rent:     0,
			cityType: "metro",
			expected: 0,
		},
		{
			name:     "rent below 10% of basic floors at zero",
			hra:      120000,
			basic:    500000,
			rent:     40000,
			cityType: "metro",
			expected: 0,
		},
		{
			name:     "rent minus 10% of basic binds",
			hra:      120000,
			basic:    500000,
			rent:     60000,
			cityType: "metro",
			expected: 10000,
		},
		{
			name:     "actual HRA binds",
			hra:      120000,
			basic:    500000,
			rent:     200000,
			cityType: "metro",
			expected: 120000,
		},
		{
			name:     "non-metro city cap binds",
			hra:      300000,
			basic:    500000,
			rent:     400000,
			cityType: "non-metro",
			expected: 200000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exemption := calc.hraExemption(
				decimal.NewFromFloat(tt.hra),
				decimal.NewFromFloat(tt.basic),
				decimal.NewFromFloat(tt.rent),
				tt.cityType,
			)
			assert.True(t, exemption.Equal(decimal.NewFromInt(tt.expected)),
				"expected %d, got %s", tt.expected, exemption)
		})
	}
}

func TestHRAExemptionMonotonicInRent(t *testing.T) {
	calc := newTestCalculator()
	hra := decimal.NewFromInt(300000)
	basic := decimal.NewFromInt(400000)

	prev := decimal.NewFromInt(-1)
	for rent := int64(0); rent <= 500000; rent += 25000 {
		exemption := calc.hraExemption(hra, basic, decimal.NewFromInt(rent), "metro")
		assert.True(t, exemption.GreaterThanOrEqual(prev), "exemption decreased at rent %d", rent)
		assert.True(t, exemption.GreaterThanOrEqual(decimal.Zero))
		assert.True(t, exemption.LessThanOrEqual(decimal.NewFromInt(200000))) // 50% of basic
		prev = exemption
	}
}

func TestCalculateRecommendationAndSavings(t *testing.T) {
	calc := newTestCalculator()

	// Heavy deductions make the old regime cheaper.
	slip := dto.SalarySlipData{GrossSalary: 1500000, BasicSalary: 600000, HRA: 240000}
	profile := dto.UserTaxProfile{
		RentPaid:   300000,
		CityType:   "metro",
		Section80C: 150000,
		Section80D: 25000,
		Section24B: 200000,
	}
	result := calc.Calculate(slip, profile)

	assert.Equal(t, "old", result.RecommendedRegime)
	assert.True(t, result.OldRegime.TotalTax < result.NewRegime.TotalTax)
	assert.InDelta(t, result.NewRegime.TotalTax-result.OldRegime.TotalTax, result.SavingsAmount, 0.01)
	assert.Greater(t, result.SavingsPercentage, 0.00)

	// No deductions at all: the new regime wins.
	bare := calc.Calculate(dto.SalarySlipData{GrossSalary: 1500000}, dto.UserTaxProfile{})
	assert.Equal(t, "new", bare.RecommendedRegime)
}

func TestCalculateTieGoesToNewRegime(t *testing.T) {
	calc := newTestCalculator()

	// Zero gross produces zero tax under both regimes.
	result := calc.Calculate(dto.SalarySlipData{}, dto.UserTaxProfile{})

	assert.Equal(t, "new", result.RecommendedRegime)
	assert.Equal(t, 0.00, result.SavingsAmount)
	assert.Equal(t, 0.00, result.SavingsPercentage)
	assert.Equal(t, 0.00, result.OldRegime.EffectiveTaxRate)
	assert.Equal(t, 0.00, result.NewRegime.EffectiveTaxRate)
}

func TestCalculateAssumptions(t *testing.T) {
	calc := newTestCalculator()

	slip := dto.SalarySlipData{GrossSalary: 800000, HRA: 100000}
	result := calc.Calculate(slip, dto.UserTaxProfile{})

	assert.Contains(t, result.Assumptions, "HRA exemption not calculated (rent paid not provided)")
	assert.Contains(t, result.Assumptions, "No Section 80C investments declared")

	withRent := calc.Calculate(slip, dto.UserTaxProfile{RentPaid: 120000, Section80C: 50000})
	assert.Empty(t, withRent.Assumptions)
}

func TestCalculateIsDeterministic(t *testing.T) {
	calc := newTestCalculator()

	slip := dto.SalarySlipData{GrossSalary: 1234567, BasicSalary: 500000, HRA: 150000}
	profile := dto.UserTaxProfile{RentPaid: 180000, CityType: "metro", Section80C: 100000}

	first := calc.Calculate(slip, profile)
	second := calc.Calculate(slip, profile)

	assert.Equal(t, first, second)
}

func TestCalculateDoesNotMutateInputs(t *testing.T) {
	calc := newTestCalculator()

	slip := dto.SalarySlipData{GrossSalary: 800000, HRA: 100000}
	profile := dto.UserTaxProfile{Section80C: 200000}
	slipCopy := slip
	profileCopy := profile

	calc.Calculate(slip, profile)

	assert.Equal(t, slipCopy, slip)
	assert.Equal(t, profileCopy, profile)
}
