package service

import (
	"github.com/shopspring/decimal"

	"github.com/Aashish23092/tax-advisor/config"
	"github.com/Aashish23092/tax-advisor/dto"
)

// TaxCalculator computes FY tax liability under both regimes. It is a pure
// function of its inputs and the regime table it was constructed with; it
// never mutates the slip or profile and never fails.
type TaxCalculator struct {
	cfg *config.TaxConfig
}

func NewTaxCalculator(cfg *config.TaxConfig) *TaxCalculator {
	return &TaxCalculator{cfg: cfg}
}

// Calculate runs both regimes and recommends the cheaper one. Ties go to the
// new regime, the statutory default.
func (tc *TaxCalculator) Calculate(slip dto.SalarySlipData, profile dto.UserTaxProfile) dto.TaxComparisonResult {
	oldResult, oldTax := tc.calculateOldRegime(slip, profile)
	newResult, newTax := tc.calculateNewRegime(slip)

	recommended := "new"
	if oldTax.LessThan(newTax) {
		recommended = "old"
	}

	savings := oldTax.Sub(newTax).Abs()
	higher := decimal.Max(oldTax, newTax)
	savingsPct := decimal.Zero
	if higher.GreaterThan(decimal.Zero) {
		savingsPct = savings.Div(higher).Mul(hundred)
	}

	assumptions := []string{}
	if profile.RentPaid <= 0 && slip.HRA > 0 {
		assumptions = append(assumptions, "HRA exemption not calculated (rent paid not provided)")
	}
	if profile.Section80C == 0 {
		assumptions = append(assumptions, "No Section 80C investments declared")
	}

	return dto.TaxComparisonResult{
		OldRegime:         oldResult,
		NewRegime:         newResult,
		RecommendedRegime: recommended,
		SavingsAmount:     toMoney(savings),
		SavingsPercentage: toMoney(savingsPct),
		Assumptions:       assumptions,
	}
}

var (
	hundred    = decimal.NewFromInt(100)
	tenPercent = decimal.NewFromFloat(0.10)
)

// hraExemption is the old-regime HRA exemption: the least of HRA received,
// rent paid minus 10% of basic, and the city-rate share of basic, floored
// at zero. No declared rent means no exemption.
func (tc *TaxCalculator) hraExemption(hraReceived, basicSalary, rentPaid decimal.Decimal, cityType string) decimal.Decimal {
	if rentPaid.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	cityRate := tc.cfg.NonMetroHRARate
	if cityType == "metro" {
		cityRate = tc.cfg.MetroHRARate
	}

	exemption := decimal.Min(
		hraReceived,
		rentPaid.Sub(basicSalary.Mul(tenPercent)),
		basicSalary.Mul(cityRate),
	)
	if exemption.IsNegative() {
		return decimal.Zero
	}
	return exemption
}

// slabTax walks an ascending bracket table, taxing each marginal slice at
// its own rate until the income is consumed.
func slabTax(taxableIncome decimal.Decimal, slabs []config.TaxSlab) decimal.Decimal {
	tax := decimal.Zero
	remaining := taxableIncome

	for _, slab := range slabs {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		if taxableIncome.GreaterThan(slab.Min) {
			slabIncome := decimal.Min(remaining, slab.Max.Sub(slab.Min))
			if slabIncome.GreaterThan(decimal.Zero) {
				tax = tax.Add(slabIncome.Mul(slab.Rate))
				remaining = remaining.Sub(slabIncome)
			}
		}
	}

	return tax
}

func (tc *TaxCalculator) calculateOldRegime(slip dto.SalarySlipData, profile dto.UserTaxProfile) (dto.RegimeResult, decimal.Decimal) {
	gross := decimal.NewFromFloat(slip.GrossSalary)
	standardDeduction := tc.cfg.StandardDeduction

	hraExemption := decimal.Zero
	if slip.HRA > 0 && profile.RentPaid > 0 {
		hraExemption = tc.hraExemption(
			decimal.NewFromFloat(slip.HRA),
			decimal.NewFromFloat(slip.BasicSalary),
			decimal.NewFromFloat(profile.RentPaid),
			profile.CityType,
		)
	}

	limit80D := tc.cfg.Limits.Section80D
	if profile.IsSeniorCitizen {
		limit80D = tc.cfg.Limits.Section80DSenior
	}

	section80C := decimal.Min(decimal.NewFromFloat(profile.Section80C), tc.cfg.Limits.Section80C)
	section80D := decimal.Min(decimal.NewFromFloat(profile.Section80D), limit80D)
	section80G := decimal.NewFromFloat(profile.Section80G)
	section80TTA := decimal.Min(decimal.NewFromFloat(profile.Section80TTA), tc.cfg.Limits.Section80TTA)
	section24B := decimal.Min(decimal.NewFromFloat(profile.Section24B), tc.cfg.Limits.Section24B)

	totalDeductions := standardDeduction.
		Add(hraExemption).
		Add(section80C).
		Add(section80D).
		Add(section80G).
		Add(section80TTA).
		Add(section24B)

	taxableIncome := decimal.Max(decimal.Zero, gross.Sub(totalDeductions))
	taxBeforeCess := slabTax(taxableIncome, tc.cfg.OldRegimeSlabs)
	cess := taxBeforeCess.Mul(tc.cfg.CessRate)
	totalTax := taxBeforeCess.Add(cess)

	return dto.RegimeResult{
		GrossSalary:       toMoney(gross),
		StandardDeduction: toMoney(standardDeduction),
		HRAExemption:      toMoney(hraExemption),
		Section80C:        toMoney(section80C),
		Section80D:        toMoney(section80D),
		Section80G:        toMoney(section80G),
		Section80TTA:      toMoney(section80TTA),
		Section24B:        toMoney(section24B),
		TotalDeductions:   toMoney(totalDeductions),
		TaxableIncome:     toMoney(taxableIncome),
		TaxBeforeCess:     toMoney(taxBeforeCess),
		Cess:              toMoney(cess),
		TotalTax:          toMoney(totalTax),
		EffectiveTaxRate:  effectiveRate(totalTax, gross),
	}, totalTax
}

// calculateNewRegime recognizes only the standard deduction; HRA and the
// section claims do not apply.
func (tc *TaxCalculator) calculateNewRegime(slip dto.SalarySlipData) (dto.RegimeResult, decimal.Decimal) {
	gross := decimal.NewFromFloat(slip.GrossSalary)
	standardDeduction := tc.cfg.StandardDeduction

	taxableIncome := decimal.Max(decimal.Zero, gross.Sub(standardDeduction))
	taxBeforeCess := slabTax(taxableIncome, tc.cfg.NewRegimeSlabs)
	cess := taxBeforeCess.Mul(tc.cfg.CessRate)
	totalTax := taxBeforeCess.Add(cess)

	return dto.RegimeResult{
		GrossSalary:       toMoney(gross),
		StandardDeduction: toMoney(standardDeduction),
		TotalDeductions:   toMoney(standardDeduction),
		TaxableIncome:     toMoney(taxableIncome),
		TaxBeforeCess:     toMoney(taxBeforeCess),
		Cess:              toMoney(cess),
		TotalTax:          toMoney(totalTax),
		EffectiveTaxRate:  effectiveRate(totalTax, gross),
	}, totalTax
}

func effectiveRate(totalTax, gross decimal.Decimal) float64 {
	if gross.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return toMoney(totalTax.Div(gross).Mul(hundred))
}

func toMoney(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
