package config

import "github.com/shopspring/decimal"

// TaxSlab is one income bracket taxed at a single marginal rate.
// The top slab of a regime uses slabMax as its open upper bound.
type TaxSlab struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal // fraction, e.g. 0.05 for 5%
}

// SectionLimits holds the statutory claim ceilings per deduction section.
// Section 80G has no modeled cap.
type SectionLimits struct {
	Section80C       decimal.Decimal
	Section80D       decimal.Decimal
	Section80DSenior decimal.Decimal
	Section80TTA     decimal.Decimal
	Section24B       decimal.Decimal
}

// TaxConfig is the full regime table for one financial year. It is built once
// at startup and never mutated; the calculator only reads it.
type TaxConfig struct {
	FinancialYear     string
	OldRegimeSlabs    []TaxSlab
	NewRegimeSlabs    []TaxSlab
	StandardDeduction decimal.Decimal
	CessRate          decimal.Decimal
	Limits            SectionLimits
	MetroHRARate      decimal.Decimal
	NonMetroHRARate   decimal.Decimal
}

var slabMax = decimal.NewFromInt(999999999999)

func slab(min, max int64, ratePct int64) TaxSlab {
	return TaxSlab{
		Min:  decimal.NewFromInt(min),
		Max:  decimal.NewFromInt(max),
		Rate: decimal.NewFromInt(ratePct).Div(decimal.NewFromInt(100)),
	}
}

func openSlab(min int64, ratePct int64) TaxSlab {
	return TaxSlab{
		Min:  decimal.NewFromInt(min),
		Max:  slabMax,
		Rate: decimal.NewFromInt(ratePct).Div(decimal.NewFromInt(100)),
	}
}

// NewTaxConfigFY2024_25 builds the FY 2024-25 regime table for salaried
// individuals.
func NewTaxConfigFY2024_25() *TaxConfig {
	return &TaxConfig{
		FinancialYear: "2024-25",
		OldRegimeSlabs: []TaxSlab{
			slab(0, 250000, 0),
			slab(250000, 500000, 5),
			slab(500000, 1000000, 20),
			openSlab(1000000, 30),
		},
		NewRegimeSlabs: []TaxSlab{
			slab(0, 300000, 0),
			slab(300000, 700000, 5),
			slab(700000, 1000000, 10),
			slab(1000000, 1200000, 15),
			slab(1200000, 1500000, 20),
			openSlab(1500000, 30),
		},
		StandardDeduction: decimal.NewFromInt(50000),
		CessRate:          decimal.NewFromFloat(0.04),
		Limits: SectionLimits{
			Section80C:       decimal.NewFromInt(150000),
			Section80D:       decimal.NewFromInt(25000),
			Section80DSenior: decimal.NewFromInt(50000),
			Section80TTA:     decimal.NewFromInt(10000),
			Section24B:       decimal.NewFromInt(200000),
		},
		MetroHRARate:    decimal.NewFromFloat(0.50),
		NonMetroHRARate: decimal.NewFromFloat(0.40),
	}
}
