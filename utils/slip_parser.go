package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Aashish23092/tax-advisor/config"
	"github.com/Aashish23092/tax-advisor/dto"
)

const (
	// amountWindow is how far past a label match we look for a value.
	amountWindow = 100
	// maxAmount is the sanity ceiling for any single slip component.
	maxAmount = 10000000
	// maxProfessionalTax bounds the short-number rule for professional tax,
	// which is otherwise shadowed by longer numbers on the same line.
	maxProfessionalTax = 5000
)

// fieldLabelPatterns maps each registry key to its ordered label matchers.
// More specific labels come first; the first label whose trailing window
// yields a valid amount wins for that field.
var fieldLabelPatterns = map[string][]*regexp.Regexp{
	"basic_salary": {
		regexp.MustCompile(`(?i)basic\s*salary`),
		regexp.MustCompile(`(?i)base\s*salary`),
		regexp.MustCompile(`(?i)\bbasic\b`),
	},
	"dearness_allowance": {
		regexp.MustCompile(`(?i)dearness\s*allowance`),
		regexp.MustCompile(`(?i)\bd\.?a\.?\b`),
	},
	"hra": {
		regexp.MustCompile(`(?i)house\s*rent\s*allowance`),
		regexp.MustCompile(`(?i)\bh\.?r\.?a\.?\b`),
		regexp.MustCompile(`(?i)rent\s*allowance`),
	},
	"conveyance_allowance": {
		regexp.MustCompile(`(?i)conveyance\s*allowance`),
		regexp.MustCompile(`(?i)conveyance`),
	},
	"transport_allowance": {
		regexp.MustCompile(`(?i)transport\s*allowance`),
		regexp.MustCompile(`(?i)\bt\.?a\.?\b`),
	},
	"special_allowance": {
		regexp.MustCompile(`(?i)special\s*allowance`),
		regexp.MustCompile(`(?i)\bs\.?a\.?\b`),
	},
	"medical_allowance": {
		regexp.MustCompile(`(?i)medical\s*allowance`),
		regexp.MustCompile(`(?i)medical`),
	},
	"lta": {
		regexp.MustCompile(`(?i)leave\s*travel\s*allowance`),
		regexp.MustCompile(`(?i)\bl\.?t\.?a\.?\b`),
	},
	"bonus": {
		regexp.MustCompile(`(?i)bonus`),
		regexp.MustCompile(`(?i)incentive`),
	},
	"gross_salary": {
		regexp.MustCompile(`(?i)gross\s*salary`),
		regexp.MustCompile(`(?i)\bgross\b`),
		regexp.MustCompile(`(?i)total\s*earnings`),
	},
	"pf_employee": {
		regexp.MustCompile(`(?i)pf\s*\(?\s*employee\s*\)?`),
		regexp.MustCompile(`(?i)employee\s*pf`),
		regexp.MustCompile(`(?i)\bepf\b`),
	},
	"pf_employer": {
		regexp.MustCompile(`(?i)pf\s*\(?\s*employer\s*\)?`),
		regexp.MustCompile(`(?i)employer\s*pf`),
	},
	"professional_tax": {
		regexp.MustCompile(`(?i)professional\s*tax`),
		regexp.MustCompile(`(?i)prof\s*tax`),
	},
	"income_tax": {
		regexp.MustCompile(`(?i)income\s*tax`),
		regexp.MustCompile(`(?i)\btds\b`),
		regexp.MustCompile(`(?i)tax\s*deducted`),
	},
	"net_salary": {
		regexp.MustCompile(`(?i)net\s*salary`),
		regexp.MustCompile(`(?i)net\s*pay`),
		regexp.MustCompile(`(?i)take\s*home`),
	},
}

// Amount shapes, most specific first. The comma rule requires at least one
// Indian digit group so it cannot match a plain unseparated number.
var (
	commaAmountRe = regexp.MustCompile(`:?\s*(\d{1,3}(?:,\d{2,3})+(?:\.\d{2})?)`)
	shortAmountRe = regexp.MustCompile(`:?\s*(\d{1,4}(?:\.\d{2})?)`)
	longAmountRe  = regexp.MustCompile(`:?\s*(\d{4,}(?:\.\d{2})?)`)
	anyAmountRe   = regexp.MustCompile(`:?\s*(\d+(?:\.\d{2})?)`)
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	junkCharRe   = regexp.MustCompile(`[^\w\s:.,()/-]`)
)

// ParseSalarySlip extracts a structured salary record from document text.
// A field that cannot be found is reported in the missing list, never as an
// error; only empty input fails.
func ParseSalarySlip(rawText string) (dto.SalarySlipData, []string, error) {
	if strings.TrimSpace(rawText) == "" {
		return dto.SalarySlipData{}, nil, dto.ErrNoTextContent
	}

	normalized := normalizeText(rawText)

	data := dto.SalarySlipData{
		EmployeeName: extractEmployeeName(rawText),
		EmployeeID:   extractEmployeeID(rawText),
		PAN:          extractPAN(rawText),
		PayMonth:     extractPayMonth(rawText),
	}

	missing := []string{}
	found := 0
	for _, field := range config.SalarySlipFields {
		amount, ok := extractAmount(normalized, field.Key)
		if ok {
			setFieldAmount(&data, field.Key, amount)
			found++
		} else {
			missing = append(missing, field.Key)
		}
	}

	assumptions, derived := deriveTotals(&data)

	// A backfilled field is no longer missing, but it still does not count
	// toward the directly-extracted total in the confidence score.
	missing = withoutKeys(missing, derived)

	total := len(config.SalarySlipFields)
	confidence := 0.0
	if total > 0 {
		confidence = round2(float64(found) / float64(total) * 100)
	}

	data.ParsingConfidence = dto.ParsingConfidence{
		OverallConfidence: confidence,
		FieldsFound:       found,
		FieldsTotal:       total,
	}
	data.MissingFields = missing
	data.AssumptionsMade = assumptions

	return data, missing, nil
}

// normalizeText collapses whitespace and strips characters that interfere
// with label matching (currency symbols, table borders).
func normalizeText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = junkCharRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// extractAmount finds the value for one registry field. Every label match
// opens a bounded window; the first window that yields an in-range amount
// resolves the field.
func extractAmount(text, fieldKey string) (float64, bool) {
	for _, label := range fieldLabelPatterns[fieldKey] {
		for _, loc := range label.FindAllStringIndex(text, -1) {
			end := loc[1] + amountWindow
			if end > len(text) {
				end = len(text)
			}
			if amount, ok := amountFromWindow(text[loc[1]:end], fieldKey); ok {
				return amount, true
			}
		}
	}
	return 0, false
}

func amountFromWindow(window, fieldKey string) (float64, bool) {
	if amount, ok := matchAmount(commaAmountRe, window, maxAmount); ok {
		return amount, true
	}

	// Professional tax is typically a few hundred rupees and would be
	// shadowed by a longer trailing number, so prefer short numbers for it.
	if fieldKey == "professional_tax" {
		if amount, ok := matchAmount(shortAmountRe, window, maxProfessionalTax); ok {
			return amount, true
		}
	}

	if amount, ok := matchAmount(longAmountRe, window, maxAmount); ok {
		return amount, true
	}

	// Last resort: any digit run. Skipped for professional tax, which the
	// short-number rule already covers.
	if fieldKey != "professional_tax" {
		if amount, ok := matchAmount(anyAmountRe, window, maxAmount); ok {
			return amount, true
		}
	}

	return 0, false
}

func matchAmount(re *regexp.Regexp, window string, max float64) (float64, bool) {
	m := re.FindStringSubmatch(window)
	if len(m) < 2 {
		return 0, false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil || amount < 0 || amount > max {
		return 0, false
	}
	return amount, true
}

func setFieldAmount(data *dto.SalarySlipData, key string, amount float64) {
	switch key {
	case "basic_salary":
		data.BasicSalary = amount
	case "dearness_allowance":
		data.DearnessAllowance = amount
	case "hra":
		data.HRA = amount
	case "conveyance_allowance":
		data.ConveyanceAllowance = amount
	case "transport_allowance":
		data.TransportAllowance = amount
	case "special_allowance":
		data.SpecialAllowance = amount
	case "medical_allowance":
		data.MedicalAllowance = amount
	case "lta":
		data.LTA = amount
	case "bonus":
		data.Bonus = amount
	case "gross_salary":
		data.GrossSalary = amount
	case "pf_employee":
		data.PFEmployee = amount
	case "pf_employer":
		data.PFEmployer = amount
	case "professional_tax":
		data.ProfessionalTax = amount
	case "income_tax":
		data.IncomeTax = amount
	case "net_salary":
		data.NetSalary = amount
	}
}

// deriveTotals backfills gross and net, in that order, exactly once. It
// returns the assumption strings and the keys that were derived.
func deriveTotals(data *dto.SalarySlipData) ([]string, []string) {
	assumptions := []string{}
	derived := []string{}

	if data.GrossSalary == 0 {
		gross := data.BasicSalary +
			data.DearnessAllowance +
			data.HRA +
			data.ConveyanceAllowance +
			data.TransportAllowance +
			data.SpecialAllowance +
			data.MedicalAllowance +
			data.LTA +
			data.Bonus +
			data.OtherAllowances
		if gross > 0 {
			data.GrossSalary = gross
			assumptions = append(assumptions, "Gross salary calculated from components")
			derived = append(derived, "gross_salary")
		}
	}

	if data.NetSalary == 0 && data.GrossSalary > 0 {
		net := data.GrossSalary -
			data.PFEmployee -
			data.ProfessionalTax -
			data.IncomeTax -
			data.OtherDeductions
		if net > 0 {
			data.NetSalary = net
			assumptions = append(assumptions, "Net salary calculated from gross minus deductions")
			derived = append(derived, "net_salary")
		}
	}

	return assumptions, derived
}

func withoutKeys(keys []string, drop []string) []string {
	if len(drop) == 0 {
		return keys
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		skip := false
		for _, d := range drop {
			if k == d {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, k)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
