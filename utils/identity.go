package utils

import (
	"regexp"
	"strings"
)

var (
	panRe          = regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)
	nameAfterLabel = regexp.MustCompile(`(?i)name\s*:\s*([A-Za-z ]+)`)
	employeeIDRe   = regexp.MustCompile(`(?i)emp(?:loyee)?\.?\s*(?:id|code|no)\.?\s*:?\s*([A-Za-z]*\d[A-Za-z0-9/-]*)`)
	monthYearRe    = regexp.MustCompile(`(\d{1,2})[/-](\d{4})`)
	alphaWordRe    = regexp.MustCompile(`^[A-Za-z]+$`)
)

var payMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
	"Jan", "Feb", "Mar", "Apr", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// extractEmployeeName pulls the employee name from a "Name:" line, falling
// back to the preceding line when slips print the value above the label.
func extractEmployeeName(text string) string {
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "name") || !strings.Contains(line, ":") {
			continue
		}

		if m := nameAfterLabel.FindStringSubmatch(line); len(m) > 1 {
			candidate := cleanNameCandidate(strings.TrimSpace(m[1]))
			if isPlausibleName(candidate) {
				return candidate
			}
		}

		if i > 0 {
			candidate := cleanNameCandidate(strings.TrimSpace(lines[i-1]))
			if isPlausibleName(candidate) {
				return candidate
			}
		}
	}

	return ""
}

func cleanNameCandidate(s string) string {
	stopWords := map[string]bool{
		"salary": true, "slip": true, "pay": true, "account": true,
		"employee": true, "company": true, "department": true, "bank": true,
	}

	clean := []string{}
	for _, p := range strings.Fields(s) {
		if stopWords[strings.ToLower(p)] {
			break
		}
		clean = append(clean, p)
		if len(clean) == 2 { // First + Last
			break
		}
	}
	return strings.Join(clean, " ")
}

func isPlausibleName(s string) bool {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return false
	}
	for _, p := range parts {
		if !alphaWordRe.MatchString(p) {
			return false
		}
	}
	return true
}

func extractEmployeeID(text string) string {
	if m := employeeIDRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractPAN(text string) string {
	return panRe.FindString(strings.ToUpper(text))
}

// extractPayMonth finds the pay period as "Month YYYY", a bare month name,
// or MM/YYYY.
func extractPayMonth(text string) string {
	textLower := strings.ToLower(text)
	for _, month := range payMonths {
		if !strings.Contains(textLower, strings.ToLower(month)) {
			continue
		}
		yearRe := regexp.MustCompile(`(?i)` + month + `[\s\-,]*(\d{4})`)
		if m := yearRe.FindStringSubmatch(text); len(m) > 1 {
			return month + " " + m[1]
		}
		return month
	}

	if m := monthYearRe.FindStringSubmatch(text); len(m) > 2 {
		return m[1] + "/" + m[2]
	}

	return ""
}
