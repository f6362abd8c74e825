package query

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// salaryToken matches a numeric salary figure with optional currency symbol
// and magnitude suffix ("50k", "5lpa", "$45,000").
const salaryToken = `[$₹£€]?\s*\d[\d,]*(?:\.\d+)?\s*(?:lpa|l|k)?`

// bareMinimum is the smallest standalone number treated as a salary figure.
const bareMinimum = 10000

var (
	salaryMinRe     = regexp.MustCompile(`(?i)\b(?:greater than|more than|at least|atleast|upwards of|above|over|minimum|min)\s*(` + salaryToken + `)`)
	salaryPlusRe    = regexp.MustCompile(`(?i)(` + salaryToken + `)\s*\+`)
	salaryMaxRe     = regexp.MustCompile(`(?i)\b(?:less than|below|maximum|max|under|up to|upto)\s*(` + salaryToken + `)`)
	salaryBetweenRe = regexp.MustCompile(`(?i)\bbetween\s*(` + salaryToken + `)\s*(?:and|&)\s*(` + salaryToken + `)`)
	salaryRangeRe   = regexp.MustCompile(`(?i)(` + salaryToken + `)\s*(?:-|–|to)\s*(` + salaryToken + `)`)
	salaryExactRe   = regexp.MustCompile(`(?i)\bsalary\s*(?:of|:)?\s*(` + salaryToken + `)`)
	salaryBareRe    = regexp.MustCompile(salaryToken)
)

// extractSalary tries the salary patterns in fixed order: explicit minimum
// and maximum comparisons, a between-X-and-Y phrase, an X-Y or X-to-Y range,
// a "salary X" exact figure (treated as a minimum), and finally any bare
// number worth at least 10,000.
func extractSalary(working string, q *ParsedQuery) string {
	matched := false

	if m := salaryMinRe.FindStringSubmatchIndex(working); m != nil {
		if v, ok := parseSalaryFigure(working[m[2]:m[3]]); ok {
			q.SalaryMin = &v
			working = removeSpan(working, []int{m[0], m[1]})
			matched = true
		}
	} else if m := salaryPlusRe.FindStringSubmatchIndex(working); m != nil {
		if v, ok := parseSalaryFigure(working[m[2]:m[3]]); ok {
			q.SalaryMin = &v
			working = removeSpan(working, []int{m[0], m[1]})
			matched = true
		}
	}

	if m := salaryMaxRe.FindStringSubmatchIndex(working); m != nil {
		if v, ok := parseSalaryFigure(working[m[2]:m[3]]); ok {
			q.SalaryMax = &v
			working = removeSpan(working, []int{m[0], m[1]})
			matched = true
		}
	}

	if matched {
		return working
	}

	if m := salaryBetweenRe.FindStringSubmatchIndex(working); m != nil {
		lo, okLo := parseSalaryFigure(working[m[2]:m[3]])
		hi, okHi := parseSalaryFigure(working[m[4]:m[5]])
		if okLo && okHi {
			q.SalaryMin = &lo
			q.SalaryMax = &hi
			return removeSpan(working, []int{m[0], m[1]})
		}
	}

	if m := salaryRangeRe.FindStringSubmatchIndex(working); m != nil {
		lo, okLo := parseSalaryFigure(working[m[2]:m[3]])
		hi, okHi := parseSalaryFigure(working[m[4]:m[5]])
		if okLo && okHi {
			q.SalaryMin = &lo
			q.SalaryMax = &hi
			return removeSpan(working, []int{m[0], m[1]})
		}
	}

	if m := salaryExactRe.FindStringSubmatchIndex(working); m != nil {
		if v, ok := parseSalaryFigure(working[m[2]:m[3]]); ok {
			q.SalaryMin = &v
			return removeSpan(working, []int{m[0], m[1]})
		}
	}

	// Last resort: any remaining figure of at least 10,000 is a minimum.
	for _, m := range salaryBareRe.FindAllStringIndex(working, -1) {
		if v, ok := parseSalaryFigure(working[m[0]:m[1]]); ok && v >= bareMinimum {
			q.SalaryMin = &v
			return removeSpan(working, m)
		}
	}

	return working
}

// parseSalaryFigure normalizes one salary token to an integer amount.
// Currency symbols and thousands separators are stripped; a trailing "k"
// multiplies by 1,000 and "lpa" or "l" (lakh) by 100,000.
func parseSalaryFigure(token string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(token))
	s = strings.NewReplacer("$", "", "₹", "", "£", "", "€", "", ",", "", " ", "").Replace(s)

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "lpa"):
		multiplier = 100000
		s = strings.TrimSuffix(s, "lpa")
	case strings.HasSuffix(s, "l"):
		multiplier = 100000
		s = strings.TrimSuffix(s, "l")
	case strings.HasSuffix(s, "k"):
		multiplier = 1000
		s = strings.TrimSuffix(s, "k")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(n * multiplier)), true
}
