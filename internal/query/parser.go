package query

import (
	"regexp"
	"strings"

	"github.com/mkaneda/talentboard/internal/types"
)

// minLocationLen rejects short location candidates so fragments like
// "in it" don't become locations.
const minLocationLen = 3

// ParsedQuery is the structured filter set extracted from a raw search
// string. Created once per request and discarded after the storage lookup.
type ParsedQuery struct {
	CleanedQuery    string
	Location        *string
	LocationType    *types.LocationType
	EmploymentType  *types.EmploymentType
	ExperienceLevel *types.ExperienceLevel
	SalaryMin       *int
	SalaryMax       *int
}

// Parse extracts structured filters from a raw search string. It is pure and
// total: any input, including the empty string, yields a valid result. Each
// pipeline stage removes its matched text from the working string before the
// next stage runs, so no span is claimed twice.
func Parse(raw string) ParsedQuery {
	var q ParsedQuery
	working := strings.TrimSpace(raw)
	if working == "" {
		return q
	}

	working = extractLocationType(working, &q)
	working = extractEmploymentType(working, &q)
	working = extractExperienceLevel(working, &q)
	working = extractLocation(working, &q)
	working = extractSalary(working, &q)

	q.CleanedQuery = cleanup(working)
	return q
}

// Overrides are caller-supplied explicit filters. They always take precedence
// over parser-extracted values; the parser only fills gaps.
type Overrides struct {
	Location        string
	LocationType    types.LocationType
	EmploymentType  types.EmploymentType
	ExperienceLevel types.ExperienceLevel
	SalaryMin       *int
	SalaryMax       *int
}

// Merge returns a copy of q with explicit overrides applied on top of the
// parsed values.
func (q ParsedQuery) Merge(o Overrides) ParsedQuery {
	merged := q
	if o.Location != "" {
		loc := o.Location
		merged.Location = &loc
	}
	if o.LocationType != "" {
		lt := o.LocationType
		merged.LocationType = &lt
	}
	if o.EmploymentType != "" {
		et := o.EmploymentType
		merged.EmploymentType = &et
	}
	if o.ExperienceLevel != "" {
		el := o.ExperienceLevel
		merged.ExperienceLevel = &el
	}
	if o.SalaryMin != nil {
		merged.SalaryMin = o.SalaryMin
	}
	if o.SalaryMax != nil {
		merged.SalaryMax = o.SalaryMax
	}
	return merged
}

func extractLocationType(working string, q *ParsedQuery) string {
	for _, tier := range locationTypeTiers {
		if loc := tier.re.FindStringIndex(working); loc != nil {
			value := tier.value
			q.LocationType = &value
			return removeSpan(working, loc)
		}
	}
	return working
}

func extractEmploymentType(working string, q *ParsedQuery) string {
	for _, tier := range employmentTypeTiers {
		if loc := tier.re.FindStringIndex(working); loc != nil {
			value := tier.value
			q.EmploymentType = &value
			return removeSpan(working, loc)
		}
	}
	return working
}

func extractExperienceLevel(working string, q *ParsedQuery) string {
	for _, tier := range experienceLevelTiers {
		if loc := tier.re.FindStringIndex(working); loc != nil {
			value := tier.value
			q.ExperienceLevel = &value
			return removeSpan(working, loc)
		}
	}
	return working
}

// extractLocation looks for a preposition followed by 1-3 words that look
// like a place name. The capitalized attempt takes precedence; candidates
// shorter than minLocationLen or starting with a salary comparison word are
// rejected in either pass.
func extractLocation(working string, q *ParsedQuery) string {
	for _, re := range []*regexp.Regexp{locationCapRe, locationAnyRe} {
		for _, m := range re.FindAllStringSubmatchIndex(working, -1) {
			candidate := strings.TrimSpace(working[m[2]:m[3]])
			if len(candidate) < minLocationLen {
				continue
			}
			first := strings.ToLower(strings.Fields(candidate)[0])
			if _, stop := locationStopwords[first]; stop {
				continue
			}
			q.Location = &candidate
			return removeSpan(working, []int{m[0], m[1]})
		}
	}
	return working
}

func removeSpan(s string, span []int) string {
	return s[:span[0]] + " " + s[span[1]:]
}

func cleanup(working string) string {
	working = fillerRe.ReplaceAllString(working, " ")
	fields := strings.FieldsFunc(working, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})
	return strings.Join(fields, " ")
}
