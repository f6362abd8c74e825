// Package query turns a free-text search string into a structured filter set
// plus a residual cleaned query.
package query

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mkaneda/talentboard/internal/types"
)

// locationTypeTier binds one compiled phrase set to a location type. Tiers
// are evaluated in slice order; the first hit wins and later tiers are
// skipped, so REMOTE claims "remote" before HYBRID or ONSITE can.
type locationTypeTier struct {
	value types.LocationType
	re    *regexp.Regexp
}

type employmentTypeTier struct {
	value types.EmploymentType
	re    *regexp.Regexp
}

type experienceLevelTier struct {
	value types.ExperienceLevel
	re    *regexp.Regexp
}

var locationTypeTiers = []locationTypeTier{
	{types.LocationRemote, compilePhrases("work from home", "working remotely", "telecommute", "remotely", "remote", "wfh")},
	{types.LocationHybrid, compilePhrases("hybrid")},
	{types.LocationOnsite, compilePhrases("on-site", "on site", "onsite", "in-office", "in office")},
}

var employmentTypeTiers = []employmentTypeTier{
	{types.EmploymentFullTime, compilePhrases("full-time", "full time", "fulltime", "permanent")},
	{types.EmploymentPartTime, compilePhrases("part-time", "part time", "parttime")},
	{types.EmploymentContract, compilePhrases("contractor", "contracting", "contract")},
	{types.EmploymentInternship, compilePhrases("internship", "intern", "trainee")},
	{types.EmploymentFreelance, compilePhrases("freelancer", "freelancing", "freelance", "gig")},
}

var experienceLevelTiers = []experienceLevelTier{
	{types.LevelSenior, compilePhrases("senior", "principal", "staff", "lead", "expert", "experienced", "sr")},
	{types.LevelMid, compilePhrases("mid-level", "mid level", "midlevel", "intermediate", "mid")},
	{types.LevelEntry, compilePhrases("entry-level", "entry level", "entry", "junior", "graduate", "fresher", "beginner", "jr")},
}

// Location candidates are a preposition followed by one to three words.
// The capitalized pattern runs first so "in Austin" beats the looser
// lower-case fallback.
var (
	locationCapRe = regexp.MustCompile(`\b(?i:based in|located in|near|from|in|at)\s+([A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*){0,2})`)
	locationAnyRe = regexp.MustCompile(`(?i)\b(?:based in|located in|near|from|in|at)\s+([a-zA-Z]+(?:\s+[a-zA-Z]+){0,2})`)
)

// locationStopwords are words that follow a preposition in salary comparison
// phrases ("at least 50k", "in excess of"); a candidate starting with one is
// not a place name.
var locationStopwords = map[string]struct{}{
	"least":   {},
	"most":    {},
	"excess":  {},
	"minimum": {},
	"maximum": {},
	"min":     {},
	"max":     {},
	"above":   {},
	"below":   {},
	"under":   {},
	"over":    {},
	"upto":    {},
}

// fillerRe strips generic filler words from the residual query.
var fillerRe = regexp.MustCompile(`(?i)\b(?:jobs|job|positions|position|roles|role|with|salary)\b`)

// compilePhrases builds a case-insensitive word-bounded matcher for a phrase
// set. Alternatives are ordered longest-first so "internship" is consumed
// before "intern" gets a chance to claim its prefix.
func compilePhrases(phrases ...string) *regexp.Regexp {
	ordered := make([]string, len(phrases))
	copy(ordered, phrases)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})
	escaped := make([]string, len(ordered))
	for i, p := range ordered {
		escaped[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)
}
