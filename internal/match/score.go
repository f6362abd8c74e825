// Package match computes a 0-100 fit score between a candidate profile and a
// job posting. Scoring is a pure function of its inputs and safe to run
// concurrently for many postings against one profile.
package match

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/mkaneda/talentboard/internal/types"
)

// Component weights for the overall score. These are contract constants,
// not configuration.
const (
	skillsWeight     = 0.4
	experienceWeight = 0.3
	educationWeight  = 0.3
)

// hoursPerYear measures experience in 365-day years.
const hoursPerYear = 365 * 24

// Errors returned for malformed input.
var (
	ErrNilProfile = errors.New("candidate profile is nil")
	ErrNilJob     = errors.New("job posting is nil")
)

// MatchScore is the computed fit between one profile and one posting.
type MatchScore struct {
	Overall         int            `json:"overall"`
	SkillsMatch     int            `json:"skills_match"`
	ExperienceMatch int            `json:"experience_match"`
	EducationMatch  int            `json:"education_match"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
}

// ScoreBreakdown explains how the sub-scores came about.
type ScoreBreakdown struct {
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	YearsOfExperience float64  `json:"years_of_experience"`
	LevelMatch        bool     `json:"level_match"`
	RelevantEducation bool     `json:"relevant_education"`
}

// Score computes the fit score for one (profile, job) pair. The overall
// score is round(0.4*skills + 0.3*experience + 0.3*education).
func Score(profile *types.CandidateProfile, job *types.JobPosting) (MatchScore, error) {
	if profile == nil {
		return MatchScore{}, ErrNilProfile
	}
	if job == nil {
		return MatchScore{}, ErrNilJob
	}

	skills, matched, missing := scoreSkills(profile.Skills, job.Skills)
	experience, years, levelMatch := scoreExperience(profile.Experience, job.ExperienceLevel)
	education, relevant := scoreEducation(profile.Education, job.Qualifications)

	overall := int(math.Round(skillsWeight*float64(skills) +
		experienceWeight*float64(experience) +
		educationWeight*float64(education)))

	return MatchScore{
		Overall:         overall,
		SkillsMatch:     skills,
		ExperienceMatch: experience,
		EducationMatch:  education,
		Breakdown: ScoreBreakdown{
			MatchedSkills:     matched,
			MissingSkills:     missing,
			YearsOfExperience: years,
			LevelMatch:        levelMatch,
			RelevantEducation: relevant,
		},
	}, nil
}

// scoreSkills returns 100 when the job declares no required skills. Otherwise
// each required skill counts as matched when its normalized name contains, or
// is contained in, any of the candidate's normalized skill names; alias
// folding makes "JS" and "JavaScript" match in either direction. Matched and
// missing lists keep the job's original casing.
func scoreSkills(candidate []types.Skill, required []string) (score int, matched, missing []string) {
	if len(required) == 0 {
		return 100, nil, nil
	}

	normalized := make([]string, 0, len(candidate))
	for _, s := range candidate {
		if n := normalizeSkill(s.Name); n != "" {
			normalized = append(normalized, n)
		}
	}

	for _, req := range required {
		reqNorm := normalizeSkill(req)
		found := false
		for _, have := range normalized {
			if reqNorm != "" && (strings.Contains(have, reqNorm) || strings.Contains(reqNorm, have)) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	score = int(math.Round(100 * float64(len(matched)) / float64(len(required))))
	return score, matched, missing
}

// scoreExperience sums the candidate's work history in 365-day years, maps
// the total to a level, and scores the distance to the job's required level.
// A candidate with no experience entries scores 60 against ENTRY roles and
// 30 otherwise.
func scoreExperience(entries []types.ExperienceEntry, required types.ExperienceLevel) (score int, years float64, levelMatch bool) {
	if len(entries) == 0 {
		if required == types.LevelEntry {
			return 60, 0, false
		}
		return 30, 0, false
	}

	years = totalYears(entries, time.Now())
	candidate := levelForYears(years)
	score = levelDistanceScore(candidate, required)
	return score, years, candidate == required
}

// totalYears sums elapsed time across entries. An entry marked current, or
// missing an end date, counts up to now.
func totalYears(entries []types.ExperienceEntry, now time.Time) float64 {
	total := 0.0
	for _, e := range entries {
		end := now
		if !e.Current && e.EndDate != nil {
			end = *e.EndDate
		}
		if end.Before(e.StartDate) {
			continue
		}
		total += end.Sub(e.StartDate).Hours() / hoursPerYear
	}
	return total
}

// levelForYears maps cumulative years to an experience level:
// <2 ENTRY, <5 MID, <10 SENIOR, else EXECUTIVE.
func levelForYears(years float64) types.ExperienceLevel {
	switch {
	case years < 2:
		return types.LevelEntry
	case years < 5:
		return types.LevelMid
	case years < 10:
		return types.LevelSenior
	default:
		return types.LevelExecutive
	}
}

// levelDistanceScore scores the candidate's level against the required one
// on the four-tier ordinal: exact 100, one above 95, one below 70, two or
// more above 85, two or more below 50.
func levelDistanceScore(candidate, required types.ExperienceLevel) int {
	switch diff := candidate.Rank() - required.Rank(); {
	case diff == 0:
		return 100
	case diff == 1:
		return 95
	case diff == -1:
		return 70
	case diff >= 2:
		return 85
	default:
		return 50
	}
}

// scoreEducation returns 100 when the job declares no required qualifications
// and 60 when the candidate has no education entries. A bidirectional
// substring hit between any qualification and any entry's degree or field
// scores 100; otherwise a degree-tier heuristic applies (doctorate 90,
// master's 85, bachelor's 75, else 70), keeping the best tier across entries.
func scoreEducation(entries []types.EducationEntry, qualifications []string) (score int, relevant bool) {
	if len(qualifications) == 0 {
		return 100, false
	}
	if len(entries) == 0 {
		return 60, false
	}

	for _, q := range qualifications {
		qNorm := normalizeText(q)
		if qNorm == "" {
			continue
		}
		for _, e := range entries {
			if containsEitherWay(normalizeText(e.Degree), qNorm) || containsEitherWay(normalizeText(e.Field), qNorm) {
				return 100, true
			}
		}
	}

	best := 70
	for _, e := range entries {
		if tier := degreeTierScore(e.Degree); tier > best {
			best = tier
		}
	}
	return best, false
}

func degreeTierScore(degree string) int {
	d := strings.ToLower(degree)
	switch {
	case strings.Contains(d, "phd") || strings.Contains(d, "ph.d") || strings.Contains(d, "doctor"):
		return 90
	case strings.Contains(d, "master") || strings.Contains(d, "msc") || strings.Contains(d, "m.s") || strings.Contains(d, "mba"):
		return 85
	case strings.Contains(d, "bachelor") || strings.Contains(d, "bsc") || strings.Contains(d, "b.s") || strings.Contains(d, "b.tech") || strings.Contains(d, "btech"):
		return 75
	default:
		return 70
	}
}

func containsEitherWay(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// skillAliases folds common short forms onto their canonical names before
// the substring comparison, so "JS" and "JavaScript" land on the same text.
var skillAliases = map[string]string{
	"js":       "javascript",
	"ts":       "typescript",
	"py":       "python",
	"golang":   "go",
	"k8s":      "kubernetes",
	"node.js":  "node",
	"nodejs":   "node",
	"reactjs":  "react",
	"postgres": "postgresql",
}

func normalizeSkill(name string) string {
	n := normalizeText(name)
	if canonical, ok := skillAliases[n]; ok {
		return canonical
	}
	return n
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
