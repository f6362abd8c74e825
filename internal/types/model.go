// Package types provides the domain model shared by the discovery engine packages.
package types

import (
	"time"

	"github.com/google/uuid"
)

// LocationType describes where the work happens.
type LocationType string

// LocationType values
const (
	LocationOnsite LocationType = "ONSITE"
	LocationRemote LocationType = "REMOTE"
	LocationHybrid LocationType = "HYBRID"
)

// EmploymentType describes the contractual arrangement of a posting.
type EmploymentType string

// EmploymentType values
const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentContract   EmploymentType = "CONTRACT"
	EmploymentInternship EmploymentType = "INTERNSHIP"
	EmploymentFreelance  EmploymentType = "FREELANCE"
)

// ExperienceLevel describes the seniority a posting asks for.
type ExperienceLevel string

// ExperienceLevel values
const (
	LevelEntry     ExperienceLevel = "ENTRY"
	LevelMid       ExperienceLevel = "MID"
	LevelSenior    ExperienceLevel = "SENIOR"
	LevelExecutive ExperienceLevel = "EXECUTIVE"
)

// levelRanks maps experience levels to their ordinal position for distance comparisons.
var levelRanks = map[ExperienceLevel]int{
	LevelEntry:     1,
	LevelMid:       2,
	LevelSenior:    3,
	LevelExecutive: 4,
}

// Rank returns the ordinal position of the level (ENTRY=1 .. EXECUTIVE=4).
// Unknown levels rank as ENTRY.
func (l ExperienceLevel) Rank() int {
	if r, ok := levelRanks[l]; ok {
		return r
	}
	return 1
}

// JobPosting is a single job listing as read from storage. The discovery
// engine never mutates it.
type JobPosting struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	CompanyName     string          `json:"company_name"`
	Skills          []string        `json:"skills"`
	Qualifications  []string        `json:"qualifications,omitempty"`
	Location        string          `json:"location"`
	LocationType    LocationType    `json:"location_type"`
	EmploymentType  EmploymentType  `json:"employment_type"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	SalaryMin       *int            `json:"salary_min,omitempty"`
	SalaryMax       *int            `json:"salary_max,omitempty"`
	IsActive        bool            `json:"is_active"`
	Deadline        *time.Time      `json:"deadline,omitempty"`
	PostedBy        uuid.UUID       `json:"posted_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OpenForApplications reports whether the posting is eligible for discovery:
// it must be active and its deadline, if any, must not predate the start of
// the current day.
func (p *JobPosting) OpenForApplications() bool {
	if !p.IsActive {
		return false
	}
	if p.Deadline == nil {
		return true
	}
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !p.Deadline.Before(startOfDay)
}

// Skill is one declared candidate skill.
type Skill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// ExperienceEntry is one period of work history. An entry with no end date,
// or marked current, counts up to now.
type ExperienceEntry struct {
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Current   bool       `json:"current"`
}

// EducationEntry is one degree held by a candidate.
type EducationEntry struct {
	Degree string `json:"degree"`
	Field  string `json:"field_of_study"`
}

// CandidateProfile is the read-only candidate record the fit-scoring engine
// consumes. Exclusively owned by the user it belongs to.
type CandidateProfile struct {
	UserID     uuid.UUID         `json:"user_id"`
	Skills     []Skill           `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
}
