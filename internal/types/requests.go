package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Sort modes accepted by the discovery listing.
const (
	SortRecent = "recent"
	SortSalary = "salary"
	SortMatch  = "match"
)

// DiscoverRequest carries one discovery call: the raw search string, explicit
// filter overrides (which take precedence over parser-derived values), the
// requested sort mode and pagination. UserID is nil for anonymous callers.
type DiscoverRequest struct {
	Search          string `json:"search"`
	Location        string `json:"location,omitempty"`
	LocationType    string `json:"location_type,omitempty" validate:"omitempty,oneof=ONSITE REMOTE HYBRID"`
	EmploymentType  string `json:"employment_type,omitempty" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP FREELANCE"`
	ExperienceLevel string `json:"experience_level,omitempty" validate:"omitempty,oneof=ENTRY MID SENIOR EXECUTIVE"`
	SalaryMin       *int   `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax       *int   `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	SortBy          string `json:"sort_by,omitempty" validate:"omitempty,oneof=recent salary match"`
	Page            int    `json:"page" validate:"min=1"`
	Limit           int    `json:"limit" validate:"min=1,max=100"`

	UserID *uuid.UUID `json:"-"`
}

// Validate validates the DiscoverRequest using the validator.
func (r *DiscoverRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BatchMatchRequest asks for fit scores across a set of postings for the
// authenticated caller.
type BatchMatchRequest struct {
	JobIDs []uuid.UUID `json:"job_ids" validate:"required,min=1,max=100"`
}

// Validate validates the BatchMatchRequest using the validator.
func (r *BatchMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
