package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDiscoverRequest_Validate(t *testing.T) {
	valid := DiscoverRequest{Page: 1, Limit: 20}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*DiscoverRequest)
	}{
		{"zero page", func(r *DiscoverRequest) { r.Page = 0 }},
		{"zero limit", func(r *DiscoverRequest) { r.Limit = 0 }},
		{"limit above cap", func(r *DiscoverRequest) { r.Limit = 101 }},
		{"bad location type", func(r *DiscoverRequest) { r.LocationType = "MOON" }},
		{"bad employment type", func(r *DiscoverRequest) { r.EmploymentType = "SEASONAL" }},
		{"bad experience level", func(r *DiscoverRequest) { r.ExperienceLevel = "WIZARD" }},
		{"bad sort", func(r *DiscoverRequest) { r.SortBy = "alphabetical" }},
		{"negative salary", func(r *DiscoverRequest) { v := -1; r.SalaryMin = &v }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestDiscoverRequest_ValidateAcceptsKnownEnums(t *testing.T) {
	req := DiscoverRequest{
		LocationType:    "REMOTE",
		EmploymentType:  "FULL_TIME",
		ExperienceLevel: "SENIOR",
		SortBy:          "match",
		Page:            1,
		Limit:           100,
	}
	assert.NoError(t, req.Validate())
}

func TestBatchMatchRequest_Validate(t *testing.T) {
	assert.Error(t, (&BatchMatchRequest{}).Validate(), "empty id list should fail")

	req := BatchMatchRequest{JobIDs: []uuid.UUID{uuid.New()}}
	assert.NoError(t, req.Validate())

	req.JobIDs = make([]uuid.UUID, 101)
	for i := range req.JobIDs {
		req.JobIDs[i] = uuid.New()
	}
	assert.Error(t, req.Validate(), "oversized batch should fail")
}
