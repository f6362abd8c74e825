package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExperienceLevel_Rank(t *testing.T) {
	assert.Equal(t, 1, LevelEntry.Rank())
	assert.Equal(t, 2, LevelMid.Rank())
	assert.Equal(t, 3, LevelSenior.Rank())
	assert.Equal(t, 4, LevelExecutive.Rank())
	assert.Equal(t, 1, ExperienceLevel("UNKNOWN").Rank(), "unknown levels rank as entry")
}

func TestJobPosting_OpenForApplications(t *testing.T) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	tests := []struct {
		name     string
		posting  JobPosting
		expected bool
	}{
		{"active without deadline", JobPosting{IsActive: true}, true},
		{"inactive", JobPosting{IsActive: false}, false},
		{"deadline in the future", JobPosting{IsActive: true, Deadline: timePtr(now.Add(48 * time.Hour))}, true},
		{"deadline earlier today still counts", JobPosting{IsActive: true, Deadline: timePtr(startOfDay)}, true},
		{"deadline passed", JobPosting{IsActive: true, Deadline: timePtr(startOfDay.Add(-time.Hour))}, false},
		{"inactive with future deadline", JobPosting{IsActive: false, Deadline: timePtr(now.Add(48 * time.Hour))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.posting.OpenForApplications())
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
