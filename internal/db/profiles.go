package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkaneda/talentboard/internal/types"
)

// GetProfile assembles a candidate profile from its skill, experience and
// education rows. Returns nil when the user has no profile rows at all.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*types.CandidateProfile, error) {
	profile := &types.CandidateProfile{UserID: userID}

	skillRows, err := db.pool.Query(ctx,
		`SELECT name, COALESCE(proficiency, '')
		 FROM profile_skills WHERE user_id = $1 ORDER BY ordinal`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile skills: %w", err)
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var s types.Skill
		if err := skillRows.Scan(&s.Name, &s.Proficiency); err != nil {
			return nil, fmt.Errorf("failed to scan profile skill: %w", err)
		}
		profile.Skills = append(profile.Skills, s)
	}
	if err := skillRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile skills: %w", err)
	}

	expRows, err := db.pool.Query(ctx,
		`SELECT start_date, end_date, is_current
		 FROM profile_experience WHERE user_id = $1 ORDER BY start_date`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile experience: %w", err)
	}
	defer expRows.Close()
	for expRows.Next() {
		var e types.ExperienceEntry
		if err := expRows.Scan(&e.StartDate, &e.EndDate, &e.Current); err != nil {
			return nil, fmt.Errorf("failed to scan experience entry: %w", err)
		}
		profile.Experience = append(profile.Experience, e)
	}
	if err := expRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile experience: %w", err)
	}

	eduRows, err := db.pool.Query(ctx,
		`SELECT degree, COALESCE(field_of_study, '')
		 FROM profile_education WHERE user_id = $1 ORDER BY ordinal`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile education: %w", err)
	}
	defer eduRows.Close()
	for eduRows.Next() {
		var e types.EducationEntry
		if err := eduRows.Scan(&e.Degree, &e.Field); err != nil {
			return nil, fmt.Errorf("failed to scan education entry: %w", err)
		}
		profile.Education = append(profile.Education, e)
	}
	if err := eduRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile education: %w", err)
	}

	if len(profile.Skills) == 0 && len(profile.Experience) == 0 && len(profile.Education) == 0 {
		var exists bool
		err := db.pool.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check user: %w", err)
		}
		if !exists {
			return nil, nil
		}
	}

	return profile, nil
}
