package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mkaneda/talentboard/internal/discovery"
	"github.com/mkaneda/talentboard/internal/types"
)

const postingColumns = `id, title, description, company_name, skills, qualifications,
	location, location_type, employment_type, experience_level,
	salary_min, salary_max, is_active, deadline, posted_by, created_at, updated_at`

// buildPostingsWhere assembles the WHERE clause for a posting listing. The
// eligibility invariant is always applied: only active postings whose
// deadline has not passed the start of the current day are discoverable.
func buildPostingsWhere(f discovery.PostingFilters) (string, []any) {
	clauses := []string{
		"is_active = TRUE",
		"(deadline IS NULL OR deadline >= date_trunc('day', now()))",
	}
	args := []any{}
	argNum := 1

	if f.Location != nil {
		clauses = append(clauses, fmt.Sprintf("location ILIKE $%d", argNum))
		args = append(args, "%"+*f.Location+"%")
		argNum++
	}
	if f.LocationType != nil {
		clauses = append(clauses, fmt.Sprintf("location_type = $%d", argNum))
		args = append(args, string(*f.LocationType))
		argNum++
	}
	if f.EmploymentType != nil {
		clauses = append(clauses, fmt.Sprintf("employment_type = $%d", argNum))
		args = append(args, string(*f.EmploymentType))
		argNum++
	}
	if f.ExperienceLevel != nil {
		clauses = append(clauses, fmt.Sprintf("experience_level = $%d", argNum))
		args = append(args, string(*f.ExperienceLevel))
		argNum++
	}
	if f.SalaryMin != nil {
		clauses = append(clauses, fmt.Sprintf("(salary_max IS NULL OR salary_max >= $%d)", argNum))
		args = append(args, *f.SalaryMin)
		argNum++
	}
	if f.SalaryMax != nil {
		clauses = append(clauses, fmt.Sprintf("(salary_min IS NULL OR salary_min <= $%d)", argNum))
		args = append(args, *f.SalaryMax)
		argNum++
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

// ListPostings returns eligible postings matching the filters plus the total
// count before pagination. Sorting and pagination are pushed down only when
// the filters ask for them; a zero Limit fetches the full set.
func (db *DB) ListPostings(ctx context.Context, f discovery.PostingFilters) ([]types.JobPosting, int, error) {
	where, args := buildPostingsWhere(f)

	var total int
	if err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM job_postings "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count postings: %w", err)
	}

	query := "SELECT " + postingColumns + " FROM job_postings " + where

	switch f.SortBy {
	case types.SortSalary:
		query += " ORDER BY salary_max DESC NULLS LAST, created_at DESC"
	default:
		query += " ORDER BY created_at DESC"
	}

	if f.Limit > 0 {
		offset := 0
		if f.Page > 1 {
			offset = (f.Page - 1) * f.Limit
		}
		argNum := len(args) + 1
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
		args = append(args, f.Limit, offset)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list postings: %w", err)
	}
	defer rows.Close()

	var postings []types.JobPosting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan posting: %w", err)
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read postings: %w", err)
	}
	return postings, total, nil
}

// GetPosting retrieves a posting by ID regardless of eligibility; callers
// that need the discovery invariant check it themselves.
func (db *DB) GetPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		"SELECT "+postingColumns+" FROM job_postings WHERE id = $1", id)
	p, err := scanPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}
	return &p, nil
}

func scanPosting(row pgx.Row) (types.JobPosting, error) {
	var p types.JobPosting
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.CompanyName, &p.Skills,
		&p.Qualifications, &p.Location, &p.LocationType, &p.EmploymentType,
		&p.ExperienceLevel, &p.SalaryMin, &p.SalaryMax, &p.IsActive,
		&p.Deadline, &p.PostedBy, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
