// Package discovery composes the query parser, ranking engine and fit-scoring
// engine into the job discovery flow: parse, look up candidates, order, page.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mkaneda/talentboard/internal/match"
	"github.com/mkaneda/talentboard/internal/query"
	"github.com/mkaneda/talentboard/internal/search"
	"github.com/mkaneda/talentboard/internal/types"
)

// DefaultScoreConcurrency bounds the fan-out of parallel fit scoring within
// one request.
const DefaultScoreConcurrency = 8

// Lookup failures surfaced to the HTTP layer.
var (
	ErrJobNotFound     = errors.New("job posting not found")
	ErrProfileNotFound = errors.New("candidate profile not found")
	ErrNotJobOwner     = errors.New("caller does not own this job posting")
)

// Store is the read-only storage surface the engine depends on.
type Store interface {
	// ListPostings returns eligible postings matching the filters plus the
	// total count before pagination. A zero Limit fetches the full set.
	ListPostings(ctx context.Context, f PostingFilters) ([]types.JobPosting, int, error)
	GetPosting(ctx context.Context, id uuid.UUID) (*types.JobPosting, error)
	// GetProfile returns nil when the user has no profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.CandidateProfile, error)
}

// PostingFilters is the filter set pushed down to storage. Eligibility
// (active, deadline not passed) is always applied by the store.
type PostingFilters struct {
	Location        *string
	LocationType    *types.LocationType
	EmploymentType  *types.EmploymentType
	ExperienceLevel *types.ExperienceLevel
	SalaryMin       *int
	SalaryMax       *int

	// SortBy is "recent" or "salary"; pagination only applies when Limit > 0.
	SortBy string
	Page   int
	Limit  int
}

// Item is one posting in a result page, with its fit score when one was
// computed for the caller.
type Item struct {
	Posting types.JobPosting  `json:"posting"`
	Score   *match.MatchScore `json:"match_score,omitempty"`
}

// Page is the final ordered result page.
type Page struct {
	Items      []Item `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

// Service orchestrates discovery requests. It is stateless; every call is
// independent and imposes no internal timeouts or retries.
type Service struct {
	store            Store
	scoreConcurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithScoreConcurrency overrides the bounded fan-out used for fit scoring.
func WithScoreConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.scoreConcurrency = n
		}
	}
}

// NewService creates a discovery service over the given store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:            store,
		scoreConcurrency: DefaultScoreConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Discover parses the search string, retrieves candidate postings, orders
// them and returns the requested page. Ordering precedence, evaluated top
// to bottom:
//
//  1. free-text query + authenticated: rank by text relevance, then sort by
//     fit score descending with relevance rank breaking ties
//  2. free-text query + anonymous: text relevance order
//  3. no query, sort "match", authenticated: fit score over the full
//     eligible set, paginated in memory
//  4. otherwise: creation time or maximum salary descending, pushed down to
//     storage
//
// A search string consumed entirely by filter phrases counts as having no
// free-text query.
func (s *Service) Discover(ctx context.Context, req types.DiscoverRequest) (*Page, error) {
	parsed := query.Parse(req.Search).Merge(overridesFrom(req))
	filters := filtersFrom(parsed)
	textQuery := parsed.CleanedQuery

	switch {
	case textQuery != "" && req.UserID != nil:
		return s.searchWithFit(ctx, textQuery, filters, *req.UserID, req.Page, req.Limit)
	case textQuery != "":
		return s.searchByRelevance(ctx, textQuery, filters, req.Page, req.Limit)
	case req.SortBy == types.SortMatch && req.UserID != nil:
		return s.sortByFit(ctx, filters, *req.UserID, req.Page, req.Limit)
	default:
		return s.listStored(ctx, filters, req.SortBy, req.Page, req.Limit)
	}
}

// searchWithFit narrows candidates by text relevance first, then orders the
// matching set by fit score. Search precision first, fit quality second.
func (s *Service) searchWithFit(ctx context.Context, textQuery string, filters PostingFilters, userID uuid.UUID, page, limit int) (*Page, error) {
	postings, _, err := s.store.ListPostings(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}

	ranked := search.Rank(textQuery, postings)
	byID := postingIndex(postings)

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		profile = &types.CandidateProfile{UserID: userID}
	}

	matched := make([]types.JobPosting, len(ranked))
	for i, r := range ranked {
		matched[i] = *byID[r.JobID]
	}
	outcomes := s.scoreAll(ctx, profile, matched)

	items := make([]Item, len(ranked))
	for i := range ranked {
		score := outcomes[i].scoreOrZero()
		items[i] = Item{Posting: matched[i], Score: &score}
	}
	// Fit score descending; the relevance rank (slice order) breaks ties.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score.Overall > items[j].Score.Overall
	})

	return paginate(items, page, limit), nil
}

func (s *Service) searchByRelevance(ctx context.Context, textQuery string, filters PostingFilters, page, limit int) (*Page, error) {
	postings, _, err := s.store.ListPostings(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}

	ranked := search.Rank(textQuery, postings)
	byID := postingIndex(postings)

	items := make([]Item, len(ranked))
	for i, r := range ranked {
		items[i] = Item{Posting: *byID[r.JobID]}
	}
	return paginate(items, page, limit), nil
}

// sortByFit fetches the full eligible set, scores everything and paginates
// in memory: the sort key is not known to the storage layer, so pagination
// cannot be pushed down.
func (s *Service) sortByFit(ctx context.Context, filters PostingFilters, userID uuid.UUID, page, limit int) (*Page, error) {
	postings, _, err := s.store.ListPostings(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		profile = &types.CandidateProfile{UserID: userID}
	}

	outcomes := s.scoreAll(ctx, profile, postings)
	items := make([]Item, len(postings))
	for i := range postings {
		score := outcomes[i].scoreOrZero()
		items[i] = Item{Posting: postings[i], Score: &score}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score.Overall != items[j].Score.Overall {
			return items[i].Score.Overall > items[j].Score.Overall
		}
		return items[i].Posting.CreatedAt.After(items[j].Posting.CreatedAt)
	})

	return paginate(items, page, limit), nil
}

// listStored pushes sorting and pagination down to storage.
func (s *Service) listStored(ctx context.Context, filters PostingFilters, sortBy string, page, limit int) (*Page, error) {
	filters.SortBy = types.SortRecent
	if sortBy == types.SortSalary {
		filters.SortBy = types.SortSalary
	}
	filters.Page = page
	filters.Limit = limit

	postings, total, err := s.store.ListPostings(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}

	items := make([]Item, len(postings))
	for i := range postings {
		items[i] = Item{Posting: postings[i]}
	}
	return &Page{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// scoreOutcome keeps the distinction between a genuinely low score and a
// failed computation; callers needing only a score take the zero fallback.
type scoreOutcome struct {
	score match.MatchScore
	err   error
}

func (o scoreOutcome) scoreOrZero() match.MatchScore {
	if o.err != nil {
		return match.MatchScore{}
	}
	return o.score
}

// scoreAll computes fit scores for all postings with a bounded fan-out.
// Each posting's failure is isolated: it is logged and left as a zero score
// rather than aborting the page.
func (s *Service) scoreAll(ctx context.Context, profile *types.CandidateProfile, postings []types.JobPosting) []scoreOutcome {
	outcomes := make([]scoreOutcome, len(postings))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(s.scoreConcurrency)

	for i := range postings {
		g.Go(func() error {
			ms, err := match.Score(profile, &postings[i])
			if err != nil {
				log.Printf("[discovery] scoring posting %s failed: %v", postings[i].ID, err)
				outcomes[i] = scoreOutcome{err: err}
				return nil
			}
			outcomes[i] = scoreOutcome{score: ms}
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()
	return outcomes
}

// MatchForJob computes the fit score between one posting and one candidate.
// The caller scores their own profile unless candidateID names someone else,
// which is allowed only for the posting's owner.
func (s *Service) MatchForJob(ctx context.Context, jobID, callerID uuid.UUID, candidateID *uuid.UUID) (*match.MatchScore, error) {
	job, err := s.store.GetPosting(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	target := callerID
	if candidateID != nil && *candidateID != callerID {
		if job.PostedBy != callerID {
			return nil, ErrNotJobOwner
		}
		target = *candidateID
	}

	profile, err := s.store.GetProfile(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	ms, err := match.Score(profile, job)
	if err != nil {
		return nil, fmt.Errorf("failed to score posting %s: %w", jobID, err)
	}
	return &ms, nil
}

// MatchBatch computes fit scores for a set of postings against the caller's
// profile. A posting that cannot be found or scored yields a zero-score
// placeholder; one bad entry never fails the batch.
func (s *Service) MatchBatch(ctx context.Context, callerID uuid.UUID, jobIDs []uuid.UUID) (map[uuid.UUID]match.MatchScore, error) {
	profile, err := s.store.GetProfile(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	scores := make([]match.MatchScore, len(jobIDs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.scoreConcurrency)
	for i := range jobIDs {
		g.Go(func() error {
			job, err := s.store.GetPosting(gCtx, jobIDs[i])
			if err != nil || job == nil {
				if err != nil {
					log.Printf("[discovery] batch lookup of posting %s failed: %v", jobIDs[i], err)
				}
				return nil
			}
			ms, err := match.Score(profile, job)
			if err != nil {
				log.Printf("[discovery] batch scoring of posting %s failed: %v", jobIDs[i], err)
				return nil
			}
			scores[i] = ms
			return nil
		})
	}
	_ = g.Wait()

	result := make(map[uuid.UUID]match.MatchScore, len(jobIDs))
	for i, id := range jobIDs {
		result[id] = scores[i]
	}
	return result, nil
}

func overridesFrom(req types.DiscoverRequest) query.Overrides {
	return query.Overrides{
		Location:        req.Location,
		LocationType:    types.LocationType(req.LocationType),
		EmploymentType:  types.EmploymentType(req.EmploymentType),
		ExperienceLevel: types.ExperienceLevel(req.ExperienceLevel),
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
	}
}

func filtersFrom(parsed query.ParsedQuery) PostingFilters {
	return PostingFilters{
		Location:        parsed.Location,
		LocationType:    parsed.LocationType,
		EmploymentType:  parsed.EmploymentType,
		ExperienceLevel: parsed.ExperienceLevel,
		SalaryMin:       parsed.SalaryMin,
		SalaryMax:       parsed.SalaryMax,
	}
}

func postingIndex(postings []types.JobPosting) map[uuid.UUID]*types.JobPosting {
	byID := make(map[uuid.UUID]*types.JobPosting, len(postings))
	for i := range postings {
		byID[postings[i].ID] = &postings[i]
	}
	return byID
}

func paginate(items []Item, page, limit int) *Page {
	total := len(items)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return &Page{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}
}

func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
