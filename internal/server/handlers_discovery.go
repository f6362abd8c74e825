package server

import (
	"net/http"
	"strconv"

	"github.com/mkaneda/talentboard/internal/server/middleware"
	"github.com/mkaneda/talentboard/internal/types"
)

// Pagination defaults for the discovery listing.
const (
	defaultPage  = 1
	defaultLimit = 20
)

// parseQueryInt parses an integer query parameter. The default applies only
// when the parameter is absent; a present but malformed value is an input
// error. Range checks are left to request validation.
func parseQueryInt(r *http.Request, key string, defaultValue int) (int, error) {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue, nil
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, &ErrValidation{Field: key, Message: "must be an integer"}
	}
	return val, nil
}

// parseQueryIntPtr parses an optional integer query parameter, returning nil
// when absent.
func parseQueryIntPtr(r *http.Request, key string) (*int, error) {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return nil, nil
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return nil, &ErrValidation{Field: key, Message: "must be an integer"}
	}
	return &val, nil
}

// handleDiscoverJobs runs one discovery request: free-text search, explicit
// filter overrides, sort mode and pagination. Anonymous callers get text
// relevance or stored-order results; authenticated callers additionally get
// fit-score ordering.
func (s *Server) handleDiscoverJobs(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	page, err := parseQueryInt(r, "page", defaultPage)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	limit, err := parseQueryInt(r, "limit", defaultLimit)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	req := types.DiscoverRequest{
		Search:          params.Get("search"),
		Location:        params.Get("location"),
		LocationType:    params.Get("locationType"),
		EmploymentType:  params.Get("employmentType"),
		ExperienceLevel: params.Get("experienceLevel"),
		SortBy:          params.Get("sortBy"),
		Page:            page,
		Limit:           limit,
		UserID:          middleware.MaybeUserID(r),
	}

	salaryMin, err := parseQueryIntPtr(r, "salaryMin")
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	req.SalaryMin = salaryMin

	salaryMax, err := parseQueryIntPtr(r, "salaryMax")
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	req.SalaryMax = salaryMax

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, err := s.discovery.Discover(r.Context(), req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
