package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/mkaneda/talentboard/internal/server/middleware"
	"github.com/mkaneda/talentboard/internal/types"
)

// handleJobMatch returns the full fit-score breakdown between one posting
// and one candidate. The caller scores their own profile unless candidate_id
// names another user, which only the posting's owner may do.
func (s *Server) handleJobMatch(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job posting ID")
		return
	}

	callerID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var candidateID *uuid.UUID
	if candidateStr := r.URL.Query().Get("candidate_id"); candidateStr != "" {
		parsed, err := uuid.Parse(candidateStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid candidate_id")
			return
		}
		candidateID = &parsed
	}

	score, err := s.discovery.MatchForJob(r.Context(), jobID, callerID, candidateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, score)
}

// handleBatchMatch scores a set of postings against the caller's profile.
// Postings that cannot be found or scored come back as zero-score
// placeholders rather than failing the batch.
func (s *Server) handleBatchMatch(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.BatchMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	scores, err := s.discovery.MatchBatch(r.Context(), callerID, req.JobIDs)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"scores": scores})
}
