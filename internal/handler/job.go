package handler

import (
	"log/slog"
	"net/http"

	"github.com/jobwise/jobwise/internal/auth"
	"github.com/jobwise/jobwise/internal/catalog"
	"github.com/jobwise/jobwise/internal/service"
)

// JobHandler serves the job board: the catalog listing (with optional
// free-text search), single postings, per-user recommendations, and the
// skill vocabulary the profile editor offers.
type JobHandler struct {
	jobs     *service.JobService
	profiles *service.ProfileService
	logger   *slog.Logger
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(jobs *service.JobService, profiles *service.ProfileService, logger *slog.Logger) *JobHandler {
	return &JobHandler{
		jobs:     jobs,
		profiles: profiles,
		logger:   logger,
	}
}

// HandleList returns the job catalog, optionally filtered.
//
// HTTP: GET /api/jobs        → full catalog in posting order
// HTTP: GET /api/jobs?q=react → postings matching the query
//
// One endpoint for both: the jobs page always calls this route and just
// includes ?q= when the search box is non-empty. The service treats a blank
// query as "no filter", so the two cases need no branching here.
func (h *JobHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	jobs, err := h.jobs.Search(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

// HandleGetByID returns a single posting.
//
// HTTP: GET /api/jobs/{id}
func (h *JobHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "job ID is required",
		})
		return
	}

	job, err := h.jobs.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// HandleRecommended returns the catalog ranked against the logged-in user's
// skills, each posting annotated with its match count and percentage.
//
// HTTP: GET /api/jobs/recommended
// Auth: required — the skill set comes from the stored profile, never from
// query parameters, so clients can't probe other users' rankings.
//
// A user with no skills on file gets the whole catalog back in posting
// order with 0% matches — an empty recommendations page would read as a
// bug, not an invitation to fill in the profile.
func (h *JobHandler) HandleRecommended(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "authentication required",
		})
		return
	}

	user, err := h.profiles.GetByID(r.Context(), userID)
	if err != nil {
		h.logger.Error("recommended: profile lookup failed", slog.String("userID", userID))
		writeError(w, err)
		return
	}

	recs, err := h.jobs.Recommend(r.Context(), user.Skills)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

// HandleSkills returns the known skill vocabulary.
//
// HTTP: GET /api/skills
//
// This backs the profile editor's suggestion list. It is a vocabulary, not
// a constraint — UpdateSkills accepts skills outside this list.
func (h *JobHandler) HandleSkills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Skills)
}
