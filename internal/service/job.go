package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jobwise/jobwise/internal/match"
	"github.com/jobwise/jobwise/internal/model"
	"github.com/jobwise/jobwise/internal/repository"
)

// JobService serves the catalog: listing, free-text search, and
// skill-based recommendations. The ranking and filtering rules themselves
// live in the match package; this layer owns fetching the catalog and the
// empty-input conventions.
type JobService struct {
	jobs   repository.JobRepository
	logger *slog.Logger
}

// NewJobService creates a JobService.
func NewJobService(jobs repository.JobRepository, logger *slog.Logger) *JobService {
	return &JobService{jobs: jobs, logger: logger}
}

// Recommendation pairs a posting with its derived match values.
//
// MatchCount ordered the list; MatchPercentage is for display. Keeping both
// on the wire lets the client show "3 shared skills · 60% match" without
// re-deriving either.
type Recommendation struct {
	Job             model.Job `json:"job"`
	MatchCount      int       `json:"matchCount"`
	MatchPercentage int       `json:"matchPercentage"`
}

// List returns the full catalog in seed order.
func (s *JobService) List(ctx context.Context) ([]model.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		s.logger.Error("failed to list jobs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobs, nil
}

// GetByID returns a single posting; apperror.ErrNotFound on a miss.
func (s *JobService) GetByID(ctx context.Context, id string) (*model.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// Search returns postings matching the free-text query.
//
// A blank or whitespace-only query is defined to mean "no filter" — the
// full catalog comes back without invoking the search engine at all. This
// mirrors how the jobs page behaves: clearing the search box restores the
// complete listing.
func (s *JobService) Search(ctx context.Context, query string) ([]model.Job, error) {
	catalog, err := s.jobs.List(ctx)
	if err != nil {
		s.logger.Error("failed to list jobs for search", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	if strings.TrimSpace(query) == "" {
		return catalog, nil
	}

	return match.Search(query, catalog), nil
}

// Recommend returns the catalog ranked against the given skill set, each
// posting annotated with its overlap count and match percentage.
//
// An empty skill set recommends everything in catalog order (identity) —
// a user who hasn't filled in their profile sees the whole board, with 0%
// matches, rather than an empty page.
func (s *JobService) Recommend(ctx context.Context, userSkills []string) ([]Recommendation, error) {
	catalog, err := s.jobs.List(ctx)
	if err != nil {
		s.logger.Error("failed to list jobs for recommendations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	ranked := match.Recommend(userSkills, catalog)

	recs := make([]Recommendation, len(ranked))
	for i, job := range ranked {
		recs[i] = Recommendation{
			Job:             job,
			MatchCount:      match.OverlapCount(userSkills, job),
			MatchPercentage: match.Percentage(userSkills, job),
		}
	}

	return recs, nil
}
