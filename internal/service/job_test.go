package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/jobwise/jobwise/internal/apperror"
	"github.com/jobwise/jobwise/internal/model"
)

// mockJobRepo serves a fixed catalog in order, like the sqlite store does.
type mockJobRepo struct {
	catalog []model.Job
}

func (m *mockJobRepo) List(_ context.Context) ([]model.Job, error) {
	out := make([]model.Job, len(m.catalog))
	copy(out, m.catalog)
	return out, nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id string) (*model.Job, error) {
	for _, j := range m.catalog {
		if j.ID == id {
			job := j
			return &job, nil
		}
	}
	return nil, apperror.NotFound("job", id)
}

func newTestJobService() *JobService {
	repo := &mockJobRepo{catalog: []model.Job{
		{ID: "1", Title: "Frontend Developer", Company: "Acme", RequiredSkills: []string{"JavaScript", "React"}},
		{ID: "2", Title: "Data Scientist", Company: "Analytics Pro", RequiredSkills: []string{"Python", "SQL"}},
		{ID: "3", Title: "Designer", Company: "Design Masters", RequiredSkills: []string{"Figma"}},
	}}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewJobService(repo, logger)
}

func TestJobSearch_EmptyQueryReturnsFullCatalog(t *testing.T) {
	svc := newTestJobService()

	tests := []struct {
		name  string
		query string
	}{
		{name: "empty", query: ""},
		{name: "whitespace only", query: "   "},
		{name: "tab and newline", query: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := svc.Search(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(jobs) != 3 {
				t.Errorf("Search(%q) returned %d jobs, want full catalog of 3", tt.query, len(jobs))
			}
		})
	}
}

func TestJobSearch_FiltersByQuery(t *testing.T) {
	svc := newTestJobService()

	jobs, err := svc.Search(context.Background(), "python")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "2" {
		t.Errorf("Search(python) = %v, want only job 2", jobs)
	}
}

func TestJobRecommend_EmptySkillsKeepsCatalogOrder(t *testing.T) {
	svc := newTestJobService()

	recs, err := svc.Recommend(context.Background(), nil)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if len(recs) != 3 {
		t.Fatalf("Recommend(nil) returned %d, want all 3", len(recs))
	}
	for i, want := range []string{"1", "2", "3"} {
		if recs[i].Job.ID != want {
			t.Errorf("recs[%d].Job.ID = %q, want %q", i, recs[i].Job.ID, want)
		}
		if recs[i].MatchCount != 0 || recs[i].MatchPercentage != 0 {
			t.Errorf("recs[%d] has nonzero match values for an empty skill set", i)
		}
	}
}

func TestJobRecommend_AnnotatesCountAndPercentage(t *testing.T) {
	svc := newTestJobService()

	recs, err := svc.Recommend(context.Background(), []string{"Python"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if len(recs) != 1 {
		t.Fatalf("Recommend({Python}) returned %d recs, want 1", len(recs))
	}
	rec := recs[0]
	if rec.Job.ID != "2" {
		t.Errorf("recommended job = %q, want 2", rec.Job.ID)
	}
	if rec.MatchCount != 1 {
		t.Errorf("MatchCount = %d, want 1", rec.MatchCount)
	}
	// 1 of 2 required skills → 50%
	if rec.MatchPercentage != 50 {
		t.Errorf("MatchPercentage = %d, want 50", rec.MatchPercentage)
	}
}

func TestJobGetByID_NotFound(t *testing.T) {
	svc := newTestJobService()

	_, err := svc.GetByID(context.Background(), "999")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}
