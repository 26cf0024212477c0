package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jobwise/jobwise/internal/apperror"
	"github.com/jobwise/jobwise/internal/model"
	"github.com/jobwise/jobwise/internal/repository"
)

// JobStore implements repository.JobRepository on the shared pool.
type JobStore struct {
	conn *sql.DB
}

var _ repository.JobRepository = (*JobStore)(nil)

// List returns the full catalog ordered as seeded.
//
// ORDER BY seed_order matters: the matching engine's stable tie-break and
// the search engine's "filter, don't rank" contract are both defined
// relative to catalog order, so this query is where that order originates.
func (s *JobStore) List(ctx context.Context) ([]model.Job, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, title, company, description, required_skills, location, salary, posted_date
		 FROM jobs ORDER BY seed_order`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0, 16)
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating jobs: %w", err)
	}

	return jobs, nil
}

// GetByID retrieves a single posting.
// Returns apperror.ErrNotFound if no job exists with that ID.
func (s *JobStore) GetByID(ctx context.Context, id string) (*model.Job, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT id, title, company, description, required_skills, location, salary, posted_date
		 FROM jobs WHERE id = ?`, id,
	)

	job, err := scanJob(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("job", id)
		}
		return nil, err
	}

	return job, nil
}

// scanJob reads one jobs row. Taking the Scan func lets it work with both
// *sql.Row and *sql.Rows.
func scanJob(scan func(...any) error) (*model.Job, error) {
	var (
		j         model.Job
		rawSkills string
	)

	err := scan(&j.ID, &j.Title, &j.Company, &j.Description, &rawSkills,
		&j.Location, &j.Salary, &j.PostedDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("sqlite: scanning job: %w", err)
	}

	if j.RequiredSkills, err = unmarshalSkills(rawSkills); err != nil {
		return nil, fmt.Errorf("sqlite: decoding skills for job %s: %w", j.ID, err)
	}

	return &j, nil
}
