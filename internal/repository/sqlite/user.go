package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/jobwise/jobwise/internal/apperror"
	"github.com/jobwise/jobwise/internal/model"
	"github.com/jobwise/jobwise/internal/repository"
)

// UserStore implements repository.UserRepository on the shared pool.
type UserStore struct {
	conn *sql.DB
}

var _ repository.UserRepository = (*UserStore)(nil)

// Create inserts a new user, assigning an xid and timestamps in place.
//
// The email UNIQUE constraint is the last line of defence against duplicate
// registration. The service pre-checks with GetByEmail for a friendly
// error, but two concurrent registrations for the same email can both pass
// that check — the constraint makes exactly one of them win, and we map the
// violation to the same ErrConflict the pre-check produces.
func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.ID = xid.New().String()
	user.CreatedAt = now
	user.UpdatedAt = now

	skills, err := marshalSkills(user.Skills)
	if err != nil {
		return fmt.Errorf("sqlite: encoding skills: %w", err)
	}

	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, skills, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		user.ID, user.Name, user.Email, user.PasswordHash,
		skills, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("email already in use")
		}
		return fmt.Errorf("sqlite: inserting user %s: %w", user.Email, err)
	}

	return nil
}

// GetByID retrieves a user by internal ID.
// Returns apperror.ErrNotFound if no user exists with that ID.
func (s *UserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.getUser(ctx, `WHERE id = ?`, id)
}

// GetByEmail retrieves a user by email, the login lookup key.
// Returns apperror.ErrNotFound on a miss.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getUser(ctx, `WHERE email = ?`, email)
}

// UpdateSkills replaces the user's skill set wholesale and returns the
// updated record. The previous set is discarded, not merged.
func (s *UserStore) UpdateSkills(ctx context.Context, id string, skills []string) (*model.User, error) {
	encoded, err := marshalSkills(skills)
	if err != nil {
		return nil, fmt.Errorf("sqlite: encoding skills: %w", err)
	}

	res, err := s.conn.ExecContext(ctx,
		`UPDATE users SET skills = ?, updated_at = ? WHERE id = ?`,
		encoded, time.Now(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: updating skills for user %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sqlite: checking update result: %w", err)
	}
	if affected == 0 {
		return nil, apperror.NotFound("user", id)
	}

	return s.GetByID(ctx, id)
}

func (s *UserStore) getUser(ctx context.Context, where string, arg any) (*model.User, error) {
	var (
		u         model.User
		rawSkills string
	)

	err := s.conn.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, skills, created_at, updated_at
		 FROM users `+where, arg,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &rawSkills, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", fmt.Sprint(arg))
		}
		return nil, fmt.Errorf("sqlite: getting user: %w", err)
	}

	if u.Skills, err = unmarshalSkills(rawSkills); err != nil {
		return nil, fmt.Errorf("sqlite: decoding skills for user %s: %w", u.ID, err)
	}

	return &u, nil
}

// marshalSkills encodes a skill slice as a JSON array for the TEXT column.
// nil encodes as "[]" so the column is never SQL NULL.
func marshalSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalSkills(raw string) ([]string, error) {
	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// isUniqueViolation detects a UNIQUE constraint failure.
//
// modernc.org/sqlite doesn't export a stable typed error for constraint
// violations through database/sql, so we match the SQLite error text
// ("UNIQUE constraint failed: users.email"), the same way the driver's own
// tests do.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
