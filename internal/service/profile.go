// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (business layer) → validates, enforces rules, orchestrates
//	Repository (data layer)  → reads/writes the store
//
// Services accept primitives and return domain models and apperror values —
// never HTTP types or status codes. Handlers translate at the boundary.
// Each service takes its repository as an interface, so tests inject an
// in-memory mock instead of SQLite.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jobwise/jobwise/internal/apperror"
	"github.com/jobwise/jobwise/internal/auth"
	"github.com/jobwise/jobwise/internal/model"
	"github.com/jobwise/jobwise/internal/repository"
)

// Validation constants.
const (
	MaxNameLength  = 100
	MaxSkillLength = 60
)

// invalidCredentials is the single message for every login failure.
// "No such user" and "wrong password" MUST be indistinguishable to the
// caller, otherwise the login form leaks which emails are registered.
const invalidCredentials = "invalid email or password"

// ProfileService handles registration, login, and skill-profile updates.
type ProfileService struct {
	users     repository.UserRepository
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewProfileService creates a ProfileService with all required dependencies.
func NewProfileService(
	users repository.UserRepository,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *ProfileService {
	return &ProfileService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// Register creates a new user profile.
//
// The duplicate-email check lives HERE, inside the operation, not in the
// caller: an HTTP client can't be trusted to pre-check, and the store's
// UNIQUE constraint backs this up against concurrent registrations. Either
// path surfaces as the same ErrConflict.
//
// Note there is no cap on how many skills a user may declare. The "pick up
// to 5" limit is a client-side nicety, not a business rule.
func (s *ProfileService) Register(ctx context.Context, name, email, password string, skills []string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, apperror.ValidationFailed("name", "name is required")
	}
	if len(name) > MaxNameLength {
		return nil, apperror.ValidationFailed("name",
			fmt.Sprintf("name must be %d characters or less", MaxNameLength))
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, apperror.ValidationFailed("password", "password is required")
	}

	cleaned, err := cleanSkills(skills)
	if err != nil {
		return nil, err
	}

	// Friendly-path duplicate check. Racing registrations fall through to
	// the UNIQUE constraint in the repository, which returns the same error.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperror.Conflict("email already in use")
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("checking email availability: %w", err)
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, apperror.ValidationFailed("password", "password is too long")
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Skills:       cleaned,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, err
		}
		s.logger.Error("failed to create user",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("email", user.Email),
		slog.Int("skills", len(user.Skills)),
	)

	return user, nil
}

// Authenticate verifies an email + password pair and returns the profile.
//
// Both failure modes — unknown email and wrong password — return the
// identical apperror.Unauthorized(invalidCredentials). Don't "improve"
// this by distinguishing them.
func (s *ProfileService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = normalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized(invalidCredentials)
		}
		return nil, fmt.Errorf("looking up user by email: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	s.logger.Info("user logged in", slog.String("userID", user.ID))

	return user, nil
}

// GetByID returns the profile for the given internal ID. Used by /api/me to
// restore the session after a page reload.
func (s *ProfileService) GetByID(ctx context.Context, id string) (*model.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.ValidationFailed("id", "user ID is required")
	}
	return s.users.GetByID(ctx, id)
}

// UpdateSkills replaces the user's declared skills wholesale.
// The previous set is discarded — this is assignment, not a merge.
func (s *ProfileService) UpdateSkills(ctx context.Context, userID string, skills []string) (*model.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperror.ValidationFailed("id", "user ID is required")
	}

	cleaned, err := cleanSkills(skills)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdateSkills(ctx, userID, cleaned)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update skills",
			slog.String("userID", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating skills: %w", err)
	}

	s.logger.Info("skills updated",
		slog.String("userID", userID),
		slog.Int("skills", len(user.Skills)),
	)

	return user, nil
}

// cleanSkills trims each skill and drops empties and duplicates while
// preserving first-seen order.
func cleanSkills(skills []string) ([]string, error) {
	cleaned := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if len(skill) > MaxSkillLength {
			return nil, apperror.ValidationFailed("skills",
				fmt.Sprintf("skill names must be %d characters or less", MaxSkillLength))
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		cleaned = append(cleaned, skill)
	}
	return cleaned, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmail does a minimal shape check. Real validation happens by the
// user receiving (or not receiving) anything sent to the address; the check
// here just catches obviously broken input early.
func validateEmail(email string) error {
	if email == "" {
		return apperror.ValidationFailed("email", "email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return apperror.ValidationFailed("email", "email address is invalid")
	}
	return nil
}
