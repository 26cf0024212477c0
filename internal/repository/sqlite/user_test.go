package sqlite

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jobwise/jobwise/internal/apperror"
	"github.com/jobwise/jobwise/internal/model"
)

// newTestDB returns a fresh in-memory database, migrated and seeded.
// Each test gets its own isolated store.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("New(:memory:) error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestUser creates a user and fails the test if it errors.
func createTestUser(t *testing.T, db *DB, email string, skills []string) *model.User {
	t.Helper()
	user := &model.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$04$fakehashforrepositorytests",
		Skills:       skills,
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func TestUserCreate(t *testing.T) {
	db := newTestDB(t)

	user := &model.User{
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$04$fakehash",
		Skills:       []string{"JavaScript", "React", "TypeScript"},
	}

	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Create fills these in-place (pointer receiver)
	if user.ID == "" {
		t.Error("Create() did not set user.ID")
	}
	if user.CreatedAt.IsZero() {
		t.Error("Create() did not set user.CreatedAt")
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)

	createTestUser(t, db, "a@x.com", nil)

	duplicate := &model.User{
		Name:         "Someone Else",
		Email:        "a@x.com", // same email
		PasswordHash: "$2a$04$otherhash",
	}
	err := db.Users().Create(context.Background(), duplicate)
	if err == nil {
		t.Fatal("Create() should have failed for a duplicate email")
	}
	if !errors.Is(err, apperror.ErrConflict) {
		t.Errorf("Create() error = %v, want ErrConflict", err)
	}
}

func TestUserGetByEmail(t *testing.T) {
	db := newTestDB(t)

	created := createTestUser(t, db, "lookup@example.com", []string{"Python", "SQL"})

	got, err := db.Users().GetByEmail(context.Background(), "lookup@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("GetByEmail() ID = %q, want %q", got.ID, created.ID)
	}
	if !reflect.DeepEqual(got.Skills, []string{"Python", "SQL"}) {
		t.Errorf("GetByEmail() Skills = %v, want [Python SQL]", got.Skills)
	}
	if got.PasswordHash != created.PasswordHash {
		t.Error("GetByEmail() did not round-trip the password hash")
	}
}

func TestUserGetByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().GetByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByEmail() error = %v, want ErrNotFound", err)
	}
}

func TestUserGetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestUserUpdateSkills_ReplacesWholesale(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "skills@example.com", []string{"Java", "C++"})

	got, err := db.Users().UpdateSkills(context.Background(), user.ID, []string{"Go"})
	if err != nil {
		t.Fatalf("UpdateSkills() error = %v", err)
	}

	// Replacement, not a merge — the old skills must be gone.
	if !reflect.DeepEqual(got.Skills, []string{"Go"}) {
		t.Errorf("UpdateSkills() Skills = %v, want [Go]", got.Skills)
	}
}

func TestUserUpdateSkills_EmptySet(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "empty@example.com", []string{"Java"})

	got, err := db.Users().UpdateSkills(context.Background(), user.ID, nil)
	if err != nil {
		t.Fatalf("UpdateSkills() error = %v", err)
	}
	if len(got.Skills) != 0 {
		t.Errorf("UpdateSkills(nil) Skills = %v, want empty", got.Skills)
	}
}

func TestUserUpdateSkills_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().UpdateSkills(context.Background(), "no-such-id", []string{"Go"})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("UpdateSkills() error = %v, want ErrNotFound", err)
	}
}
