// Package sqlite implements the repository interfaces using SQLite as the
// storage backend.
//
// WHY SQLITE?
// SQLite is an embedded database — a single file inside the deployment, no
// separate server to run. That matches this app's shape exactly: one
// process, a tiny static catalog, and user records that just need to
// survive restarts. Tests use ":memory:" for a fresh, isolated store.
//
// WHY modernc.org/sqlite?
// It's a pure Go translation of SQLite — no CGo, no C compiler, trivial
// cross-compilation. The driver registers itself with database/sql under
// the name "sqlite" via the blank import below.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/jobwise/jobwise/internal/catalog"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and hands out the per-aggregate stores
// (users in user.go, jobs in job.go). The stores share the pool; DB owns
// opening, migration, seeding, and closing.
type DB struct {
	conn  *sql.DB
	users *UserStore
	jobs  *JobStore
}

// New opens the database, runs migrations, and seeds the job catalog if the
// jobs table is empty.
//
// dbPath examples:
//   - "data/jobwise.db" → file-based, persistent
//   - ":memory:"        → in-memory, lost on close (tests)
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// An in-memory SQLite database exists per connection. database/sql is a
	// pool, so without this a second pooled connection would see an empty
	// database instead of the migrated, seeded one.
	if dbPath == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	// Force an immediate connection so a bad path surfaces here, not on the
	// first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets concurrent reads proceed while a write is in flight —
	// relevant for a web server even at this scale.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}
	db.users = &UserStore{conn: conn}
	db.jobs = &JobStore{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	if err := db.seedJobs(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: seeding catalog: %w", err)
	}

	return db, nil
}

// Users returns the user store backed by this database.
func (db *DB) Users() *UserStore {
	return db.users
}

// Jobs returns the job store backed by this database.
func (db *DB) Jobs() *JobStore {
	return db.jobs
}

// Close closes the connection pool. Always defer this next to New.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps this
// idempotent — safe on every startup.
//
// Skills are stored as a JSON array in a TEXT column on both tables. A
// normalized skills table would buy nothing here: skills are only ever read
// and written as a whole set, and matching happens in memory.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			skills        TEXT NOT NULL DEFAULT '[]',
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS jobs (
			id              TEXT PRIMARY KEY,
			title           TEXT NOT NULL,
			company         TEXT NOT NULL,
			description     TEXT NOT NULL DEFAULT '',
			required_skills TEXT NOT NULL,
			location        TEXT NOT NULL DEFAULT '',
			salary          TEXT NOT NULL DEFAULT '',
			posted_date     TEXT NOT NULL DEFAULT '',
			seed_order      INTEGER NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating jobs table: %w", err)
	}

	return nil
}

// seedJobs loads the fixed catalog into the jobs table, once.
//
// seed_order preserves the dataset's ordering: "catalog order" is the tie
// break for recommendations and the display order for listings, so List
// must return rows exactly as seeded.
func (db *DB) seedJobs() error {
	var count int
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return fmt.Errorf("counting jobs: %w", err)
	}
	if count > 0 {
		return nil // already seeded
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	for i, job := range catalog.Jobs() {
		if len(job.RequiredSkills) == 0 {
			// The matching engine guards against this too, but a posting
			// with no required skills is a dataset bug — reject at ingestion.
			return fmt.Errorf("job %s has no required skills", job.ID)
		}

		skills, err := marshalSkills(job.RequiredSkills)
		if err != nil {
			return fmt.Errorf("encoding skills for job %s: %w", job.ID, err)
		}

		_, err = tx.Exec(
			`INSERT INTO jobs (id, title, company, description, required_skills, location, salary, posted_date, seed_order)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			job.ID, job.Title, job.Company, job.Description,
			skills, job.Location, job.Salary, job.PostedDate, i,
		)
		if err != nil {
			return fmt.Errorf("inserting job %s: %w", job.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
