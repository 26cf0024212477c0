// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other
// languages, but without inheritance. Go favours composition over inheritance.
package model

import "time"

// User represents a registered job-seeker profile.
//
// The email address is the login lookup key and must be unique in the store.
// We still generate our own internal string ID (xid) so nothing else in the
// system depends on the email as a primary key — a user could change their
// email later without breaking references.
//
// WHY PasswordHash AND NOT Password?
// We only ever store the bcrypt hash of the password. The `json:"-"` tag
// tells encoding/json to NEVER serialize this field, so it can't leak into
// an API response by accident. The plaintext password exists only for the
// duration of a register/login request.
type User struct {
	ID           string    `json:"id"        db:"id"`
	Name         string    `json:"name"      db:"name"`
	Email        string    `json:"email"     db:"email"` // unique login key
	PasswordHash string    `json:"-"         db:"password_hash"`
	Skills       []string  `json:"skills"    db:"skills"` // declared skills, no duplicates
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
