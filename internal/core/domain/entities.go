package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the resolved caller context derived from a bearer credential.
// UserID is always set; the remaining fields are populated only when the
// resolver is wired to a user store.
type Identity struct {
	UserID         string
	Email          string
	Name           string
	DocumentNumber string
}

// User is a row of the users table.
type User struct {
	ID             string
	Email          string
	Name           string
	DocumentNumber string
}

// File is a row of the files table, owned by the persistence side of the
// system. The gateway reads it only to report processing status.
type File struct {
	ID            uuid.UUID
	UserID        string
	FilePath      *string
	FileName      string
	Authenticated bool
	Type          *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
