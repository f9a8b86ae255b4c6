// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// Every task is owned by exactly one user, fixed at task creation.
type User struct {
	ID           uuid.UUID `json:"id"`    // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"` // The user's login identifier. Unique across all accounts.
	PasswordHash string    `json:"-"`     // bcrypt hash of the password. Never serialized in any read path.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
