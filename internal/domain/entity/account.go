// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Account is the core entity in the system, representing a registered user
// identity. The numeric ID is assigned by the store on creation and is
// immutable afterwards, as is the username.
type Account struct {
	ID           int64     // Store-assigned identifier.
	Username     string    // Unique login name, case-sensitive.
	Email        string    // Contact email.
	PasswordHash string    // Derived credential. Never empty, never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	ModifiedAt   time.Time // Timestamp of the last modification to this account.
}
