// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account identity. Energy data hangs off its ID.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Login identifier, unique.
	Name      string    // Display name.
	Roles     Roles     // Roles carried in access tokens.
	Profile   *Profile  // Loaded on demand; nil until the profile exists.
	CreatedAt time.Time
	UpdatedAt time.Time
}
