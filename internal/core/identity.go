package core

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated caller as asserted by the identity provider.
type Identity struct {
	UserID    uuid.UUID
	Username  string
	FirstName string
	LastName  string
}

// IdentityService keeps local user rows in step with the identity provider.
type IdentityService interface {
	SyncUser(ctx context.Context, identity Identity) (*User, error)
}
