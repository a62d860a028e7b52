package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eslsoft/coursecatalog/internal/core"
)

// IdentityService mirrors identity provider claims into the users table.
type IdentityService struct {
	repo core.DirectoryRepository
	now  func() time.Time
}

// NewIdentityService constructs an IdentityService.
func NewIdentityService(repo core.DirectoryRepository) *IdentityService {
	return &IdentityService{repo: repo, now: time.Now}
}

// WithClock allows tests to override the clock used by the service.
func (s *IdentityService) WithClock(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

var _ core.IdentityService = (*IdentityService)(nil)

// SyncUser inserts or refreshes the caller's user row.
func (s *IdentityService) SyncUser(ctx context.Context, identity core.Identity) (*core.User, error) {
	if identity.UserID == uuid.Nil {
		return nil, core.ErrUnauthenticated
	}

	now := s.now().UTC()
	return s.repo.UpsertUser(ctx, core.User{
		ID:        identity.UserID,
		Username:  identity.Username,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
