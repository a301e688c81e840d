package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/arbiter/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByIdentifier looks a user up by username OR email in one query.
	GetByIdentifier(ctx context.Context, usernameOrEmail string) (*domain.User, error)
	// GetByUsernameOrEmail returns any user holding either value, used for
	// the single registration conflict check.
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
}

type DebateRepository interface {
	Create(ctx context.Context, debate *domain.Debate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Debate, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Debate, error)
}
