package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/argentum-labs/argentum/internal/domain/entity"
	"github.com/argentum-labs/argentum/internal/domain/valueobject"
)

// UserRepository is the persistence port over users, keyed by id, email and
// username. Find methods return (nil, nil) on a miss. Save surfaces a
// storage-level uniqueness conflict as *domainerr.UserAlreadyExistsError;
// the use cases' existence pre-checks are an early exit, not the sole
// correctness guarantee.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
