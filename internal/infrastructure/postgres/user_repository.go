package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/argentum-labs/argentum/internal/domain/domainerr"
	"github.com/argentum-labs/argentum/internal/domain/entity"
	"github.com/argentum-labs/argentum/internal/domain/repository"
	"github.com/argentum-labs/argentum/internal/domain/valueobject"
)

const userColumns = "id, email, hashed_password, username, is_active, is_verified, created_at, updated_at"

// UserRepository is the pgx-backed implementation of the user directory.
// The users table carries unique indexes on email and username; a violation
// on either is surfaced as *domainerr.UserAlreadyExistsError, which closes
// the pre-check race in the register flow.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, email, hashed_password, username, is_active, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+userColumns,
		u.ID(), u.Email().String(), u.HashedPassword().Value(), u.Username(),
		u.IsActive(), u.IsVerified(), u.CreatedAt(), u.UpdatedAt())

	saved, err := scanUser(row)
	if err != nil {
		return nil, mapUniqueViolation(err, u)
	}
	return saved, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	return r.findOne(ctx, "email = $1", email.String())
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, "username = $1", username)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users
		SET email = $1, hashed_password = $2, username = $3, is_active = $4, is_verified = $5, updated_at = $6
		WHERE id = $7
		RETURNING `+userColumns,
		u.Email().String(), u.HashedPassword().Value(), u.Username(),
		u.IsActive(), u.IsVerified(), u.UpdatedAt(), u.ID())

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domainerr.UserNotFoundError{Identifier: u.ID().String()}
		}
		return nil, mapUniqueViolation(err, u)
	}
	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	return r.exists(ctx, "email = $1", email.String())
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = $1", username)
}

func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) exists(ctx context.Context, where string, arg any) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE `+where+`)`, arg).Scan(&found)
	return found, err
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id                   uuid.UUID
		emailRaw, hashRaw    string
		username             string
		isActive, isVerified bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &emailRaw, &hashRaw, &username, &isActive, &isVerified, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(emailRaw)
	if err != nil {
		return nil, err
	}
	hash, err := valueobject.NewHashedPassword(hashRaw)
	if err != nil {
		return nil, err
	}
	return entity.Rehydrate(id, email, hash, username, isActive, isVerified, createdAt, updatedAt)
}

// mapUniqueViolation translates a Postgres unique_violation on the email or
// username index into the domain conflict error. Other errors pass through.
func mapUniqueViolation(err error, u *entity.User) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	if strings.Contains(pgErr.ConstraintName, "username") {
		return &domainerr.UserAlreadyExistsError{Field: "username", Value: u.Username()}
	}
	return &domainerr.UserAlreadyExistsError{Field: "email", Value: u.Email().String()}
}

var _ repository.UserRepository = (*UserRepository)(nil)
