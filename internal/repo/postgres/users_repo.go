package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medixpro/medixpro/internal/domain/user"
	"github.com/medixpro/medixpro/internal/observability"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailAlreadyUsed = errors.New("email already in use")
)

type UsersRepo struct {
	pool *pgxpool.Pool
	obs  *observability.Prom
}

func NewUsersRepo(pool *pgxpool.Pool, obs *observability.Prom) *UsersRepo {
	return &UsersRepo{pool: pool, obs: obs}
}

const userColumns = `id, email, password_hash, name, role, avatar, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Role,
		&u.Avatar,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	return u, err
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User

	err := r.obs.ObserveDB("users.get_by_email", func() error {
		var err error
		u, err = scanUser(r.pool.QueryRow(
			ctx,
			`SELECT `+userColumns+` FROM users WHERE email = $1`,
			email,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, ErrUserNotFound
		}

		return user.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	var u user.User

	err := r.obs.ObserveDB("users.get_by_id", func() error {
		var err error
		u, err = scanUser(r.pool.QueryRow(
			ctx,
			`SELECT `+userColumns+` FROM users WHERE id = $1`,
			id,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, ErrUserNotFound
		}

		return user.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) Create(ctx context.Context, u user.User) error {
	err := r.obs.ObserveDB("users.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO users (id, email, password_hash, name, role, avatar, created_at, updated_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			u.ID, u.Email, u.PasswordHash, u.Name, u.Role, u.Avatar, u.CreatedAt, u.UpdatedAt,
		)
		return err
	})

	if isUniqueViolation(err) {
		return ErrEmailAlreadyUsed
	}

	return err
}

func (r *UsersRepo) UpdateProfile(ctx context.Context, id, name, avatar string) (user.User, error) {
	var u user.User

	err := r.obs.ObserveDB("users.update_profile", func() error {
		var err error
		u, err = scanUser(r.pool.QueryRow(
			ctx,
			`UPDATE users
				SET name = $2,
					avatar = $3,
					updated_at = NOW()
			 WHERE id = $1
			 RETURNING `+userColumns,
			id, name, avatar,
		))
		return err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, ErrUserNotFound
		}

		return user.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	var tag pgconn.CommandTag

	err := r.obs.ObserveDB("users.update_password", func() error {
		t, err := r.pool.Exec(ctx,
			`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`,
			id, passwordHash,
		)
		tag = t
		return err
	})

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
