package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/okarpov/tasktracker/internal/models"
)

type userRepositoryImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewUserRepository(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) UserRepository {
	return &userRepositoryImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (r *userRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	const insertUserQuery = `
INSERT INTO users (id,
                   username,
                   email,
                   phone_no,
                   password,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.pgPool.Exec(
		ctx,
		insertUserQuery,
		user.ID,
		user.Username,
		user.Email,
		user.PhoneNo,
		user.Password,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			r.logger.Error().
				Str("email", user.Email).
				Msg("user with this email or phone already exists")
			return ErrDuplicateIdentity
		}

		r.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return err
	}
	r.logger.Debug().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("inserted user")
	return nil
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{Email: email}

	const selectUserByEmailQuery = `
SELECT id,
       username,
       phone_no,
       password,
       created_at,
       updated_at
FROM users
WHERE email = $1
`
	err := r.pgPool.QueryRow(
		ctx,
		selectUserByEmailQuery,
		user.Email,
	).Scan(
		&user.ID,
		&user.Username,
		&user.PhoneNo,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		r.logger.Error().
			Err(err).
			Msg("failed to select user by email")
		return nil, err
	}
	r.logger.Debug().
		Str("user_id", user.ID).
		Msg("selected user by email")
	return user, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{ID: id}

	const selectUserByIDQuery = `
SELECT username,
       email,
       phone_no,
       password,
       created_at,
       updated_at
FROM users
WHERE id = $1
`
	err := r.pgPool.QueryRow(
		ctx,
		selectUserByIDQuery,
		user.ID,
	).Scan(
		&user.Username,
		&user.Email,
		&user.PhoneNo,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		r.logger.Error().
			Err(err).
			Str("user_id", user.ID).
			Msg("failed to select user by id")
		return nil, err
	}
	r.logger.Debug().
		Str("user_id", user.ID).
		Msg("selected user by id")
	return user, nil
}
