package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/okarpov/tasktracker/internal/models"
)

type categoryRepositoryImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewCategoryRepository(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) CategoryRepository {
	return &categoryRepositoryImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (r *categoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	const insertCategoryQuery = `
INSERT INTO categories (id,
                        user_id,
                        name,
                        icon,
                        created_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := r.pgPool.Exec(
		ctx,
		insertCategoryQuery,
		category.ID,
		category.UserID,
		category.Name,
		category.Icon,
		category.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to insert category")
		return err
	}
	r.logger.Debug().
		Str("category_id", category.ID).
		Msg("inserted category")
	return nil
}

func (r *categoryRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]*models.Category, error) {
	const selectCategoriesByOwnerQuery = `
SELECT id,
       name,
       icon,
       created_at
FROM categories
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pgPool.Query(
		ctx,
		selectCategoriesByOwnerQuery,
		ownerID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to select categories by owner")
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		category := &models.Category{UserID: ownerID}
		err = rows.Scan(
			&category.ID,
			&category.Name,
			&category.Icon,
			&category.CreatedAt,
		)
		if err != nil {
			r.logger.Error().
				Err(err).
				Msg("failed to scan category")
			return nil, err
		}
		categories = append(categories, category)
	}

	err = rows.Err()
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	r.logger.Debug().
		Int("count", len(categories)).
		Str("user_id", ownerID).
		Msg("selected categories by owner")
	return categories, nil
}

func (r *categoryRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Category, error) {
	category := &models.Category{ID: id}

	const selectCategoryByIDQuery = `
SELECT user_id,
       name,
       icon,
       created_at
FROM categories
WHERE id = $1
`
	err := r.pgPool.QueryRow(
		ctx,
		selectCategoryByIDQuery,
		category.ID,
	).Scan(
		&category.UserID,
		&category.Name,
		&category.Icon,
		&category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		r.logger.Error().
			Err(err).
			Str("category_id", category.ID).
			Msg("failed to select category by id")
		return nil, err
	}
	r.logger.Debug().
		Str("category_id", category.ID).
		Msg("selected category by id")
	return category, nil
}

func (r *categoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	const deleteCategoryQuery = `
DELETE FROM categories
WHERE id = $1
`
	tag, err := r.pgPool.Exec(
		ctx,
		deleteCategoryQuery,
		id,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("category_id", id).
			Msg("failed to delete category")
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	r.logger.Debug().
		Str("category_id", id).
		Msg("deleted category")
	return nil
}
