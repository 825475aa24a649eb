package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/okarpov/tasktracker/internal/models"
	"github.com/okarpov/tasktracker/internal/repository"
)

type categoryServiceImpl struct {
	logger     zerolog.Logger
	categories repository.CategoryRepository
	tasks      repository.TaskRepository
}

func NewCategoryService(
	logger zerolog.Logger,
	categories repository.CategoryRepository,
	tasks repository.TaskRepository,
) CategoryService {
	return &categoryServiceImpl{
		logger:     logger,
		categories: categories,
		tasks:      tasks,
	}
}

func (s *categoryServiceImpl) Create(ctx context.Context, ownerID, name, icon string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCategoryName
	}
	if icon == "" {
		icon = models.DefaultCategoryIcon
	}

	category := &models.Category{
		UserID:    ownerID,
		Name:      name,
		Icon:      icon,
		CreatedAt: time.Now(),
	}

	categoryUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate category uuid")
		return nil, err
	}
	category.ID = categoryUUID.String()

	err = s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("category_id", category.ID).
		Str("user_id", ownerID).
		Msg("created category")
	return category, nil
}

func (s *categoryServiceImpl) ListByOwner(ctx context.Context, ownerID string) ([]*models.Category, error) {
	categories, err := s.categories.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// Counts are recomputed on every read so they can never drift
	// from the task store.
	for _, category := range categories {
		count, err := s.tasks.CountByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		category.TaskCount = count
	}

	s.logger.Debug().
		Int("count", len(categories)).
		Str("user_id", ownerID).
		Msg("listed categories")
	return categories, nil
}

func (s *categoryServiceImpl) GetByID(ctx context.Context, ownerID, id string) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	if category.UserID != ownerID {
		s.logger.Warn().
			Str("category_id", id).
			Str("user_id", ownerID).
			Msg("category owned by another user")
		return nil, ErrNotOwner
	}
	return category, nil
}

func (s *categoryServiceImpl) Delete(ctx context.Context, ownerID, id string) error {
	_, err := s.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}

	// Tasks go first. If the second step fails the worst case is an
	// empty category left behind, never tasks without a category.
	err = s.tasks.DeleteByCategory(ctx, id)
	if err != nil {
		return err
	}

	err = s.categories.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	s.logger.Info().
		Str("category_id", id).
		Str("user_id", ownerID).
		Msg("deleted category and its tasks")
	return nil
}
