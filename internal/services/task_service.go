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

type taskServiceImpl struct {
	logger     zerolog.Logger
	tasks      repository.TaskRepository
	categories repository.CategoryRepository
}

func NewTaskService(
	logger zerolog.Logger,
	tasks repository.TaskRepository,
	categories repository.CategoryRepository,
) TaskService {
	return &taskServiceImpl{
		logger:     logger,
		tasks:      tasks,
		categories: categories,
	}
}

func (s *taskServiceImpl) Create(ctx context.Context, ownerID, categoryID, description string) (*models.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	// Only existence of the category is checked here; its owner is not
	// compared against the caller. See DESIGN.md for the rationale.
	_, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	task := &models.Task{
		UserID:      ownerID,
		CategoryID:  categoryID,
		Description: description,
		Completed:   false,
		CreatedAt:   time.Now(),
	}

	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, err
	}
	task.ID = taskUUID.String()

	err = s.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("category_id", categoryID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) ListByCategory(ctx context.Context, ownerID, categoryID string) ([]*models.Task, error) {
	tasks, err := s.tasks.ListByCategoryAndOwner(ctx, categoryID, ownerID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Str("category_id", categoryID).
		Msg("listed tasks")
	return tasks, nil
}

func (s *taskServiceImpl) ToggleCompleted(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	task, err := s.getOwnedTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	err = s.tasks.SetCompleted(ctx, task.ID, task.Completed)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Bool("completed", task.Completed).
		Msg("toggled task")
	return task, nil
}

func (s *taskServiceImpl) Delete(ctx context.Context, ownerID, taskID string) error {
	_, err := s.getOwnedTask(ctx, ownerID, taskID)
	if err != nil {
		return err
	}

	err = s.tasks.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	s.logger.Info().
		Str("task_id", taskID).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) getOwnedTask(ctx context.Context, ownerID, taskID string) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if task.UserID != ownerID {
		s.logger.Warn().
			Str("task_id", taskID).
			Str("user_id", ownerID).
			Msg("task owned by another user")
		return nil, ErrNotOwner
	}
	return task, nil
}
