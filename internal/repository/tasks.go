package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/okarpov/tasktracker/internal/models"
)

type taskRepositoryImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTaskRepository(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) TaskRepository {
	return &taskRepositoryImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (r *taskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	const insertTaskQuery = `
INSERT INTO tasks (id,
                   user_id,
                   category_id,
                   description,
                   completed,
                   created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.pgPool.Exec(
		ctx,
		insertTaskQuery,
		task.ID,
		task.UserID,
		task.CategoryID,
		task.Description,
		task.Completed,
		task.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return err
	}
	r.logger.Debug().
		Str("task_id", task.ID).
		Msg("inserted task")
	return nil
}

func (r *taskRepositoryImpl) ListByCategoryAndOwner(ctx context.Context, categoryID, ownerID string) ([]*models.Task, error) {
	const selectTasksQuery = `
SELECT id,
       description,
       completed,
       created_at
FROM tasks
WHERE category_id = $1 AND
      user_id = $2
ORDER BY created_at DESC
`
	rows, err := r.pgPool.Query(
		ctx,
		selectTasksQuery,
		categoryID,
		ownerID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to select tasks by category and owner")
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{
			UserID:     ownerID,
			CategoryID: categoryID,
		}
		err = rows.Scan(
			&task.ID,
			&task.Description,
			&task.Completed,
			&task.CreatedAt,
		)
		if err != nil {
			r.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	r.logger.Debug().
		Int("count", len(tasks)).
		Str("category_id", categoryID).
		Msg("selected tasks by category and owner")
	return tasks, nil
}

func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (*models.Task, error) {
	task := &models.Task{ID: id}

	const selectTaskByIDQuery = `
SELECT user_id,
       category_id,
       description,
       completed,
       created_at
FROM tasks
WHERE id = $1
`
	err := r.pgPool.QueryRow(
		ctx,
		selectTaskByIDQuery,
		task.ID,
	).Scan(
		&task.UserID,
		&task.CategoryID,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		r.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to select task by id")
		return nil, err
	}
	r.logger.Debug().
		Str("task_id", task.ID).
		Msg("selected task by id")
	return task, nil
}

func (r *taskRepositoryImpl) SetCompleted(ctx context.Context, id string, completed bool) error {
	const updateTaskCompletedQuery = `
UPDATE tasks
SET completed = $1
WHERE id = $2
`
	tag, err := r.pgPool.Exec(
		ctx,
		updateTaskCompletedQuery,
		completed,
		id,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to update task completed flag")
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	r.logger.Debug().
		Str("task_id", id).
		Bool("completed", completed).
		Msg("updated task completed flag")
	return nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
`
	tag, err := r.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		id,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	r.logger.Debug().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}

func (r *taskRepositoryImpl) DeleteByCategory(ctx context.Context, categoryID string) error {
	const deleteTasksByCategoryQuery = `
DELETE FROM tasks
WHERE category_id = $1
`
	tag, err := r.pgPool.Exec(
		ctx,
		deleteTasksByCategoryQuery,
		categoryID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("category_id", categoryID).
			Msg("failed to delete tasks by category")
		return err
	}
	r.logger.Debug().
		Str("category_id", categoryID).
		Int64("affected", tag.RowsAffected()).
		Msg("deleted tasks by category")
	return nil
}

func (r *taskRepositoryImpl) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	const countTasksByCategoryQuery = `
SELECT COUNT(*)
FROM tasks
WHERE category_id = $1
`
	var count int
	err := r.pgPool.QueryRow(
		ctx,
		countTasksByCategoryQuery,
		categoryID,
	).Scan(&count)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("category_id", categoryID).
			Msg("failed to count tasks by category")
		return 0, err
	}
	return count, nil
}
