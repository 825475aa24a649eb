package services

import (
	"context"

	"github.com/okarpov/tasktracker/internal/models"
	"github.com/okarpov/tasktracker/internal/repository"
)

// In-memory repositories for exercising the services without a
// database. Slices keep insertion order; listings return newest first
// like the SQL implementations.

type fakeUserRepo struct {
	users []*models.User
	err   error
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email || u.PhoneNo == user.PhoneNo {
			return repository.ErrDuplicateIdentity
		}
	}
	copied := *user
	f.users = append(f.users, &copied)
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeCategoryRepo struct {
	categories []*models.Category
	err        error
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	if f.err != nil {
		return f.err
	}
	copied := *category
	f.categories = append(f.categories, &copied)
	return nil
}

func (f *fakeCategoryRepo) ListByOwner(_ context.Context, ownerID string) ([]*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Category
	for i := len(f.categories) - 1; i >= 0; i-- {
		if f.categories[i].UserID == ownerID {
			copied := *f.categories[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.categories {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeTaskRepo struct {
	tasks []*models.Task
	err   error
}

func (f *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	if f.err != nil {
		return f.err
	}
	copied := *task
	f.tasks = append(f.tasks, &copied)
	return nil
}

func (f *fakeTaskRepo) ListByCategoryAndOwner(_ context.Context, categoryID, ownerID string) ([]*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Task
	for i := len(f.tasks) - 1; i >= 0; i-- {
		if f.tasks[i].CategoryID == categoryID && f.tasks[i].UserID == ownerID {
			copied := *f.tasks[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tasks {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTaskRepo) SetCompleted(_ context.Context, id string, completed bool) error {
	if f.err != nil {
		return f.err
	}
	for _, t := range f.tasks {
		if t.ID == id {
			t.Completed = completed
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeTaskRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeTaskRepo) DeleteByCategory(_ context.Context, categoryID string) error {
	if f.err != nil {
		return f.err
	}
	var kept []*models.Task
	for _, t := range f.tasks {
		if t.CategoryID != categoryID {
			kept = append(kept, t)
		}
	}
	f.tasks = kept
	return nil
}

func (f *fakeTaskRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	count := 0
	for _, t := range f.tasks {
		if t.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}
