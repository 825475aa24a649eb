package v1

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/okarpov/tasktracker/internal/models"
	"github.com/okarpov/tasktracker/internal/repository"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	return resp.Message
}

// In-memory repositories backing the router tests. Listings return
// newest first, matching the SQL implementations.

type memUserRepo struct {
	users []*models.User
}

func (m *memUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email || u.PhoneNo == user.PhoneNo {
			return repository.ErrDuplicateIdentity
		}
	}
	copied := *user
	m.users = append(m.users, &copied)
	return nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memCategoryRepo struct {
	categories []*models.Category
}

func (m *memCategoryRepo) Create(_ context.Context, category *models.Category) error {
	copied := *category
	m.categories = append(m.categories, &copied)
	return nil
}

func (m *memCategoryRepo) ListByOwner(_ context.Context, ownerID string) ([]*models.Category, error) {
	var out []*models.Category
	for i := len(m.categories) - 1; i >= 0; i-- {
		if m.categories[i].UserID == ownerID {
			copied := *m.categories[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memCategoryRepo) GetByID(_ context.Context, id string) (*models.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memCategoryRepo) Delete(_ context.Context, id string) error {
	for i, c := range m.categories {
		if c.ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memTaskRepo struct {
	tasks []*models.Task
}

func (m *memTaskRepo) Create(_ context.Context, task *models.Task) error {
	copied := *task
	m.tasks = append(m.tasks, &copied)
	return nil
}

func (m *memTaskRepo) ListByCategoryAndOwner(_ context.Context, categoryID, ownerID string) ([]*models.Task, error) {
	var out []*models.Task
	for i := len(m.tasks) - 1; i >= 0; i-- {
		if m.tasks[i].CategoryID == categoryID && m.tasks[i].UserID == ownerID {
			copied := *m.tasks[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memTaskRepo) GetByID(_ context.Context, id string) (*models.Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memTaskRepo) SetCompleted(_ context.Context, id string, completed bool) error {
	for _, t := range m.tasks {
		if t.ID == id {
			t.Completed = completed
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memTaskRepo) Delete(_ context.Context, id string) error {
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memTaskRepo) DeleteByCategory(_ context.Context, categoryID string) error {
	var kept []*models.Task
	for _, t := range m.tasks {
		if t.CategoryID != categoryID {
			kept = append(kept, t)
		}
	}
	m.tasks = kept
	return nil
}

func (m *memTaskRepo) CountByCategory(_ context.Context, categoryID string) (int, error) {
	count := 0
	for _, t := range m.tasks {
		if t.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}
