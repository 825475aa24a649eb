package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/okarpov/tasktracker/internal/models"
)

func TestCategoryCreateDefaultsIcon(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := NewCategoryService(zerolog.Nop(), repo, &fakeTaskRepo{})

	category, err := svc.Create(context.Background(), "user-a", "  Work  ", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.Name != "Work" {
		t.Fatalf("expected trimmed name, got %q", category.Name)
	}
	if category.Icon != models.DefaultCategoryIcon {
		t.Fatalf("expected default icon, got %q", category.Icon)
	}
	if category.ID == "" || category.UserID != "user-a" {
		t.Fatalf("unexpected category: %+v", category)
	}
}

func TestCategoryCreateKeepsProvidedIcon(t *testing.T) {
	svc := NewCategoryService(zerolog.Nop(), &fakeCategoryRepo{}, &fakeTaskRepo{})

	category, err := svc.Create(context.Background(), "user-a", "Work", "💼")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.Icon != "💼" {
		t.Fatalf("expected provided icon, got %q", category.Icon)
	}
}

func TestCategoryCreateEmptyName(t *testing.T) {
	svc := NewCategoryService(zerolog.Nop(), &fakeCategoryRepo{}, &fakeTaskRepo{})

	_, err := svc.Create(context.Background(), "user-a", "   ", "")
	if !errors.Is(err, ErrEmptyCategoryName) {
		t.Fatalf("expected ErrEmptyCategoryName, got %v", err)
	}
}

func TestCategoryListCountsAndOrder(t *testing.T) {
	categories := &fakeCategoryRepo{}
	tasks := &fakeTaskRepo{}
	svc := NewCategoryService(zerolog.Nop(), categories, tasks)

	work, err := svc.Create(context.Background(), "user-a", "Work", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	home, err := svc.Create(context.Background(), "user-a", "Home", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err = svc.Create(context.Background(), "user-b", "Other", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks.tasks = []*models.Task{
		{ID: "t1", UserID: "user-a", CategoryID: work.ID},
		{ID: "t2", UserID: "user-a", CategoryID: work.ID},
		{ID: "t3", UserID: "user-a", CategoryID: home.ID},
	}

	listed, err := svc.ListByOwner(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(listed))
	}
	// Most recently created first.
	if listed[0].ID != home.ID || listed[1].ID != work.ID {
		t.Fatalf("unexpected order: %q, %q", listed[0].Name, listed[1].Name)
	}
	if listed[0].TaskCount != 1 || listed[1].TaskCount != 2 {
		t.Fatalf("unexpected counts: %d, %d", listed[0].TaskCount, listed[1].TaskCount)
	}
}

func TestCategoryGetByIDNotFound(t *testing.T) {
	svc := NewCategoryService(zerolog.Nop(), &fakeCategoryRepo{}, &fakeTaskRepo{})

	_, err := svc.GetByID(context.Background(), "user-a", "missing")
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryGetByIDForbidden(t *testing.T) {
	svc := NewCategoryService(zerolog.Nop(), &fakeCategoryRepo{}, &fakeTaskRepo{})

	category, err := svc.Create(context.Background(), "user-a", "Work", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetByID(context.Background(), "user-b", category.ID)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if got != nil {
		t.Fatal("resource data must not leak to a non-owner")
	}
}

func TestCategoryDeleteCascades(t *testing.T) {
	categories := &fakeCategoryRepo{}
	tasks := &fakeTaskRepo{}
	catSvc := NewCategoryService(zerolog.Nop(), categories, tasks)
	taskSvc := NewTaskService(zerolog.Nop(), tasks, categories)

	category, err := catSvc.Create(context.Background(), "user-a", "Work", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	task, err := taskSvc.Create(context.Background(), "user-a", category.ID, "Water the plants")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = catSvc.Delete(context.Background(), "user-a", category.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = catSvc.GetByID(context.Background(), "user-a", category.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound after delete, got %v", err)
	}

	remaining, err := taskSvc.ListByCategory(context.Background(), "user-a", category.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected no surviving tasks, got %d", len(remaining))
	}
	if _, err = taskSvc.ToggleCompleted(context.Background(), "user-a", task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected task to be unrecoverable, got %v", err)
	}
}

func TestCategoryDeleteForbiddenLeavesTasks(t *testing.T) {
	categories := &fakeCategoryRepo{}
	tasks := &fakeTaskRepo{}
	catSvc := NewCategoryService(zerolog.Nop(), categories, tasks)
	taskSvc := NewTaskService(zerolog.Nop(), tasks, categories)

	category, err := catSvc.Create(context.Background(), "user-a", "Work", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err = taskSvc.Create(context.Background(), "user-a", category.ID, "Water the plants"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = catSvc.Delete(context.Background(), "user-b", category.ID)
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if len(tasks.tasks) != 1 {
		t.Fatal("cascade must not run for a non-owner")
	}
}
