package controllers

import (
	"context"
	"net/http"
	"testing"

	"aurora-backend/models"
	"aurora-backend/repositories"
)

func TestCreateCategoryNameConflict(t *testing.T) {
	categories := &fakeCategoryRepo{
		NameTakenFn: func(ctx context.Context, name, excludeID string) (bool, error) {
			return name == "Cabello", nil
		},
		CreateFn: func(ctx context.Context, c *models.ServiceCategory) (*repositories.CategoryRecord, error) {
			t.Fatal("create should not be reached")
			return nil, nil
		},
	}
	controller := NewCategoryController(categories, testLogger)

	body := map[string]any{"name": "Cabello"}
	w := perform(t, http.MethodPost, "/api/categories", "/api/categories", body, adminPrincipal, controller.Create)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if msg := errorMessage(t, w); msg != "A category with that name already exists" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestCreateCategory(t *testing.T) {
	categories := &fakeCategoryRepo{
		NameTakenFn: func(ctx context.Context, name, excludeID string) (bool, error) {
			return false, nil
		},
		CreateFn: func(ctx context.Context, c *models.ServiceCategory) (*repositories.CategoryRecord, error) {
			c.ID = "cat-new"
			return &repositories.CategoryRecord{ServiceCategory: *c}, nil
		},
	}
	controller := NewCategoryController(categories, testLogger)

	body := map[string]any{"name": "Maquillaje", "description": "Maquillaje profesional", "color": "#FBBF24"}
	w := perform(t, http.MethodPost, "/api/categories", "/api/categories", body, adminPrincipal, controller.Create)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp CategoryResponse
	decode(t, w, &resp)
	if resp.Name != "Maquillaje" || !resp.Enabled {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestUpdateCategoryRenameConflict(t *testing.T) {
	categories := &fakeCategoryRepo{
		FindByIDFn: func(ctx context.Context, id string) (*models.ServiceCategory, error) {
			return &models.ServiceCategory{ID: id, Name: "Uñas", State: models.LifecycleActive}, nil
		},
		NameTakenFn: func(ctx context.Context, name, excludeID string) (bool, error) {
			if excludeID != "cat-nails" {
				t.Errorf("conflict check should exclude the row itself, got %q", excludeID)
			}
			return true, nil
		},
	}
	controller := NewCategoryController(categories, testLogger)

	body := map[string]any{"name": "Cabello"}
	w := perform(t, http.MethodPut, "/api/categories/:id", "/api/categories/cat-nails", body, adminPrincipal, controller.Update)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeleteCategoryWithActiveServices(t *testing.T) {
	categories := &fakeCategoryRepo{
		SoftDeleteFn: func(ctx context.Context, id string) error {
			return repositories.ErrDependency
		},
	}
	controller := NewCategoryController(categories, testLogger)

	w := perform(t, http.MethodDelete, "/api/categories/:id", "/api/categories/cat-hair", nil, adminPrincipal, controller.Delete)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if msg := errorMessage(t, w); msg != "Cannot delete a category that has active services" {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestDeleteCategory(t *testing.T) {
	var deletedID string
	categories := &fakeCategoryRepo{
		SoftDeleteFn: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	controller := NewCategoryController(categories, testLogger)

	w := perform(t, http.MethodDelete, "/api/categories/:id", "/api/categories/cat-massage", nil, adminPrincipal, controller.Delete)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if deletedID != "cat-massage" {
		t.Errorf("deleted id = %q", deletedID)
	}
}
