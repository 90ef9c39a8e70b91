package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/testutil"
)

func TestCreateCategory_Success(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	publisher := &testutil.MockPublisher{}
	svc := NewCategoryService(repo, publisher)

	category, err := svc.CreateCategory(CategoryInput{
		Name:  "  Groceries  ",
		Icon:  "cart",
		Color: "#AABB01",
		Type:  domain.TransactionTypeExpense,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if category.Name != "Groceries" {
		t.Errorf("Expected trimmed name 'Groceries', got %q", category.Name)
	}
	if category.ID == "" {
		t.Error("Expected an assigned ID")
	}

	types := publisher.EventTypes()
	if len(types) != 1 || types[0] != "category.created" {
		t.Errorf("Expected category.created event, got %v", types)
	}
}

func TestCreateCategory_NameRequired(t *testing.T) {
	svc := NewCategoryService(testutil.NewMockCategoryRepository(), nil)

	_, err := svc.CreateCategory(CategoryInput{
		Name:  "   ",
		Color: "#AABB01",
		Type:  domain.TransactionTypeExpense,
	})
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
}

func TestCreateCategory_NameTooLong(t *testing.T) {
	svc := NewCategoryService(testutil.NewMockCategoryRepository(), nil)

	_, err := svc.CreateCategory(CategoryInput{
		Name:  strings.Repeat("x", domain.MaxCategoryNameLength+1),
		Color: "#AABB01",
		Type:  domain.TransactionTypeExpense,
	})
	if !errors.Is(err, domain.ErrNameTooLong) {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestCreateCategory_InvalidType(t *testing.T) {
	svc := NewCategoryService(testutil.NewMockCategoryRepository(), nil)

	_, err := svc.CreateCategory(CategoryInput{
		Name:  "Groceries",
		Color: "#AABB01",
		Type:  "savings",
	})
	if !errors.Is(err, domain.ErrInvalidTransactionType) {
		t.Errorf("Expected ErrInvalidTransactionType, got %v", err)
	}
}

func TestCreateCategory_InvalidColor(t *testing.T) {
	svc := NewCategoryService(testutil.NewMockCategoryRepository(), nil)

	for _, color := range []string{"", "red", "#FFF", "#GGHHII", "AABB01"} {
		_, err := svc.CreateCategory(CategoryInput{
			Name:  "Groceries",
			Color: color,
			Type:  domain.TransactionTypeExpense,
		})
		if !errors.Is(err, domain.ErrInvalidColor) {
			t.Errorf("Color %q: expected ErrInvalidColor, got %v", color, err)
		}
	}
}

func TestListCategories_TypeFilter(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	repo.AddCategory(&domain.Category{ID: "food", Name: "Food", Type: domain.TransactionTypeExpense})
	repo.AddCategory(&domain.Category{ID: "salary", Name: "Salary", Type: domain.TransactionTypeIncome})
	svc := NewCategoryService(repo, nil)

	income := domain.TransactionTypeIncome
	categories, err := svc.ListCategories(&income)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(categories) != 1 || categories[0].ID != "salary" {
		t.Errorf("Expected only the income category, got %d", len(categories))
	}
}

func TestUpdateCategory_NotFound(t *testing.T) {
	svc := NewCategoryService(testutil.NewMockCategoryRepository(), nil)

	_, err := svc.UpdateCategory("missing", CategoryInput{
		Name:  "Groceries",
		Color: "#AABB01",
		Type:  domain.TransactionTypeExpense,
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}

func TestUpdateCategory_Success(t *testing.T) {
	repo := testutil.NewMockCategoryRepository()
	repo.AddCategory(&domain.Category{ID: "food", Name: "Food", Color: "#FF9800", Type: domain.TransactionTypeExpense})
	publisher := &testutil.MockPublisher{}
	svc := NewCategoryService(repo, publisher)

	updated, err := svc.UpdateCategory("food", CategoryInput{
		Name:  "Food & Drink",
		Icon:  "food",
		Color: "#FF9800",
		Type:  domain.TransactionTypeExpense,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Name != "Food & Drink" {
		t.Errorf("Expected updated name, got %q", updated.Name)
	}

	types := publisher.EventTypes()
	if len(types) != 1 || types[0] != "category.updated" {
		t.Errorf("Expected category.updated event, got %v", types)
	}
}

func TestDeleteCategory_UnknownIDIsNoOp(t *testing.T) {
	publisher := &testutil.MockPublisher{}
	svc := NewCategoryService(testutil.NewMockCategoryRepository(), publisher)

	if err := svc.DeleteCategory("missing"); err != nil {
		t.Fatalf("Expected no error deleting unknown id, got %v", err)
	}

	types := publisher.EventTypes()
	if len(types) != 1 || types[0] != "category.deleted" {
		t.Errorf("Expected category.deleted event, got %v", types)
	}
}
