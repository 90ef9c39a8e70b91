package service

import (
	"regexp"
	"strings"

	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/websocket"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CategoryService handles category-related business logic
type CategoryService struct {
	categoryRepo domain.CategoryRepository
	publisher    websocket.EventPublisher
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository, publisher websocket.EventPublisher) *CategoryService {
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}
	return &CategoryService{
		categoryRepo: categoryRepo,
		publisher:    publisher,
	}
}

// CategoryInput holds the input for creating or updating a category
type CategoryInput struct {
	Name  string
	Icon  string
	Color string
	Type  domain.TransactionType
}

func validateCategoryInput(input CategoryInput) (CategoryInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, domain.ErrNameRequired
	}
	if len(input.Name) > domain.MaxCategoryNameLength {
		return input, domain.ErrNameTooLong
	}
	if !input.Type.Valid() {
		return input, domain.ErrInvalidTransactionType
	}
	if !colorPattern.MatchString(input.Color) {
		return input, domain.ErrInvalidColor
	}
	return input, nil
}

// CreateCategory creates a new category with validation
func (s *CategoryService) CreateCategory(input CategoryInput) (*domain.Category, error) {
	input, err := validateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:  input.Name,
		Icon:  input.Icon,
		Color: input.Color,
		Type:  input.Type,
	}

	saved, err := s.categoryRepo.Save(category)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(websocket.CategoryCreated(saved))
	return saved, nil
}

// ListCategories returns categories in persisted order, optionally
// restricted to one type. The first read on an empty store seeds the
// defaults.
func (s *CategoryService) ListCategories(txType *domain.TransactionType) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}

	if txType == nil {
		return categories, nil
	}

	filtered := make([]*domain.Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == *txType {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// UpdateCategory replaces the category with the given id. Existing
// transactions keep their embedded snapshot of the old values unless
// they are explicitly re-saved.
func (s *CategoryService) UpdateCategory(id string, input CategoryInput) (*domain.Category, error) {
	input, err := validateCategoryInput(input)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:    id,
		Name:  input.Name,
		Icon:  input.Icon,
		Color: input.Color,
		Type:  input.Type,
	}

	updated, err := s.categoryRepo.Update(category)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(websocket.CategoryUpdated(updated))
	return updated, nil
}

// DeleteCategory removes a category. Deleting an id that does not exist
// succeeds without effect.
func (s *CategoryService) DeleteCategory(id string) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.publisher.Publish(websocket.CategoryDeleted(map[string]string{"id": id}))
	return nil
}
