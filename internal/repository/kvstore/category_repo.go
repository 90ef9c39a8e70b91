package kvstore

import (
	"github.com/flowtrack/flowtrack-backend/internal/domain"
	"github.com/flowtrack/flowtrack-backend/internal/kv"
	"github.com/rs/zerolog/log"
)

// CategoryRepository persists categories as one JSON blob, seeding the
// default set the first time the collection is read from an empty
// store.
type CategoryRepository struct {
	store kv.Store
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(store kv.Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns all categories in persisted order. When the backing key
// has never been written, the default categories are written and
// returned; an explicitly persisted empty list stays empty, which keeps
// seeding idempotent.
func (r *CategoryRepository) List() ([]*domain.Category, error) {
	var categories []*domain.Category
	ok, err := readCollection(r.store, categoriesKey, &categories)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read categories")
		return nil, err
	}
	if !ok {
		return r.seedDefaults()
	}
	if categories == nil {
		return []*domain.Category{}, nil
	}
	return categories, nil
}

func (r *CategoryRepository) seedDefaults() ([]*domain.Category, error) {
	seeded := make([]*domain.Category, len(domain.DefaultCategories))
	for i, c := range domain.DefaultCategories {
		clone := *c
		seeded[i] = &clone
	}
	if err := writeCollection(r.store, categoriesKey, seeded); err != nil {
		log.Error().Err(err).Msg("Failed to seed default categories")
		return nil, err
	}
	log.Info().Int("count", len(seeded)).Msg("Seeded default categories")
	return seeded, nil
}

// Save assigns an id when the category has none, appends it and
// persists the collection.
func (r *CategoryRepository) Save(category *domain.Category) (*domain.Category, error) {
	if category.ID == "" {
		category.ID = newID()
	}

	categories, err := r.List()
	if err != nil {
		return nil, err
	}
	categories = append(categories, category)

	if err := writeCollection(r.store, categoriesKey, categories); err != nil {
		log.Error().Err(err).Str("category_id", category.ID).Msg("Failed to save category")
		return nil, err
	}
	return category, nil
}

// Update replaces the category with the same id in place. Unlike the
// mobile app, a missing id is an error here rather than a silent no-op;
// transactions and categories now behave the same way.
func (r *CategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	categories, err := r.List()
	if err != nil {
		return nil, err
	}

	index := -1
	for i, c := range categories {
		if c.ID == category.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, domain.ErrCategoryNotFound
	}

	categories[index] = category
	if err := writeCollection(r.store, categoriesKey, categories); err != nil {
		log.Error().Err(err).Str("category_id", category.ID).Msg("Failed to update category")
		return nil, err
	}
	return category, nil
}

// Delete removes the category with the given id. Deleting an absent id
// is a no-op.
func (r *CategoryRepository) Delete(id string) error {
	categories, err := r.List()
	if err != nil {
		return err
	}

	kept := categories[:0]
	for _, c := range categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	if err := writeCollection(r.store, categoriesKey, kept); err != nil {
		log.Error().Err(err).Str("category_id", id).Msg("Failed to delete category")
		return err
	}
	return nil
}

// Replace overwrites the whole collection, preserving the given order.
func (r *CategoryRepository) Replace(categories []*domain.Category) error {
	if categories == nil {
		categories = []*domain.Category{}
	}
	return writeCollection(r.store, categoriesKey, categories)
}

// Clear removes the backing key entirely; the next List re-seeds the
// defaults.
func (r *CategoryRepository) Clear() error {
	return r.store.Remove(categoriesKey)
}
