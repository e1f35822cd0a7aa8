package repository

import (
	"errors"
	"fmt"

	"github.com/kutbudev/blogly/pkg/models"
	"gorm.io/gorm"
)

// TagRepository provides CRUD access to tags.
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a repository bound to the given connection.
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create inserts a tag. Tag names are globally unique.
func (r *TagRepository) Create(name string) (*models.Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	tag := models.Tag{Name: name}
	if err := r.db.Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: tag %q", ErrConflict, name)
		}
		return nil, err
	}
	return &tag, nil
}

// Get retrieves a single tag by id.
func (r *TagRepository) Get(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tag %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &tag, nil
}

// List returns all tags in insertion order.
func (r *TagRepository) List() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("id").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Update renames a tag, keeping the uniqueness guarantee.
func (r *TagRepository) Update(id uint, name string) (*models.Tag, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	tag, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	tag.Name = name
	if err := r.db.Save(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: tag %q", ErrConflict, name)
		}
		return nil, err
	}
	return tag, nil
}

// Delete removes a tag and every membership row referencing it. Absent ids
// are a no-op.
func (r *TagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tag{}, id).Error
	})
}
