package repository

import (
	"errors"
	"fmt"

	"github.com/kutbudev/blogly/pkg/models"
	"gorm.io/gorm"
)

// UserRepository provides CRUD access to users.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a repository bound to the given connection.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. An empty image URL falls back to the default.
func (r *UserRepository) Create(firstName, lastName, imageURL string) (*models.User, error) {
	if firstName == "" {
		return nil, fmt.Errorf("%w: first name is required", ErrValidation)
	}
	if lastName == "" {
		return nil, fmt.Errorf("%w: last name is required", ErrValidation)
	}
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := models.User{FirstName: firstName, LastName: lastName, ImageURL: imageURL}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Get retrieves a single user by id.
func (r *UserRepository) Get(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

// List returns all users in insertion order.
func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update overwrites all three mutable fields of a user. An empty image URL
// falls back to the default, matching Create.
func (r *UserRepository) Update(id uint, firstName, lastName, imageURL string) (*models.User, error) {
	if firstName == "" {
		return nil, fmt.Errorf("%w: first name is required", ErrValidation)
	}
	if lastName == "" {
		return nil, fmt.Errorf("%w: last name is required", ErrValidation)
	}
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.ImageURL = imageURL
	if err := r.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user together with their posts and the posts' tag
// memberships. Deleting an absent id is a no-op.
func (r *UserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.PostTag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
