package repository

import (
	"errors"
	"fmt"

	"github.com/kutbudev/blogly/pkg/models"
	"gorm.io/gorm"
)

// PostRepository provides CRUD access to posts and their tag memberships.
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a repository bound to the given connection.
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a post owned by a user together with its full tag set.
// The post row and the posttags rows commit or roll back as a unit.
func (r *PostRepository) Create(title, content string, userID uint, tagIDs []uint) (*models.Post, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	var post models.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user %d", ErrNotFound, userID)
			}
			return err
		}

		tags, err := resolveTags(tx, tagIDs)
		if err != nil {
			return err
		}

		post = models.Post{Title: title, Content: content, UserID: user.ID, Tags: tags}
		return tx.Create(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Get retrieves a post with its owner and tags preloaded.
func (r *PostRepository) Get(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("User").Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: post %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &post, nil
}

// ListByUser returns a user's posts in insertion order.
func (r *PostRepository) ListByUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByTag returns every post carrying the tag, in insertion order.
func (r *PostRepository) ListByTag(tagID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Joins("JOIN posttags ON posttags.post_id = posts.id").
		Where("posttags.tag_id = ?", tagID).
		Order("posts.id").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update overwrites title and content and replaces the post's tag set.
// Memberships absent from tagIDs are removed, new ones added; CreatedAt
// is never touched.
func (r *PostRepository) Update(id uint, title, content string, tagIDs []uint) (*models.Post, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	var post models.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: post %d", ErrNotFound, id)
			}
			return err
		}

		tags, err := resolveTags(tx, tagIDs)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{"title": title, "content": content}
		if err := tx.Model(&post).Updates(updates).Error; err != nil {
			return err
		}

		if len(tags) == 0 {
			return tx.Model(&post).Association("Tags").Clear()
		}
		return tx.Model(&post).Association("Tags").Replace(tags)
	})
	if err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Delete removes a post and its tag memberships. Absent ids are a no-op.
func (r *PostRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// resolveTags loads every referenced tag, deduplicating ids, and fails with
// ErrNotFound if any id does not resolve.
func resolveTags(tx *gorm.DB, tagIDs []uint) ([]*models.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}

	seen := make(map[uint]struct{}, len(tagIDs))
	ids := make([]uint, 0, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	var tags []*models.Tag
	if err := tx.Find(&tags, ids).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, fmt.Errorf("%w: one or more tags do not exist", ErrNotFound)
	}
	return tags, nil
}
