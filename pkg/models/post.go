package models

import "time"

// Post represents a blog post in the system
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null;type:varchar(128)"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_posts_user"`

	// Foreign Key Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	// Many-to-Many Relations
	Tags []*Tag `json:"tags,omitempty" gorm:"many2many:posttags"`
}

// PostTag is the join row between posts and tags. A (post, tag) pair
// appears at most once; the composite primary key enforces that.
type PostTag struct {
	PostID uint `json:"post_id" gorm:"primaryKey"`
	TagID  uint `json:"tag_id" gorm:"primaryKey"`
}

// TableName specifies the table name for GORM
func (PostTag) TableName() string {
	return "posttags"
}
