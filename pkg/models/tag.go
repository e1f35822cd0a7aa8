package models

// Tag represents a label shared between posts
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null;unique;index:idx_tags_name"`

	// Many-to-Many Relations
	Posts []*Post `json:"posts,omitempty" gorm:"many2many:posttags"`
}
