package models

// DefaultImageURL is assigned to users created or updated without an image.
const DefaultImageURL = "https://i.pinimg.com/originals/0c/3b/3a/0c3b3adb1a7530892e55ef36d3be6cb8.png"

// User represents an author in the system
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"not null;type:varchar(128)"`
	LastName  string `json:"last_name" gorm:"not null;type:varchar(128)"`
	ImageURL  string `json:"image_url"`

	// One-to-Many Relations
	Posts []*Post `json:"posts,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// FullName returns the display name used on listing and detail pages.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
