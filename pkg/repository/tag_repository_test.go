package repository

import (
	"errors"
	"testing"

	"github.com/kutbudev/blogly/pkg/models"
)

func TestCreateTagDuplicateName(t *testing.T) {
	db := newTestDB(t)
	tags := NewTagRepository(db)

	if _, err := tags.Create("go"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := tags.Create("go"); !errors.Is(err, ErrConflict) {
		t.Fatalf("Create() duplicate error = %v, want ErrConflict", err)
	}

	var count int64
	if err := db.Model(&models.Tag{}).Count(&count).Error; err != nil {
		t.Fatalf("count tags: %v", err)
	}
	if count != 1 {
		t.Errorf("tag rows after duplicate create = %d, want 1", count)
	}
}

func TestCreateTagRequiresName(t *testing.T) {
	db := newTestDB(t)
	tags := NewTagRepository(db)

	if _, err := tags.Create(""); !errors.Is(err, ErrValidation) {
		t.Errorf("Create() with empty name error = %v, want ErrValidation", err)
	}
}

func TestUpdateTag(t *testing.T) {
	db := newTestDB(t)
	tags := NewTagRepository(db)

	golang, _ := tags.Create("golang")
	tags.Create("web")

	renamed, err := tags.Update(golang.ID, "go")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if renamed.Name != "go" {
		t.Errorf("Update() name = %q, want go", renamed.Name)
	}

	if _, err := tags.Update(golang.ID, "web"); !errors.Is(err, ErrConflict) {
		t.Errorf("Update() to taken name error = %v, want ErrConflict", err)
	}
	if _, err := tags.Update(999, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(999) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteTagRemovesMemberships(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	tags := NewTagRepository(db)

	user, _ := users.Create("John", "Smith", "")
	golang, _ := tags.Create("go")
	web, _ := tags.Create("web")
	post, _ := posts.Create("T", "C", user.ID, []uint{golang.ID, web.ID})

	if err := tags.Delete(golang.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	// Absent id is a no-op.
	if err := tags.Delete(golang.ID); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}

	got, err := posts.Get(post.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0].Name != "web" {
		t.Errorf("post tags after tag delete = %+v, want only web", got.Tags)
	}
}

func TestListTagsInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	tags := NewTagRepository(db)

	tags.Create("b")
	tags.Create("a")

	all, err := tags.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 || all[0].Name != "b" || all[1].Name != "a" {
		t.Errorf("List() = %+v, want insertion order b, a", all)
	}
}
