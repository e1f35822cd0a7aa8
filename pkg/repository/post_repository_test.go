package repository

import (
	"errors"
	"testing"

	"github.com/kutbudev/blogly/pkg/models"
)

func TestCreatePostRequiresTitleAndContent(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	user, _ := users.Create("John", "Smith", "")

	if _, err := posts.Create("", "body", user.ID, nil); !errors.Is(err, ErrValidation) {
		t.Errorf("Create() with empty title error = %v, want ErrValidation", err)
	}
	if _, err := posts.Create("title", "", user.ID, nil); !errors.Is(err, ErrValidation) {
		t.Errorf("Create() with empty content error = %v, want ErrValidation", err)
	}
}

func TestCreatePostUnknownUserLeavesNoRow(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)

	if _, err := posts.Create("T", "C", 123, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Create() under unknown user error = %v, want ErrNotFound", err)
	}

	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if count != 0 {
		t.Errorf("post rows after failed create = %d, want 0", count)
	}
}

func TestCreatePostUnknownTagRollsBack(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	user, _ := users.Create("John", "Smith", "")

	if _, err := posts.Create("T", "C", user.ID, []uint{999}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Create() with unknown tag error = %v, want ErrNotFound", err)
	}

	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		t.Fatalf("count posts: %v", err)
	}
	if count != 0 {
		t.Errorf("post rows after rolled-back create = %d, want 0", count)
	}
}

func TestCreatePostWithTags(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	tags := NewTagRepository(db)

	user, _ := users.Create("John", "Smith", "")
	golang, _ := tags.Create("go")
	web, _ := tags.Create("web")

	post, err := posts.Create("T", "C", user.ID, []uint{golang.ID, web.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if post.CreatedAt.IsZero() {
		t.Error("Create() did not assign CreatedAt")
	}

	got, err := posts.Get(post.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Tags) != 2 {
		t.Fatalf("Get() tags = %d, want 2", len(got.Tags))
	}
	if got.User == nil || got.User.FirstName != "John" {
		t.Errorf("Get() owner = %+v, want John", got.User)
	}
}

func TestUpdatePostReplacesTagSet(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	tags := NewTagRepository(db)

	user, _ := users.Create("John", "Smith", "")
	a, _ := tags.Create("a")
	b, _ := tags.Create("b")
	c, _ := tags.Create("c")

	post, err := posts.Create("T", "C", user.ID, []uint{a.ID, b.ID})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := posts.Update(post.ID, "T2", "C2", []uint{b.ID, c.ID})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	names := map[string]bool{}
	for _, tag := range updated.Tags {
		names[tag.Name] = true
	}
	if len(names) != 2 || !names["b"] || !names["c"] {
		t.Errorf("Update() tag set = %v, want exactly {b, c}", names)
	}

	var leftover int64
	if err := db.Model(&models.PostTag{}).Where("post_id = ? AND tag_id = ?", post.ID, a.ID).Count(&leftover).Error; err != nil {
		t.Fatalf("count posttags: %v", err)
	}
	if leftover != 0 {
		t.Errorf("stale (post, a) membership rows = %d, want 0", leftover)
	}
}

func TestUpdatePostKeepsCreatedAt(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)

	user, _ := users.Create("John", "Smith", "")
	post, err := posts.Create("T", "C", user.ID, nil)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := posts.Update(post.ID, "T2", "C2", nil)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !updated.CreatedAt.Equal(post.CreatedAt) {
		t.Errorf("Update() changed CreatedAt from %v to %v", post.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdatePostClearsTagsWithEmptySet(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	tags := NewTagRepository(db)

	user, _ := users.Create("John", "Smith", "")
	a, _ := tags.Create("a")
	post, _ := posts.Create("T", "C", user.ID, []uint{a.ID})

	updated, err := posts.Update(post.ID, "T", "C", nil)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(updated.Tags) != 0 {
		t.Errorf("Update() with empty set left %d tags", len(updated.Tags))
	}
}

func TestDeletePostRemovesMemberships(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	tags := NewTagRepository(db)

	user, _ := users.Create("John", "Smith", "")
	a, _ := tags.Create("a")
	post, _ := posts.Create("T", "C", user.ID, []uint{a.ID})

	if err := posts.Delete(post.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	// Absent id is a no-op.
	if err := posts.Delete(post.ID); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}

	var memberships int64
	if err := db.Model(&models.PostTag{}).Count(&memberships).Error; err != nil {
		t.Fatalf("count posttags: %v", err)
	}
	if memberships != 0 {
		t.Errorf("posttags rows after post delete = %d, want 0", memberships)
	}
}

func TestListPostsByUserAndByTag(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	tags := NewTagRepository(db)

	john, _ := users.Create("John", "Smith", "")
	jane, _ := users.Create("Jane", "Doe", "")
	golang, _ := tags.Create("go")

	first, _ := posts.Create("First", "...", john.ID, []uint{golang.ID})
	posts.Create("Second", "...", john.ID, nil)
	posts.Create("Other", "...", jane.ID, []uint{golang.ID})

	byUser, err := posts.ListByUser(john.ID)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(byUser) != 2 || byUser[0].ID != first.ID {
		t.Errorf("ListByUser() = %d posts, want 2 in insertion order", len(byUser))
	}

	byTag, err := posts.ListByTag(golang.ID)
	if err != nil {
		t.Fatalf("ListByTag() error = %v", err)
	}
	if len(byTag) != 2 {
		t.Errorf("ListByTag() = %d posts, want 2", len(byTag))
	}
}
