package services

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"api/database"
	"api/repositories"
)

var testDBSeq atomic.Int64

// newTestDB opens a private in-memory sqlite database. cache=shared keeps
// the database alive across the pool's connections; the unique name keeps
// tests isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svcdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestServices(t *testing.T) *Services {
	return newTestServicesWithPolicy(t, DeleteOrphan)
}

func newTestServicesWithPolicy(t *testing.T, policy DeletePolicy) *Services {
	t.Helper()
	db := newTestDB(t)
	return New(
		repositories.NewUserRepository(db),
		repositories.NewPostRepository(db),
		repositories.NewCommentRepository(db),
		repositories.NewFollowerRepository(db),
		policy,
	)
}

// seedUser creates a user with a unique email and fails the test on error.
func seedUser(t *testing.T, svcs *Services, email string) uint {
	t.Helper()
	user, err := svcs.Users.Create(CreateUserInput{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Password:  "secret",
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user.ID
}

func seedPost(t *testing.T, svcs *Services, userID uint) uint {
	t.Helper()
	post, err := svcs.Posts.Create(CreatePostInput{
		UserID:   userID,
		ImageURL: "https://example.com/image.jpg",
		Caption:  "a caption",
	})
	if err != nil {
		t.Fatalf("seed post for user %d: %v", userID, err)
	}
	return post.ID
}

func seedComment(t *testing.T, svcs *Services, userID, postID uint) uint {
	t.Helper()
	comment, err := svcs.Comments.Create(CreateCommentInput{
		UserID:  userID,
		PostID:  postID,
		Content: "nice shot",
	})
	if err != nil {
		t.Fatalf("seed comment on post %d: %v", postID, err)
	}
	return comment.ID
}

func assertValidation(t *testing.T, err error, field string) {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != field {
		t.Errorf("expected violation on %q, got %q", field, ve.Field)
	}
}

func assertNotFound(t *testing.T, err error, resource string) {
	t.Helper()
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.Resource != resource {
		t.Errorf("expected missing %q, got %q", resource, nf.Resource)
	}
}

func assertConflict(t *testing.T, err error) {
	t.Helper()
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}
