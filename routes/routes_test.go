package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"api/database"
	"api/handlers"
	"api/repositories"
	"api/services"
)

var testDBSeq atomic.Int64

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:routedb%d?mode=memory&cache=shared", testDBSeq.Add(1))
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

	svcs := services.New(
		repositories.NewUserRepository(db),
		repositories.NewPostRepository(db),
		repositories.NewCommentRepository(db),
		repositories.NewFollowerRepository(db),
		services.DeleteOrphan,
	)
	return SetupRoutes(
		handlers.NewUserHandler(svcs.Users, svcs.Followers),
		handlers.NewPostHandler(svcs.Posts, svcs.Users),
		handlers.NewCommentHandler(svcs.Comments, svcs.Users),
		handlers.NewFollowerHandler(svcs.Followers),
		handlers.NewSystemHandler(),
	)
}

// performRequest sends a JSON request through the full router.
func performRequest(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeMap(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return out
}

func TestScenario(t *testing.T) {
	srv := newTestServer(t)

	// First user gets id 1.
	rr := performRequest(t, srv, "POST", "/api/users", map[string]interface{}{
		"email": "a@x.com", "first_name": "A", "last_name": "B", "password": "p",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create user: %d %s", rr.Code, rr.Body.String())
	}
	if got := decodeMap(t, rr); got["id"].(float64) != 1 {
		t.Errorf("expected id 1, got %v", got["id"])
	}

	// Same email again conflicts.
	rr = performRequest(t, srv, "POST", "/api/users", map[string]interface{}{
		"email": "a@x.com", "first_name": "C", "last_name": "D", "password": "q",
	})
	if rr.Code != http.StatusConflict {
		t.Errorf("duplicate email: expected 409, got %d %s", rr.Code, rr.Body.String())
	}

	// First post gets id 1.
	rr = performRequest(t, srv, "POST", "/api/posts", map[string]interface{}{
		"user_id": 1, "image_url": "http://i",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create post: %d %s", rr.Code, rr.Body.String())
	}
	if got := decodeMap(t, rr); got["id"].(float64) != 1 {
		t.Errorf("expected post id 1, got %v", got["id"])
	}

	rr = performRequest(t, srv, "POST", "/api/comments", map[string]interface{}{
		"user_id": 1, "post_id": 1, "content": "hi",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create comment: %d %s", rr.Code, rr.Body.String())
	}

	rr = performRequest(t, srv, "GET", "/api/posts/1/comments", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("comments of post: %d %s", rr.Code, rr.Body.String())
	}
	comments := decodeList(t, rr)
	if len(comments) != 1 || comments[0]["content"] != "hi" {
		t.Errorf("unexpected comments payload: %s", rr.Body.String())
	}

	// Self-follow is accepted.
	rr = performRequest(t, srv, "POST", "/api/followers", map[string]interface{}{
		"user_from_id": 1, "user_to_id": 1,
	})
	if rr.Code != http.StatusCreated {
		t.Errorf("self-follow: expected 201, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestStatusCodeMapping(t *testing.T) {
	srv := newTestServer(t)

	// Missing required field.
	rr := performRequest(t, srv, "POST", "/api/users", map[string]interface{}{
		"first_name": "A", "last_name": "B", "password": "p",
	})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("validation: expected 400, got %d", rr.Code)
	}
	if got := decodeMap(t, rr); !strings.Contains(got["error"].(string), "email") {
		t.Errorf("error should name the field: %s", rr.Body.String())
	}

	// Unknown ids.
	rr = performRequest(t, srv, "GET", "/api/users/42", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("missing user: expected 404, got %d", rr.Code)
	}

	// Dangling reference.
	rr = performRequest(t, srv, "POST", "/api/posts", map[string]interface{}{
		"user_id": 42, "image_url": "http://i",
	})
	if rr.Code != http.StatusNotFound {
		t.Errorf("dangling user_id: expected 404, got %d", rr.Code)
	}

	// Malformed body.
	req := httptest.NewRequest("POST", "/api/users", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid JSON: expected 400, got %d", rec.Code)
	}
}

func TestDeleteLifecycle(t *testing.T) {
	srv := newTestServer(t)

	rr := performRequest(t, srv, "POST", "/api/users", map[string]interface{}{
		"email": "a@x.com", "first_name": "A", "last_name": "B", "password": "p",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create user: %d", rr.Code)
	}

	rr = performRequest(t, srv, "DELETE", "/api/users/1", nil)
	if rr.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("delete response should have no body, got %q", rr.Body.String())
	}

	rr = performRequest(t, srv, "GET", "/api/users/1", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("read after delete: expected 404, got %d", rr.Code)
	}
	rr = performRequest(t, srv, "DELETE", "/api/users/1", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("double delete: expected 404, got %d", rr.Code)
	}
}

func TestPartialUpdateOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	performRequest(t, srv, "POST", "/api/users", map[string]interface{}{
		"email": "a@x.com", "first_name": "A", "last_name": "B", "password": "p",
	})
	performRequest(t, srv, "POST", "/api/posts", map[string]interface{}{
		"user_id": 1, "image_url": "http://i", "caption": "before",
	})

	rr := performRequest(t, srv, "PUT", "/api/posts/1", map[string]interface{}{"caption": "x"})
	if rr.Code != http.StatusOK {
		t.Fatalf("update post: %d %s", rr.Code, rr.Body.String())
	}
	got := decodeMap(t, rr)
	if got["caption"] != "x" {
		t.Errorf("caption not updated: %v", got["caption"])
	}
	if got["image_url"] != "http://i" {
		t.Errorf("image_url should be untouched: %v", got["image_url"])
	}
}

func TestPasswordNeverSerialized(t *testing.T) {
	srv := newTestServer(t)

	rr := performRequest(t, srv, "POST", "/api/users", map[string]interface{}{
		"email": "a@x.com", "first_name": "A", "last_name": "B", "password": "topsecret",
	})
	if strings.Contains(rr.Body.String(), "topsecret") {
		t.Errorf("create leaked the password: %s", rr.Body.String())
	}

	for _, path := range []string{"/api/users", "/api/users/1"} {
		rr = performRequest(t, srv, "GET", path, nil)
		if strings.Contains(rr.Body.String(), "topsecret") ||
			strings.Contains(rr.Body.String(), "password") {
			t.Errorf("%s leaked the password: %s", path, rr.Body.String())
		}
	}
}

func TestFollowerListingsEmbedUsers(t *testing.T) {
	srv := newTestServer(t)

	for _, u := range []map[string]interface{}{
		{"email": "a@x.com", "first_name": "A", "last_name": "A", "password": "p"},
		{"email": "b@x.com", "first_name": "B", "last_name": "B", "password": "p"},
	} {
		if rr := performRequest(t, srv, "POST", "/api/users", u); rr.Code != http.StatusCreated {
			t.Fatalf("create user: %d", rr.Code)
		}
	}
	if rr := performRequest(t, srv, "POST", "/api/followers", map[string]interface{}{
		"user_from_id": 1, "user_to_id": 2,
	}); rr.Code != http.StatusCreated {
		t.Fatalf("create follow: %d", rr.Code)
	}

	rr := performRequest(t, srv, "GET", "/api/users/2/followers", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("followers: %d %s", rr.Code, rr.Body.String())
	}
	followers := decodeList(t, rr)
	if len(followers) != 1 {
		t.Fatalf("expected 1 follower, got %d", len(followers))
	}
	info, ok := followers[0]["follower_info"].(map[string]interface{})
	if !ok || info["email"] != "a@x.com" {
		t.Errorf("follower_info missing or wrong: %s", rr.Body.String())
	}

	rr = performRequest(t, srv, "GET", "/api/users/1/following", nil)
	following := decodeList(t, rr)
	if len(following) != 1 {
		t.Fatalf("expected 1 following entry, got %d", len(following))
	}
	info, ok = following[0]["following_info"].(map[string]interface{})
	if !ok || info["email"] != "b@x.com" {
		t.Errorf("following_info missing or wrong: %s", rr.Body.String())
	}
}

func TestPostListEmbedsAuthor(t *testing.T) {
	srv := newTestServer(t)

	performRequest(t, srv, "POST", "/api/users", map[string]interface{}{
		"email": "a@x.com", "first_name": "A", "last_name": "B", "password": "p",
	})
	performRequest(t, srv, "POST", "/api/posts", map[string]interface{}{
		"user_id": 1, "image_url": "http://i",
	})

	rr := performRequest(t, srv, "GET", "/api/posts", nil)
	posts := decodeList(t, rr)
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	author, ok := posts[0]["author"].(map[string]interface{})
	if !ok || author["email"] != "a@x.com" {
		t.Errorf("author missing or wrong: %s", rr.Body.String())
	}

	// After deleting the owner (orphan policy) the author is null.
	performRequest(t, srv, "DELETE", "/api/users/1", nil)
	rr = performRequest(t, srv, "GET", "/api/posts/1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("orphaned post read: %d", rr.Code)
	}
	if got := decodeMap(t, rr); got["author"] != nil {
		t.Errorf("expected null author, got %v", got["author"])
	}
}

func TestHomeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rr := performRequest(t, srv, "GET", "/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("home: %d", rr.Code)
	}
	got := decodeMap(t, rr)
	if _, ok := got["endpoints"]; !ok {
		t.Errorf("home should list endpoints: %s", rr.Body.String())
	}
}
