package services

import (
	"sync"

	"api/models"
	"api/repositories"
)

// PostService orchestrates post CRUD and the comments-of-post query.
type PostService struct {
	posts    repositories.PostRepository
	users    repositories.UserRepository
	comments repositories.CommentRepository
	mu       *sync.Mutex
	policy   DeletePolicy
}

// CreatePostInput carries the fields accepted on post creation.
// Caption is optional.
type CreatePostInput struct {
	UserID   uint   `json:"user_id"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
}

// PostPatch is a partial update; only non-nil fields are applied.
type PostPatch struct {
	ImageURL *string `json:"image_url"`
	Caption  *string `json:"caption"`
}

func (s *PostService) Create(in CreatePostInput) (*models.Post, error) {
	if err := requireAll(
		ref("user_id", in.UserID),
		str("image_url", in.ImageURL),
	); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.users.GetByID(in.UserID); err != nil {
		return nil, notFound("user", err)
	}

	post := &models.Post{
		UserID:   in.UserID,
		ImageURL: in.ImageURL,
		Caption:  in.Caption,
	}
	if err := s.posts.Insert(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Get(id uint) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, notFound("post", err)
	}
	return post, nil
}

func (s *PostService) GetAll() ([]models.Post, error) {
	return s.posts.GetAll()
}

func (s *PostService) Update(id uint, patch PostPatch) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, notFound("post", err)
	}

	if patch.ImageURL != nil && *patch.ImageURL == "" {
		return nil, &ValidationError{Field: "image_url"}
	}

	if patch.ImageURL != nil {
		post.ImageURL = *patch.ImageURL
	}
	if patch.Caption != nil {
		post.Caption = *patch.Caption
	}

	if err := s.posts.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post, handling its comments according to the
// configured delete policy.
func (s *PostService) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.posts.GetByID(id); err != nil {
		return notFound("post", err)
	}

	switch s.policy {
	case DeleteRestrict:
		count, err := s.comments.CountByPostID(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return &ConflictError{Message: "post has dependent records"}
		}
	case DeleteCascade:
		if err := s.comments.DeleteByPostID(id); err != nil {
			return err
		}
	}

	ok, err := s.posts.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "post"}
	}
	return nil
}

// CommentsOf returns the comments on a post in insertion order.
func (s *PostService) CommentsOf(postID uint) ([]models.Comment, error) {
	if _, err := s.posts.GetByID(postID); err != nil {
		return nil, notFound("post", err)
	}
	return s.comments.GetByPostID(postID)
}
