package services

import (
	"sync"

	"api/models"
	"api/repositories"
)

// CommentService orchestrates comment CRUD.
type CommentService struct {
	comments repositories.CommentRepository
	users    repositories.UserRepository
	posts    repositories.PostRepository
	mu       *sync.Mutex
}

// CreateCommentInput carries the fields accepted on comment creation.
type CreateCommentInput struct {
	UserID  uint   `json:"user_id"`
	PostID  uint   `json:"post_id"`
	Content string `json:"content"`
}

// CommentPatch is a partial update; only non-nil fields are applied.
type CommentPatch struct {
	Content *string `json:"content"`
}

func (s *CommentService) Create(in CreateCommentInput) (*models.Comment, error) {
	if err := requireAll(
		ref("user_id", in.UserID),
		ref("post_id", in.PostID),
		str("content", in.Content),
	); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.users.GetByID(in.UserID); err != nil {
		return nil, notFound("user", err)
	}
	if _, err := s.posts.GetByID(in.PostID); err != nil {
		return nil, notFound("post", err)
	}

	comment := &models.Comment{
		UserID:  in.UserID,
		PostID:  in.PostID,
		Content: in.Content,
	}
	if err := s.comments.Insert(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Get(id uint) (*models.Comment, error) {
	comment, err := s.comments.GetByID(id)
	if err != nil {
		return nil, notFound("comment", err)
	}
	return comment, nil
}

func (s *CommentService) GetAll() ([]models.Comment, error) {
	return s.comments.GetAll()
}

func (s *CommentService) Update(id uint, patch CommentPatch) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, err := s.comments.GetByID(id)
	if err != nil {
		return nil, notFound("comment", err)
	}

	if patch.Content != nil && *patch.Content == "" {
		return nil, &ValidationError{Field: "content"}
	}
	if patch.Content != nil {
		comment.Content = *patch.Content
	}

	if err := s.comments.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.comments.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "comment"}
	}
	return nil
}
