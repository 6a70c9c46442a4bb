package services

import (
	"sync"

	"github.com/sirupsen/logrus"

	"api/models"
	"api/repositories"
)

// UserService orchestrates user CRUD: integrity rules first, then the
// store mutation, in the order required fields → references → uniqueness.
type UserService struct {
	users     repositories.UserRepository
	posts     repositories.PostRepository
	comments  repositories.CommentRepository
	followers repositories.FollowerRepository
	mu        *sync.Mutex
	policy    DeletePolicy
}

// CreateUserInput carries the fields accepted on user creation.
type CreateUserInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	IsActive  *bool  `json:"is_active"`
}

// UserPatch is a partial update; only non-nil fields are applied.
type UserPatch struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
	IsActive  *bool   `json:"is_active"`
}

func (s *UserService) Create(in CreateUserInput) (*models.User, error) {
	if err := requireAll(
		str("email", in.Email),
		str("first_name", in.FirstName),
		str("last_name", in.LastName),
		str("password", in.Password),
	); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	taken, err := s.users.ExistsByEmail(in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ConflictError{Message: "email already exists"}
	}

	user := &models.User{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Password:  in.Password,
		IsActive:  true,
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if err := s.users.Insert(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, notFound("user", err)
	}
	return user, nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	return s.users.GetAll()
}

// Update applies the patch after re-running only the rules relevant to
// the supplied fields; email uniqueness excludes the record itself.
func (s *UserService) Update(id uint, patch UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, notFound("user", err)
	}

	if patch.Email != nil && *patch.Email == "" {
		return nil, &ValidationError{Field: "email"}
	}
	if patch.FirstName != nil && *patch.FirstName == "" {
		return nil, &ValidationError{Field: "first_name"}
	}
	if patch.LastName != nil && *patch.LastName == "" {
		return nil, &ValidationError{Field: "last_name"}
	}
	if patch.Password != nil && *patch.Password == "" {
		return nil, &ValidationError{Field: "password"}
	}

	if patch.Email != nil {
		taken, err := s.users.ExistsByEmail(*patch.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &ConflictError{Message: "email already exists"}
		}
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user, handling dependents according to the
// configured delete policy.
func (s *UserService) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.users.GetByID(id); err != nil {
		return notFound("user", err)
	}

	switch s.policy {
	case DeleteRestrict:
		deps, err := s.dependentCount(id)
		if err != nil {
			return err
		}
		if deps > 0 {
			return &ConflictError{Message: "user has dependent records"}
		}
	case DeleteCascade:
		// Comments on the user's posts go first, then the posts themselves.
		if err := s.comments.DeleteByPostOwner(id); err != nil {
			return err
		}
		if err := s.comments.DeleteByUserID(id); err != nil {
			return err
		}
		if err := s.posts.DeleteByUserID(id); err != nil {
			return err
		}
		if err := s.followers.DeleteByUserID(id); err != nil {
			return err
		}
		logrus.WithField("user_id", id).Debug("cascaded user delete to dependents")
	}

	ok, err := s.users.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "user"}
	}
	return nil
}

func (s *UserService) dependentCount(id uint) (int64, error) {
	posts, err := s.posts.CountByUserID(id)
	if err != nil {
		return 0, err
	}
	comments, err := s.comments.CountByUserID(id)
	if err != nil {
		return 0, err
	}
	follows, err := s.followers.CountByUserID(id)
	if err != nil {
		return 0, err
	}
	return posts + comments + follows, nil
}
