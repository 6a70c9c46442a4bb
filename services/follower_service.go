package services

import (
	"sync"

	"api/models"
	"api/repositories"
)

// FollowerService orchestrates follow-edge CRUD and the followers /
// following queries.
type FollowerService struct {
	followers repositories.FollowerRepository
	users     repositories.UserRepository
	mu        *sync.Mutex
}

// CreateFollowerInput carries the endpoints of a new follow edge.
type CreateFollowerInput struct {
	UserFromID uint `json:"user_from_id"`
	UserToID   uint `json:"user_to_id"`
}

// FollowerPatch repoints one or both endpoints of an edge.
type FollowerPatch struct {
	UserFromID *uint `json:"user_from_id"`
	UserToID   *uint `json:"user_to_id"`
}

// Create adds a follow edge. Both users must exist and the (from, to)
// pair must be unique. A user may follow themselves.
func (s *FollowerService) Create(in CreateFollowerInput) (*models.Follower, error) {
	if err := requireAll(
		ref("user_from_id", in.UserFromID),
		ref("user_to_id", in.UserToID),
	); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.users.GetByID(in.UserFromID); err != nil {
		return nil, notFound("follower user", err)
	}
	if _, err := s.users.GetByID(in.UserToID); err != nil {
		return nil, notFound("user to follow", err)
	}

	exists, err := s.followers.PairExists(in.UserFromID, in.UserToID, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &ConflictError{Message: "follow relationship already exists"}
	}

	follow := &models.Follower{
		UserFromID: in.UserFromID,
		UserToID:   in.UserToID,
	}
	if err := s.followers.Insert(follow); err != nil {
		return nil, err
	}
	return follow, nil
}

func (s *FollowerService) Get(id uint) (*models.Follower, error) {
	follow, err := s.followers.GetByID(id)
	if err != nil {
		return nil, notFound("follow relationship", err)
	}
	return follow, nil
}

func (s *FollowerService) GetAll() ([]models.Follower, error) {
	return s.followers.GetAll()
}

// Update repoints an edge, re-validating existence of any changed
// endpoint and uniqueness of the resulting pair.
func (s *FollowerService) Update(id uint, patch FollowerPatch) (*models.Follower, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	follow, err := s.followers.GetByID(id)
	if err != nil {
		return nil, notFound("follow relationship", err)
	}

	if patch.UserFromID != nil && *patch.UserFromID == 0 {
		return nil, &ValidationError{Field: "user_from_id"}
	}
	if patch.UserToID != nil && *patch.UserToID == 0 {
		return nil, &ValidationError{Field: "user_to_id"}
	}

	fromID, toID := follow.UserFromID, follow.UserToID
	if patch.UserFromID != nil {
		fromID = *patch.UserFromID
	}
	if patch.UserToID != nil {
		toID = *patch.UserToID
	}

	if patch.UserFromID != nil {
		if _, err := s.users.GetByID(fromID); err != nil {
			return nil, notFound("follower user", err)
		}
	}
	if patch.UserToID != nil {
		if _, err := s.users.GetByID(toID); err != nil {
			return nil, notFound("user to follow", err)
		}
	}

	if fromID != follow.UserFromID || toID != follow.UserToID {
		exists, err := s.followers.PairExists(fromID, toID, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, &ConflictError{Message: "follow relationship already exists"}
		}
	}

	follow.UserFromID = fromID
	follow.UserToID = toID
	if err := s.followers.Update(follow); err != nil {
		return nil, err
	}
	return follow, nil
}

func (s *FollowerService) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.followers.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{Resource: "follow relationship"}
	}
	return nil
}

// FollowersOf returns the edges pointing at the user.
func (s *FollowerService) FollowersOf(userID uint) ([]models.Follower, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, notFound("user", err)
	}
	return s.followers.GetByToID(userID)
}

// FollowingOf returns the edges leaving the user.
func (s *FollowerService) FollowingOf(userID uint) ([]models.Follower, error) {
	if _, err := s.users.GetByID(userID); err != nil {
		return nil, notFound("user", err)
	}
	return s.followers.GetByFromID(userID)
}
