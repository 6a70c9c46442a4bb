package repositories

import "api/models"

type UserRepository interface {
	Insert(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) (bool, error)
	ExistsByEmail(email string, excludeID uint) (bool, error)
}

type PostRepository interface {
	Insert(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetAll() ([]models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) (bool, error)
	CountByUserID(userID uint) (int64, error)
	DeleteByUserID(userID uint) error
}

type CommentRepository interface {
	Insert(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	GetAll() ([]models.Comment, error)
	GetByPostID(postID uint) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint) (bool, error)
	CountByPostID(postID uint) (int64, error)
	CountByUserID(userID uint) (int64, error)
	DeleteByPostID(postID uint) error
	DeleteByUserID(userID uint) error
	DeleteByPostOwner(userID uint) error
}

type FollowerRepository interface {
	Insert(follow *models.Follower) error
	GetByID(id uint) (*models.Follower, error)
	GetAll() ([]models.Follower, error)
	GetByToID(userID uint) ([]models.Follower, error)
	GetByFromID(userID uint) ([]models.Follower, error)
	Update(follow *models.Follower) error
	Delete(id uint) (bool, error)
	PairExists(fromID, toID, excludeID uint) (bool, error)
	CountByUserID(userID uint) (int64, error)
	DeleteByUserID(userID uint) error
}
