package repositories

import (
	"gorm.io/gorm"

	"api/models"
)

type followerRepository struct {
	db *gorm.DB
}

func NewFollowerRepository(db *gorm.DB) FollowerRepository {
	return &followerRepository{db: db}
}

func (r *followerRepository) Insert(follow *models.Follower) error {
	return r.db.Create(follow).Error
}

func (r *followerRepository) GetByID(id uint) (*models.Follower, error) {
	var follow models.Follower
	if err := r.db.First(&follow, id).Error; err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *followerRepository) GetAll() ([]models.Follower, error) {
	var follows []models.Follower
	err := r.db.Order("id").Find(&follows).Error
	return follows, err
}

// GetByToID returns the edges pointing at the user, i.e. their followers.
func (r *followerRepository) GetByToID(userID uint) ([]models.Follower, error) {
	var follows []models.Follower
	err := r.db.Where("user_to_id = ?", userID).Order("id").Find(&follows).Error
	return follows, err
}

// GetByFromID returns the edges leaving the user, i.e. who they follow.
func (r *followerRepository) GetByFromID(userID uint) ([]models.Follower, error) {
	var follows []models.Follower
	err := r.db.Where("user_from_id = ?", userID).Order("id").Find(&follows).Error
	return follows, err
}

func (r *followerRepository) Update(follow *models.Follower) error {
	return r.db.Save(follow).Error
}

func (r *followerRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Follower{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *followerRepository) PairExists(fromID, toID, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follower{}).
		Where("user_from_id = ? AND user_to_id = ? AND id <> ?", fromID, toID, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *followerRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follower{}).
		Where("user_from_id = ? OR user_to_id = ?", userID, userID).
		Count(&count).Error
	return count, err
}

func (r *followerRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_from_id = ? OR user_to_id = ?", userID, userID).
		Delete(&models.Follower{}).Error
}
