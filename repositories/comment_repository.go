package repositories

import (
	"gorm.io/gorm"

	"api/models"
)

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Insert(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetAll() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Order("id").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) GetByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).Order("id").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.Comment{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *commentRepository) CountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *commentRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *commentRepository) DeleteByPostID(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}

func (r *commentRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Comment{}).Error
}

// DeleteByPostOwner removes comments left on any post owned by the user.
func (r *commentRepository) DeleteByPostOwner(userID uint) error {
	sub := r.db.Model(&models.Post{}).Select("id").Where("user_id = ?", userID)
	return r.db.Where("post_id IN (?)", sub).Delete(&models.Comment{}).Error
}
