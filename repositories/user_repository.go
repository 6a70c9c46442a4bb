package repositories

import (
	"gorm.io/gorm"

	"api/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Insert creates a new user; the database assigns the next id.
func (r *userRepository) Insert(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&models.User{}, id)
	return res.RowsAffected > 0, res.Error
}

// ExistsByEmail reports whether another user already owns the email.
// excludeID is skipped so updates don't conflict with the record itself.
func (r *userRepository) ExistsByEmail(email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}
