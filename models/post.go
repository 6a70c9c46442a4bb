package models

// Post represents an image shared by a user. Caption is optional.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	ImageURL string `gorm:"size:255;not null" json:"image_url"`
	Caption  string `gorm:"size:500" json:"caption"`
}

// TableName overrides the table name used by GORM
func (Post) TableName() string {
	return "posts"
}
