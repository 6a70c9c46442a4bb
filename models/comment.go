package models

// Comment represents a comment written by a user on a post.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	PostID  uint   `gorm:"not null;index" json:"post_id"`
	Content string `gorm:"size:300;not null" json:"content"`
}

// TableName overrides the table name used by GORM
func (Comment) TableName() string {
	return "comments"
}
