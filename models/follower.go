package models

// Follower is a directed follow edge: UserFromID follows UserToID.
// The (from, to) pair is unique.
type Follower struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	UserFromID uint `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"user_from_id"`
	UserToID   uint `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"user_to_id"`
}

// TableName overrides the table name used by GORM
func (Follower) TableName() string {
	return "followers"
}
