package models

// User represents an account on the platform.
// The password is stored as an opaque string and never serialized.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Password  string `gorm:"size:128;not null" json:"-"`
	// The create path defaults this to true; no column default so an
	// explicit false is written as-is.
	IsActive bool `gorm:"not null" json:"is_active"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}
