package domain

import "time"

// User is a registered account. Password always holds a bcrypt hash, never
// the raw credential.
type User struct {
	ID        int64     `json:"id,string" form:"id"`
	Username  string    `gorm:"uniqueIndex;size:80" json:"username" form:"username"`
	Email     string    `gorm:"uniqueIndex;size:120" json:"email" form:"email"`
	Password  string    `json:"-" form:"-"`
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (User) TableName() string {
	return "users"
}
