package users

import "time"

// User is a credential-store row. In practice a single admin account
// exists, though nothing here forbids more.
type User struct {
	ID        uint      `gorm:"primaryKey"                             json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null"                               json:"-"` // bcrypt hash, never serialized
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `                                              json:"createdAt"`
	UpdatedAt time.Time `                                              json:"updatedAt"`
}
