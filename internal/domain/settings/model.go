package settings

import "time"

// Setting is a single site configuration row, addressed by key.
type Setting struct {
	ID        uint      `gorm:"primaryKey"                             json:"id"`
	Key       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text"                              json:"value"`
	UpdatedAt time.Time `                                              json:"updated_at"`
}
