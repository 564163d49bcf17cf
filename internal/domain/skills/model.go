package skills

import "time"

type Skill struct {
	ID        uint      `gorm:"primaryKey"                     json:"id"`
	Name      string    `gorm:"not null"                       json:"name"`
	Level     string    `gorm:"type:varchar(100);default:'Intermediate'" json:"level"`
	Category  string    `gorm:"type:varchar(100)"              json:"category"`
	CreatedAt time.Time `                                      json:"created_at"`
	UpdatedAt time.Time `                                      json:"updated_at"`
}
