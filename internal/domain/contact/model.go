package contact

import "time"

// Message is a contact-form submission. Reference is the public handle
// returned to the sender; internal ids stay internal.
type Message struct {
	ID        uint      `gorm:"primaryKey"                            json:"id"`
	Reference string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"reference"`
	Name      string    `gorm:"not null"                              json:"name"`
	Email     string    `gorm:"not null"                              json:"email"`
	Subject   string    `gorm:"default:'No subject'"                  json:"subject"`
	Message   string    `gorm:"type:text;not null"                    json:"message"`
	Read      bool      `gorm:"default:false"                         json:"read"`
	CreatedAt time.Time `                                             json:"created_at"`
}
