package projects

import (
	"time"

	"gorm.io/datatypes"
)

// Project is a portfolio entry shown on the public site.
type Project struct {
	ID           uint                       `gorm:"primaryKey"        json:"id"`
	Title        string                     `gorm:"not null"          json:"title"`
	Description  string                     `gorm:"type:text"         json:"description"`
	ImageURL     string                     `gorm:"type:varchar(500)" json:"image_url"`
	ProjectURL   string                     `gorm:"type:varchar(500)" json:"project_url"`
	GithubURL    string                     `gorm:"type:varchar(500)" json:"github_url"`
	Technologies datatypes.JSONSlice[string] `                         json:"technologies"`
	Featured     bool                       `gorm:"default:false"     json:"featured"`
	CreatedAt    time.Time                  `                         json:"created_at"`
	UpdatedAt    time.Time                  `                         json:"updated_at"`
}
