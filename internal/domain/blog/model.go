package blog

import "time"

// Post is a blog entry. Only published posts are visible on the public
// site; the admin surface sees everything.
type Post struct {
	ID            uint      `gorm:"primaryKey"                             json:"id"`
	Title         string    `gorm:"not null"                               json:"title"`
	Slug          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Content       string    `gorm:"type:text;not null"                     json:"content"`
	Excerpt       string    `gorm:"type:text"                              json:"excerpt"`
	FeaturedImage string    `gorm:"type:varchar(500)"                      json:"featured_image"`
	Author        string    `gorm:"default:'Admin'"                        json:"author"`
	Published     bool      `gorm:"default:false"                          json:"published"`
	CreatedAt     time.Time `                                              json:"created_at"`
	UpdatedAt     time.Time `                                              json:"updated_at"`
}
