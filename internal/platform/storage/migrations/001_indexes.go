package migrations

import "gorm.io/gorm"

// Migration001Indexes adds the query indexes the public site leans on:
// published-post listing and unread-message counting.
type Migration001Indexes struct{}

func (m *Migration001Indexes) Version() string {
	return "001"
}

func (m *Migration001Indexes) Description() string {
	return "listing indexes for blog posts and contact messages"
}

func (m *Migration001Indexes) Up(db *gorm.DB) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_posts_published_created ON posts (published, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_read ON messages ("read")`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

func (m *Migration001Indexes) Down(db *gorm.DB) error {
	statements := []string{
		`DROP INDEX IF EXISTS idx_posts_published_created`,
		`DROP INDEX IF EXISTS idx_messages_read`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
