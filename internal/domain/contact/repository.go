package contact

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-cms/internal/platform/errors"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create stores a submission, assigning its public reference.
func (r *Repository) Create(ctx context.Context, msg *Message) error {
	if msg.Reference == "" {
		msg.Reference = uuid.NewString()
	}
	if msg.Subject == "" {
		msg.Subject = "No subject"
	}
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return errors.Wrap(errors.KindStorage, "contact.create", "failed to store message", err)
	}
	return nil
}

// List returns all messages, newest first.
func (r *Repository) List(ctx context.Context) ([]Message, error) {
	var list []Message
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(errors.KindStorage, "contact.list", "failed to list messages", err)
	}
	return list, nil
}

// MarkRead flags a message as read, returning nil when the id is missing.
func (r *Repository) MarkRead(ctx context.Context, id uint) (*Message, error) {
	var msg Message
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Wrap(errors.KindStorage, "contact.mark_read", "failed to query message", err)
	}

	if err := r.db.WithContext(ctx).Model(&msg).Update("read", true).Error; err != nil {
		return nil, errors.Wrap(errors.KindStorage, "contact.mark_read", "failed to update message", err)
	}
	msg.Read = true
	return &msg, nil
}

// Delete removes a message, reporting whether a row existed.
func (r *Repository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&Message{}, id)
	if result.Error != nil {
		return false, errors.Wrap(errors.KindStorage, "contact.delete", "failed to delete message", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Counts reports total and unread message counts, for dashboard stats.
func (r *Repository) Counts(ctx context.Context) (total, unread int64, err error) {
	if err = r.db.WithContext(ctx).Model(&Message{}).Count(&total).Error; err != nil {
		return 0, 0, errors.Wrap(errors.KindStorage, "contact.counts", "failed to count messages", err)
	}
	if err = r.db.WithContext(ctx).Model(&Message{}).Where("read = ?", false).Count(&unread).Error; err != nil {
		return 0, 0, errors.Wrap(errors.KindStorage, "contact.counts", "failed to count unread messages", err)
	}
	return total, unread, nil
}
