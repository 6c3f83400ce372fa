package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/sportsmeet/internal/app/models"
	"github.com/yigit/sportsmeet/internal/db"
)

// IContactRepository defines the interface for contact message storage
type IContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

// ContactRepository stores contact form submissions
type ContactRepository struct {
	db *db.PostgresDB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(database *db.PostgresDB) *ContactRepository {
	return &ContactRepository{db: database}
}

// Create inserts a contact message
func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	sql, args, err := squirrel.Insert("contact_messages").
		Columns("name", "email", "message").
		Values(msg.Name, msg.Email, msg.Message).
		Suffix("RETURNING id, sent_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&msg.ID, &msg.SentAt); err != nil {
		return fmt.Errorf("error saving contact message: %w", err)
	}
	return nil
}
