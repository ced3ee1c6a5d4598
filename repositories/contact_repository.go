package repositories

import (
	"context"
	"time"

	"nature-gallery/models"
)

type ContactRepository interface {
	CreateMessage(ctx context.Context, msg *models.ContactMessage) error
}

type PostgresContactRepository struct{}

func NewContactRepository() *PostgresContactRepository {
	return &PostgresContactRepository{}
}

func (r *PostgresContactRepository) CreateMessage(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return models.DB.QueryRow(ctx, query,
		msg.Name, msg.Email, msg.Phone, msg.Message, time.Now(),
	).Scan(&msg.ID, &msg.CreatedAt)
}
