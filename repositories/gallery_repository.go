package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"nature-gallery/models"
)

// ErrImageNotFound signals a like or comment against an unknown image id.
var ErrImageNotFound = errors.New("image not found")

// GalleryRepository is the persistence contract for photo submissions.
type GalleryRepository interface {
	CreateImage(ctx context.Context, image *models.Image) error
	ListImages(ctx context.Context) ([]models.Image, error)
	IncrementLikes(ctx context.Context, id int) (int, error)
	CreateComment(ctx context.Context, imageID int, text string) error
	ListComments(ctx context.Context, imageID int) ([]models.Comment, error)
}

type PostgresGalleryRepository struct{}

func NewGalleryRepository() *PostgresGalleryRepository {
	return &PostgresGalleryRepository{}
}

func (r *PostgresGalleryRepository) CreateImage(ctx context.Context, image *models.Image) error {
	query := `
		INSERT INTO images (name, email, description, image_url, likes, created_at)
		VALUES ($1, $2, $3, $4, 0, $5)
		RETURNING id, likes, created_at
	`
	return models.DB.QueryRow(ctx, query,
		image.Name, image.Email, image.Description, image.ImageURL, time.Now(),
	).Scan(&image.ID, &image.Likes, &image.CreatedAt)
}

func (r *PostgresGalleryRepository) ListImages(ctx context.Context) ([]models.Image, error) {
	query := `SELECT id, name, email, description, image_url, likes, created_at
	          FROM images ORDER BY created_at DESC`

	rows, err := models.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []models.Image{}
	index := map[int]int{}
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ID, &img.Name, &img.Email, &img.Description,
			&img.ImageURL, &img.Likes, &img.CreatedAt); err != nil {
			return nil, err
		}
		img.Comments = []models.Comment{}
		index[img.ID] = len(images)
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	commentQuery := `SELECT id, image_id, text, created_at
	                 FROM comments ORDER BY created_at ASC, id ASC`

	commentRows, err := models.DB.Query(ctx, commentQuery)
	if err != nil {
		return nil, err
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var c models.Comment
		if err := commentRows.Scan(&c.ID, &c.ImageID, &c.Text, &c.Timestamp); err != nil {
			return nil, err
		}
		if i, ok := index[c.ImageID]; ok {
			images[i].Comments = append(images[i].Comments, c)
		}
	}
	return images, commentRows.Err()
}

// IncrementLikes bumps the counter in a single UPDATE so concurrent likes
// never lose updates.
func (r *PostgresGalleryRepository) IncrementLikes(ctx context.Context, id int) (int, error) {
	var likes int
	err := models.DB.QueryRow(ctx,
		`UPDATE images SET likes = likes + 1 WHERE id = $1 RETURNING likes`, id,
	).Scan(&likes)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrImageNotFound
	}
	if err != nil {
		return 0, err
	}
	return likes, nil
}

func (r *PostgresGalleryRepository) CreateComment(ctx context.Context, imageID int, text string) error {
	var exists bool
	err := models.DB.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM images WHERE id = $1)`, imageID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrImageNotFound
	}

	_, err = models.DB.Exec(ctx,
		`INSERT INTO comments (image_id, text, created_at) VALUES ($1, $2, $3)`,
		imageID, text, time.Now(),
	)
	return err
}

func (r *PostgresGalleryRepository) ListComments(ctx context.Context, imageID int) ([]models.Comment, error) {
	query := `SELECT id, image_id, text, created_at FROM comments
	          WHERE image_id = $1 ORDER BY created_at ASC, id ASC`

	rows, err := models.DB.Query(ctx, query, imageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ImageID, &c.Text, &c.Timestamp); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
