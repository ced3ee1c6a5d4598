package models

import "time"

// Image is a stored photo submission. Comments are eagerly attached when
// listing the gallery; the JSON keys match the shape the frontend consumes.
type Image struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
	Comments    []Comment `json:"Comments"`
}

type Comment struct {
	ID        int       `json:"id"`
	ImageID   int       `json:"ImageId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
