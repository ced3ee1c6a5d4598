package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9\s()+-]+$`)
)

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate applies the same checks the contact form runs before submitting.
func (m *ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" ||
		strings.TrimSpace(m.Email) == "" ||
		strings.TrimSpace(m.Phone) == "" ||
		strings.TrimSpace(m.Message) == "" {
		return errors.New("please fill in all fields")
	}
	if !emailPattern.MatchString(m.Email) {
		return errors.New("please enter a valid email address")
	}
	if !phonePattern.MatchString(m.Phone) {
		return errors.New("please enter a valid phone number")
	}
	return nil
}
