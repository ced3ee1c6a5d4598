package client

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MaxDescriptionLength is the longest description the form accepts.
const MaxDescriptionLength = 600

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// ValidateUpload runs the same checks the upload form applies before
// submitting. The extension allow-list is a convenience, not a security
// boundary.
func ValidateUpload(name, email, description, filename string) error {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(description) == "" ||
		filename == "" {
		return errors.New("please fill in all fields and select an image")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return errors.New("description must be at most 600 characters")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return errors.New("please upload only image files (.jpg, .jpeg, .png, .gif)")
	}
	return nil
}

// ClampDescription applies an edit to the description field. An edit that
// would push the text past the limit is refused outright, keeping the
// previous value, rather than truncated.
func ClampDescription(current, proposed string) string {
	if utf8.RuneCountInString(proposed) > MaxDescriptionLength {
		return current
	}
	return proposed
}
