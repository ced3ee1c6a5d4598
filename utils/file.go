package utils

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores an uploaded photo and returns the URL or path the image
// record should reference.
type Uploader interface {
	Save(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}

// LocalUploader writes uploads to a directory served by the static route.
type LocalUploader struct {
	Dir      string
	BasePath string
}

func NewLocalUploader(dir string) *LocalUploader {
	return &LocalUploader{Dir: dir, BasePath: "/uploads"}
}

func (u *LocalUploader) Save(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(u.Dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := UniqueFilename(fileHeader.Filename)

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.Dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return path.Join(u.BasePath, filename), nil
}

// UniqueFilename generates a collision-free stored name. Wall-clock names are
// not unique under concurrent uploads within one tick, so a UUID is used.
func UniqueFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return uuid.New().String() + ext
}
