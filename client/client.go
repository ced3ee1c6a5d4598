// Package client is the Go client for the gallery API. It mirrors the
// behavior of the site frontend: server responses replace local state, likes
// are never bumped optimistically, and only one upload may be in flight.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sync/atomic"

	"nature-gallery/models"
)

// ErrUploadInFlight is returned when an upload is attempted while a previous
// one has not finished.
var ErrUploadInFlight = errors.New("an upload is already in progress")

// APIError is a failure reported by the server, carrying its status code and
// the human-readable message from the error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	uploading atomic.Bool
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// UploadRequest is a photo submission. Progress, when set, receives the
// percentage of request bytes sent so far.
type UploadRequest struct {
	Name        string
	Email       string
	Description string
	FileName    string
	File        io.Reader
	Progress    func(percent int)
}

// Upload submits a photo. It validates the form the same way the frontend
// does before sending, and refuses to start while another upload is running.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (*models.Image, error) {
	if err := ValidateUpload(req.Name, req.Email, req.Description, req.FileName); err != nil {
		return nil, err
	}

	if !c.uploading.CompareAndSwap(false, true) {
		return nil, ErrUploadInFlight
	}
	defer c.uploading.Store(false)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("name", req.Name)
	writer.WriteField("email", req.Email)
	writer.WriteField("description", req.Description)

	part, err := writer.CreateFormFile("image", req.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, req.File); err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	var reader io.Reader = body
	if req.Progress != nil {
		reader = newProgressReader(body, int64(body.Len()), req.Progress)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/upload", reader)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var image models.Image
	if err := json.NewDecoder(resp.Body).Decode(&image); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return &image, nil
}

// Images fetches every image with its comments, newest first.
func (c *Client) Images(ctx context.Context) ([]models.Image, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/images", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var images []models.Image
	if err := json.NewDecoder(resp.Body).Decode(&images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}
	return images, nil
}

// Like increments the counter and returns the server's count. Callers
// replace local state with the result rather than incrementing locally.
func (c *Client) Like(ctx context.Context, imageID int) (int, error) {
	url := fmt.Sprintf("%s/images/%d/like", c.BaseURL, imageID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, decodeError(resp)
	}

	var likes models.LikesResponse
	if err := json.NewDecoder(resp.Body).Decode(&likes); err != nil {
		return 0, fmt.Errorf("failed to decode like response: %w", err)
	}
	return likes.Likes, nil
}

// Comment posts a comment and returns the server's full comment list for the
// image. Callers replace their local list with it, never append a stub.
func (c *Client) Comment(ctx context.Context, imageID int, text string) ([]models.Comment, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/images/%d/comment", c.BaseURL, imageID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var comments []models.Comment
	if err := json.NewDecoder(resp.Body).Decode(&comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	return comments, nil
}

// SendContact validates and submits a contact form message.
func (c *Client) SendContact(ctx context.Context, msg models.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/contact", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
}
