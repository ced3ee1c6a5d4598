package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nature-gallery/models"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name        string
		formName    string
		email       string
		description string
		filename    string
		wantErr     bool
	}{
		{name: "valid", formName: "Alex", email: "a@b.com", description: "a forest", filename: "forest.jpg", wantErr: false},
		{name: "uppercase extension", formName: "Alex", email: "a@b.com", description: "a forest", filename: "forest.JPG", wantErr: false},
		{name: "missing name", email: "a@b.com", description: "a forest", filename: "forest.jpg", wantErr: true},
		{name: "missing file", formName: "Alex", email: "a@b.com", description: "a forest", wantErr: true},
		{name: "disallowed type", formName: "Alex", email: "a@b.com", description: "a forest", filename: "notes.pdf", wantErr: true},
		{name: "webp not allowed", formName: "Alex", email: "a@b.com", description: "a forest", filename: "forest.webp", wantErr: true},
		{name: "description too long", formName: "Alex", email: "a@b.com", description: strings.Repeat("x", 601), filename: "forest.jpg", wantErr: true},
		{name: "description at limit", formName: "Alex", email: "a@b.com", description: strings.Repeat("x", 600), filename: "forest.jpg", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.formName, tt.email, tt.description, tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUpload() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClampDescription(t *testing.T) {
	text := ""
	edits := []string{
		strings.Repeat("a", 300),
		strings.Repeat("a", 600),
		strings.Repeat("a", 601), // refused, stays at 600
		strings.Repeat("a", 650), // refused
		strings.Repeat("a", 100), // shrinking is always allowed
	}

	for _, edit := range edits {
		text = ClampDescription(text, edit)
		if len(text) > MaxDescriptionLength {
			t.Fatalf("description grew to %d characters", len(text))
		}
	}
	if len(text) != 100 {
		t.Errorf("expected final length 100, got %d", len(text))
	}
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		if r.FormValue("name") != "Alex" {
			t.Errorf("name field missing, got %q", r.FormValue("name"))
		}
		json.NewEncoder(w).Encode(models.Image{
			ID:          7,
			Name:        r.FormValue("name"),
			Email:       r.FormValue("email"),
			Description: r.FormValue("description"),
			ImageURL:    "/uploads/stored.jpg",
			Comments:    []models.Comment{},
		})
	}))
	defer server.Close()

	c := New(server.URL)

	var percents []int
	image, err := c.Upload(context.Background(), UploadRequest{
		Name:        "Alex",
		Email:       "alex@example.com",
		Description: "a misty forest",
		FileName:    "forest.jpg",
		File:        strings.NewReader(strings.Repeat("x", 4096)),
		Progress:    func(p int) { percents = append(percents, p) },
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if image.ID != 7 || image.Likes != 0 {
		t.Errorf("unexpected image: %+v", image)
	}
	if len(percents) == 0 || percents[len(percents)-1] != 100 {
		t.Errorf("expected progress to reach 100, got %v", percents)
	}
	for i := 1; i < len(percents); i++ {
		if percents[i] < percents[i-1] {
			t.Errorf("progress went backwards: %v", percents)
		}
	}
}

func TestUpload_RejectsInvalidFormWithoutRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid form must not reach the server")
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Upload(context.Background(), UploadRequest{
		Name:     "Alex",
		FileName: "forest.jpg",
		File:     strings.NewReader("data"),
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestUpload_RefusedWhileInFlight(t *testing.T) {
	c := New("http://unused.invalid")
	c.uploading.Store(true)

	_, err := c.Upload(context.Background(), UploadRequest{
		Name:        "Alex",
		Email:       "a@b.com",
		Description: "a forest",
		FileName:    "forest.jpg",
		File:        strings.NewReader("data"),
	})
	if err != ErrUploadInFlight {
		t.Fatalf("expected ErrUploadInFlight, got %v", err)
	}
}

func TestLike(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/images/1/like":
			json.NewEncoder(w).Encode(models.LikesResponse{Likes: 5})
		case "/images/99/like":
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Image not found"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	c := New(server.URL)

	likes, err := c.Like(context.Background(), 1)
	if err != nil {
		t.Fatalf("Like failed: %v", err)
	}
	if likes != 5 {
		t.Errorf("expected server count 5, got %d", likes)
	}

	_, err = c.Like(context.Background(), 99)
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestComment_ReturnsFullServerList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			t.Errorf("expected a text payload, got err=%v text=%q", err, req.Text)
		}
		json.NewEncoder(w).Encode([]models.Comment{
			{ID: 1, ImageID: 3, Text: "older comment"},
			{ID: 2, ImageID: 3, Text: req.Text},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	comments, err := c.Comment(context.Background(), 3, "lovely")
	if err != nil {
		t.Fatalf("Comment failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected the full list, got %d entries", len(comments))
	}
	if comments[0].Text != "older comment" || comments[1].Text != "lovely" {
		t.Errorf("unexpected list: %+v", comments)
	}
}

func TestImages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Image{
			{ID: 2, Name: "newer", Comments: []models.Comment{{ID: 1, ImageID: 2, Text: "hi"}}},
			{ID: 1, Name: "older", Comments: []models.Comment{}},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	images, err := c.Images(context.Background())
	if err != nil {
		t.Fatalf("Images failed: %v", err)
	}
	if len(images) != 2 || images[0].Name != "newer" {
		t.Errorf("unexpected images: %+v", images)
	}
	if len(images[0].Comments) != 1 {
		t.Errorf("expected nested comments, got %+v", images[0].Comments)
	}
}

func TestSendContact_ValidatesBeforeSending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid contact form must not reach the server")
	}))
	defer server.Close()

	c := New(server.URL)
	err := c.SendContact(context.Background(), models.ContactMessage{
		Name:  "Alex",
		Email: "not-an-email",
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}
}
