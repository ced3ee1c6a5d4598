package utils

import (
	"strings"
	"testing"
)

func TestUniqueFilename(t *testing.T) {
	t.Run("keeps the extension", func(t *testing.T) {
		tests := []struct {
			original string
			wantExt  string
		}{
			{original: "forest.jpg", wantExt: ".jpg"},
			{original: "Sunset Photo.PNG", wantExt: ".png"},
			{original: "noextension", wantExt: ""},
		}
		for _, tt := range tests {
			got := UniqueFilename(tt.original)
			if !strings.HasSuffix(got, tt.wantExt) {
				t.Errorf("UniqueFilename(%q) = %q, want suffix %q", tt.original, got, tt.wantExt)
			}
		}
	})

	t.Run("never collides", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 1000; i++ {
			name := UniqueFilename("forest.jpg")
			if seen[name] {
				t.Fatalf("duplicate stored name %q", name)
			}
			seen[name] = true
		}
	})
}
