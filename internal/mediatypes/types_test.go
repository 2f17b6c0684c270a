package mediatypes

import "testing"

func TestIsImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"/media/photo.jpg", true},
		{"/media/photo.JPG", true},
		{"/media/photo.JpEg", true},
		{"/media/photo.png", true},
		{"/media/photo.webp", true},
		{"/media/photo.svg", true},
		{"/media/notes.txt", false},
		{"/media/clip.mp4", false},
		{"/media/noext", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsImage(tt.path); got != tt.want {
			t.Errorf("IsImage(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/media/photo.jpg", "image/jpeg"},
		{"/media/photo.JPEG", "image/jpeg"},
		{"/media/photo.png", "image/png"},
		{"/media/photo.webp", "image/webp"},
		{"/media/unknown.zzz", "application/octet-stream"},
		{"/media/noext", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := ContentType(tt.path); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
