package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetFileExtension(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"photo.JPG", "jpg"},
		{"a/b/photo.png", "png"},
		{"noext", ""},
		{"archive.tar.gz", "gz"},
	}

	for _, test := range tests {
		if got := GetFileExtension(test.input); got != test.expected {
			t.Errorf("GetFileExtension(%q) = %q, want %q", test.input, got, test.expected)
		}
	}
}

func TestIsImageFile(t *testing.T) {
	if !IsImageFile("shot.webp") {
		t.Error("webp should be recognized as an image")
	}
	if IsImageFile("notes.txt") {
		t.Error("txt should not be recognized as an image")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "photo.png")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("existing file should be reported")
	}
	if FileExists(dir) {
		t.Error("directories are not files")
	}
	if FileExists(filepath.Join(dir, "missing.png")) {
		t.Error("missing file should not be reported")
	}
	// Stat errors other than not-exist (here: a path routed through a
	// regular file) must report false, not panic.
	if FileExists(filepath.Join(file, "child.png")) {
		t.Error("path through a regular file should not be reported")
	}
}

func TestGenerateOutputFilename(t *testing.T) {
	got := GenerateOutputFilename("shots/part_07.jpg", "out", "qc_", "_report", "png")
	want := filepath.Join("out", "qc_part_07_report.png")
	if got != want {
		t.Errorf("GenerateOutputFilename = %q, want %q", got, want)
	}
}

func TestGenerateOutputFilenameDefaultFormat(t *testing.T) {
	got := GenerateOutputFilename("part.jpg", "out", "", "_report", "")
	want := filepath.Join("out", "part_report.png")
	if got != want {
		t.Errorf("GenerateOutputFilename = %q, want %q", got, want)
	}
}
