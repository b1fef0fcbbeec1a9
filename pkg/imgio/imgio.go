// Package imgio loads the bitmaps consumed by the rendering pipeline.
// Decoding covers JPEG, PNG, GIF, BMP and TIFF through imaging's registered
// decoders, with a WebP fallback.
package imgio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var (
	// ErrMissingFile is returned when an input path does not exist.
	ErrMissingFile = errors.New("source file missing")

	// ErrDecode is returned when bitmap bytes cannot be decoded.
	ErrDecode = errors.New("image decode failed")
)

// Loader reads bitmaps from disk or memory.
type Loader struct {
	config Config
}

// Config holds loader limits.
type Config struct {
	// MinImageSize is the smallest accepted width or height, in pixels.
	MinImageSize int
}

// New creates a Loader with default configuration.
func New() *Loader {
	return &Loader{config: Config{MinImageSize: 1}}
}

// NewWithConfig creates a Loader with custom configuration.
func NewWithConfig(config Config) *Loader {
	return &Loader{config: config}
}

// LoadImage loads and decodes a bitmap from a file path.
func (l *Loader) LoadImage(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingFile)
	}

	if img, err := imaging.Open(path); err == nil {
		if err := l.validate(img); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return img, nil
	}

	// The file exists; a read failure here is an I/O problem, not a
	// missing input.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, errors.Join(ErrDecode, err))
	}

	img, err := l.DecodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadImageFromReader decodes a bitmap from a reader.
func (l *Loader) LoadImageFromReader(reader io.Reader) (image.Image, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read image bytes: %w", err)
	}
	return l.DecodeBytes(data)
}

// DecodeBytes decodes a bitmap from raw bytes, trying the registered
// decoders first and WebP as a fallback.
func (l *Loader) DecodeBytes(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		img, err = webp.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, ErrDecode
	}

	if err := l.validate(img); err != nil {
		return nil, err
	}
	return img, nil
}

func (l *Loader) validate(img image.Image) error {
	b := img.Bounds()
	if b.Dx() < l.config.MinImageSize || b.Dy() < l.config.MinImageSize {
		return fmt.Errorf("image too small: %dx%d (minimum: %d): %w",
			b.Dx(), b.Dy(), l.config.MinImageSize, ErrDecode)
	}
	return nil
}
