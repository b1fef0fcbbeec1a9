// Package compositor renders the final documentation image: the original
// photo on the left, the enlarged detail crop inside a verdict-colored
// border on the right, and gray header/footer bands carrying the annotation
// text.
//
// Rendering is deterministic and purely in-memory; a file materializes only
// after the whole render and encode have succeeded, so callers never observe
// a half-written composite. Each invocation is independent and holds no
// shared state, so renders may run fully in parallel.
package compositor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/mariem115/defectdoc/pkg/layout"
	"github.com/mariem115/defectdoc/pkg/textlayout"
	"github.com/mariem115/defectdoc/pkg/types"
	"github.com/mariem115/defectdoc/pkg/verdict"
)

// ErrEncode is returned when the composite cannot be encoded or written.
var ErrEncode = errors.New("image encode failed")

// Canvas and band colors.
var (
	canvasWhite = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	bandGray    = color.NRGBA{0xE5, 0xE7, 0xEB, 0xFF}
	outlineGray = color.NRGBA{0x9C, 0xA3, 0xAF, 0xFF}
	textBlack   = color.NRGBA{0x11, 0x18, 0x27, 0xFF}
)

// outlineWidth is the cosmetic outline around the original photo.
const outlineWidth = 2

// Config controls output encoding.
type Config struct {
	// Format selects the lossless container: "png" (default) or "webp".
	Format string
	// DateFormat is the time layout for the footer's created-at string.
	DateFormat string
}

// Compositor renders composite documentation images.
type Compositor struct {
	config Config
}

// New creates a Compositor with default configuration.
func New() *Compositor {
	return &Compositor{
		config: Config{
			Format:     "png",
			DateFormat: "2006-01-02 15:04",
		},
	}
}

// NewWithConfig creates a Compositor with custom configuration.
func NewWithConfig(config Config) *Compositor {
	if config.Format == "" {
		config.Format = "png"
	}
	if config.DateFormat == "" {
		config.DateFormat = "2006-01-02 15:04"
	}
	return &Compositor{config: config}
}

// Render composes the documentation image in memory. The detail bitmap's own
// pixel dimensions drive the layout; they are never assumed to match the
// crop rectangle it came from.
func (c *Compositor) Render(source, detail image.Image, v verdict.Verdict, meta types.Annotation) (*image.NRGBA, layout.Result, error) {
	sb, db := source.Bounds(), detail.Bounds()
	res, err := layout.Compute(sb.Dx(), sb.Dy(), db.Dx(), db.Dy())
	if err != nil {
		return nil, layout.Result{}, err
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, res.TotalWidth, res.TotalHeight))
	fillRect(canvas, canvas.Bounds(), canvasWhite)

	// Header and footer bands.
	fillRect(canvas, image.Rect(0, 0, res.TotalWidth, layout.HeaderHeight), bandGray)
	fillRect(canvas, image.Rect(0, res.TotalHeight-layout.FooterHeight, res.TotalWidth, res.TotalHeight), bandGray)

	if meta.Description != "" {
		x := textlayout.CenterX(res.TotalWidth, meta.Description)
		y := textlayout.Baseline(0, layout.HeaderHeight)
		textlayout.Draw(canvas, meta.Description, x, y, textBlack)
	}

	ref := meta.ReferenceLabel
	if ref == "" {
		ref = "N/A"
	}
	refText := "Ref: " + ref
	dateText := "Created: " + meta.CreatedAt.Format(c.config.DateFormat)
	footerTop := res.TotalHeight - layout.FooterHeight
	baseline := textlayout.Baseline(footerTop, layout.FooterHeight)
	textlayout.Draw(canvas, refText, layout.Padding, baseline, textBlack)
	textlayout.Draw(canvas, dateText, textlayout.RightX(res.TotalWidth-layout.Padding, dateText), baseline, textBlack)

	// The verdict border is the filled bounding box showing through around
	// the detail bitmap, which is composited inset by the border width.
	fillRect(canvas, res.DetailBorderRect(), verdict.Color(v))

	scaledSource := imaging.Resize(source, res.ScaledOriginalWidth, res.ScaledOriginalHeight, imaging.Linear)
	pasteAt(canvas, scaledSource, res.OriginalX, res.OriginalY)

	scaledDetail := imaging.Resize(detail, res.ScaledDetailWidth, res.ScaledDetailHeight, imaging.Linear)
	pasteAt(canvas, scaledDetail, res.DetailAreaX+layout.BorderWidth, res.DetailAreaY+layout.BorderWidth)

	strokeRect(canvas, res.OriginalRect(), outlineGray, outlineWidth)

	return canvas, res, nil
}

// RenderToFile renders and encodes the composite, then writes it to path.
// On any failure nothing is written; on success the returned path is the
// input path.
func (c *Compositor) RenderToFile(source, detail image.Image, v verdict.Verdict, meta types.Annotation, path string) (string, layout.Result, error) {
	canvas, res, err := c.Render(source, detail, v, meta)
	if err != nil {
		return "", layout.Result{}, err
	}

	data, err := c.Encode(canvas)
	if err != nil {
		return "", layout.Result{}, err
	}

	if err := writeFileAtomic(path, data); err != nil {
		return "", layout.Result{}, fmt.Errorf("write %s: %w", path, errors.Join(ErrEncode, err))
	}

	return path, res, nil
}

// writeFileAtomic writes data to a temp file in path's directory and renames
// it into place. A failed write never leaves a partial file at path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// Encode serializes the composite losslessly in the configured format.
func (c *Compositor) Encode(img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer

	switch strings.ToLower(c.config.Format) {
	case "webp":
		if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
			return nil, fmt.Errorf("webp: %w", errors.Join(ErrEncode, err))
		}
	case "png", "":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("png: %w", errors.Join(ErrEncode, err))
		}
	default:
		return nil, fmt.Errorf("format %q: %w", c.config.Format, ErrEncode)
	}

	return buf.Bytes(), nil
}
