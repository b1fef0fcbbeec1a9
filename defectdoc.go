// Package defectdoc renders quality-inspection documentation images.
//
// A composite image combines the original photo, an enlarged crop of the
// inspected detail inside a verdict-colored border, and metadata bands. A
// review screen can later reload the photo and the composite and paint an
// arrow from the crop region to the detail area.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//		"time"
//
//		"github.com/mariem115/defectdoc"
//		"github.com/mariem115/defectdoc/pkg/types"
//		"github.com/mariem115/defectdoc/pkg/verdict"
//	)
//
//	func main() {
//		composer := defectdoc.New()
//
//		source, err := composer.LoadImage("part.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//		detail, err := composer.LoadImage("part_crop.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		meta := types.Annotation{
//			Description:    "Weld seam porosity",
//			ReferenceLabel: "WS-1042",
//			CreatedAt:      time.Now(),
//		}
//
//		path, _, err := composer.ComposeToFile(source, detail, verdict.Bad, meta, "report.png")
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Printf("wrote %s", path)
//	}
//
// The package consists of four main components:
//
// 1. Layout (pkg/layout): deterministic canvas geometry from image sizes
// 2. Compositor (pkg/compositor): raster rendering and lossless encoding
// 3. Overlay (pkg/overlay): review-screen arrow geometry and drawing
// 4. Verdict (pkg/verdict): the tri-state outcome and its color mapping
//
// All components are stateless; a Composer holds no shared mutable state and
// its methods may be called concurrently. Rendering is CPU-bound, so callers
// with interactive surfaces should run ComposeToFile off their UI loop; a
// render that has started always runs to completion.
package defectdoc

import (
	"image"
	"io"

	"github.com/mariem115/defectdoc/pkg/compositor"
	"github.com/mariem115/defectdoc/pkg/imgio"
	"github.com/mariem115/defectdoc/pkg/layout"
	"github.com/mariem115/defectdoc/pkg/overlay"
	"github.com/mariem115/defectdoc/pkg/types"
	"github.com/mariem115/defectdoc/pkg/verdict"
)

// Version of the defectdoc library
const Version = "1.0.0"

// Composer provides a high-level interface for producing documentation
// composites and review overlays.
type Composer struct {
	loader     *imgio.Loader
	compositor *compositor.Compositor
	arrows     *overlay.Renderer
}

// New creates a Composer with default configuration.
func New() *Composer {
	return &Composer{
		loader:     imgio.New(),
		compositor: compositor.New(),
		arrows:     overlay.NewRenderer(),
	}
}

// NewWithConfig creates a Composer with custom loader and compositor
// configuration.
func NewWithConfig(loaderConfig imgio.Config, compositorConfig compositor.Config) *Composer {
	return &Composer{
		loader:     imgio.NewWithConfig(loaderConfig),
		compositor: compositor.NewWithConfig(compositorConfig),
		arrows:     overlay.NewRenderer(),
	}
}

// LoadImage loads a bitmap from a file path.
func (c *Composer) LoadImage(path string) (image.Image, error) {
	return c.loader.LoadImage(path)
}

// LoadImageFromReader loads a bitmap from an io.Reader.
func (c *Composer) LoadImageFromReader(reader io.Reader) (image.Image, error) {
	return c.loader.LoadImageFromReader(reader)
}

// Compose renders the composite in memory.
func (c *Composer) Compose(source, detail image.Image, v verdict.Verdict, meta types.Annotation) (*image.NRGBA, layout.Result, error) {
	return c.compositor.Render(source, detail, v, meta)
}

// ComposeToFile renders the composite and writes it to path. The file is
// written only after the full render succeeds.
func (c *Composer) ComposeToFile(source, detail image.Image, v verdict.Verdict, meta types.Annotation, path string) (string, layout.Result, error) {
	return c.compositor.RenderToFile(source, detail, v, meta, path)
}

// ComposeFiles loads the source and detail bitmaps from disk, renders the
// composite and writes it to outPath.
func (c *Composer) ComposeFiles(sourcePath, detailPath string, v verdict.Verdict, meta types.Annotation, outPath string) (string, layout.Result, error) {
	source, err := c.loader.LoadImage(sourcePath)
	if err != nil {
		return "", layout.Result{}, err
	}

	detail, err := c.loader.LoadImage(detailPath)
	if err != nil {
		return "", layout.Result{}, err
	}

	return c.compositor.RenderToFile(source, detail, v, meta, outPath)
}

// ArrowGeometry re-derives the review-screen arrow placement for a crop
// region, given only the source dimensions.
func (c *Composer) ArrowGeometry(sourceW, sourceH int, crop types.CropRegion) (overlay.Geometry, error) {
	return c.arrows.Geometry(sourceW, sourceH, crop)
}

// NewReviewOverlay creates the gated overlay used by a review screen. The
// overlay draws nothing until both the source and the composite have been
// supplied.
func (c *Composer) NewReviewOverlay(v verdict.Verdict, crop types.CropRegion) *overlay.Overlay {
	return overlay.NewOverlay(v, crop)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
