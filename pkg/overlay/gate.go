package overlay

import (
	"image"

	"github.com/mariem115/defectdoc/pkg/types"
	"github.com/mariem115/defectdoc/pkg/verdict"
)

// Overlay gates arrow rendering on the review screen. The source and the
// composite arrive from independent loads; nothing is drawn until both are
// present, and geometry is recomputed only when the crop region or either
// bitmap's identity changes.
type Overlay struct {
	renderer *Renderer

	sourceID    string
	source      image.Image
	compositeID string
	composite   image.Image

	crop    types.CropRegion
	verdict verdict.Verdict

	geom  Geometry
	dirty bool
}

// NewOverlay creates an overlay for one crop region and verdict.
func NewOverlay(v verdict.Verdict, crop types.CropRegion) *Overlay {
	return &Overlay{
		renderer: NewRenderer(),
		verdict:  v,
		crop:     crop,
		dirty:    true,
	}
}

// SetSource supplies the reloaded source bitmap. The id identifies the
// bitmap; a changed id invalidates cached geometry.
func (o *Overlay) SetSource(id string, img image.Image) {
	if o.sourceID != id {
		o.dirty = true
	}
	o.sourceID = id
	o.source = img
}

// SetComposite supplies the reloaded composite bitmap.
func (o *Overlay) SetComposite(id string, img image.Image) {
	if o.compositeID != id {
		o.dirty = true
	}
	o.compositeID = id
	o.composite = img
}

// SetCrop replaces the crop region.
func (o *Overlay) SetCrop(crop types.CropRegion) {
	if o.crop != crop {
		o.dirty = true
	}
	o.crop = crop
}

// Ready reports whether both bitmaps are present.
func (o *Overlay) Ready() bool {
	return o.source != nil && o.composite != nil
}

// Render draws the arrow onto dst. Until both bitmaps are present it draws
// nothing and returns ErrNotReady.
func (o *Overlay) Render(dst *image.NRGBA) error {
	if !o.Ready() {
		return ErrNotReady
	}

	if o.dirty {
		sb := o.source.Bounds()
		geom, err := o.renderer.Geometry(sb.Dx(), sb.Dy(), o.crop)
		if err != nil {
			return err
		}
		o.geom = geom
		o.dirty = false
	}

	o.renderer.Draw(dst, o.geom, o.verdict)
	return nil
}
