package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/mariem115/defectdoc"
	"github.com/mariem115/defectdoc/internal/config"
	"github.com/mariem115/defectdoc/internal/utils"
	"github.com/mariem115/defectdoc/pkg/compositor"
	"github.com/mariem115/defectdoc/pkg/imgio"
	"github.com/mariem115/defectdoc/pkg/types"
	"github.com/mariem115/defectdoc/pkg/verdict"
)

func main() {
	var source, detail, cropSpec, verdictCode, desc, ref, out, format, preview string

	flag.StringVar(&source, "source", "", "original photo path (jpg/png/webp)")
	flag.StringVar(&detail, "detail", "", "detail crop bitmap path")
	flag.StringVar(&cropSpec, "crop", "", "crop rectangle in source pixels: left,top,width,height")
	flag.StringVar(&verdictCode, "verdict", "neutral", "inspection verdict: good|bad|neutral")
	flag.StringVar(&desc, "desc", "", "description shown in the header band")
	flag.StringVar(&ref, "ref", "", "reference label shown in the footer")
	flag.StringVar(&out, "out", "", "output path (default: derived from source name and config)")
	flag.StringVar(&format, "format", "", "lossless output format: png|webp (default from config)")
	flag.StringVar(&preview, "preview", "", "optional path for a review preview with the arrow overlay drawn")

	flag.Parse()
	if source == "" || detail == "" {
		log.Fatalf("usage: %s -source photo.jpg -detail crop.jpg [-crop l,t,w,h] [-verdict good|bad|neutral] [-desc text] [-ref label] [-out report.png] [-preview preview.png]",
			filepath.Base(os.Args[0]))
	}

	for _, p := range []string{source, detail} {
		if !utils.FileExists(p) {
			log.Fatalf("input not found: %s", p)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if format != "" {
		cfg.Composite.Format = format
		if err := cfg.Validate(); err != nil {
			log.Fatalf("config: %v", err)
		}
	}

	if out == "" {
		if err := utils.EnsureDir(cfg.Output.OutputDir); err != nil {
			log.Fatalf("output dir: %v", err)
		}
		out = utils.GenerateOutputFilename(source, cfg.Output.OutputDir,
			cfg.Output.Prefix, cfg.Output.Suffix, cfg.Composite.Format)
	}

	composer := defectdoc.NewWithConfig(
		imgio.Config{MinImageSize: cfg.Loader.MinImageSize},
		compositor.Config{Format: cfg.Composite.Format, DateFormat: cfg.Composite.DateFormat},
	)

	meta := types.Annotation{
		Description:    desc,
		ReferenceLabel: ref,
		CreatedAt:      time.Now(),
	}
	v := verdict.Parse(verdictCode)

	path, res, err := composer.ComposeFiles(source, detail, v, meta, out)
	if err != nil {
		log.Fatalf("compose: %v", err)
	}
	log.Printf("wrote %s (%dx%d, verdict=%s)", path, res.TotalWidth, res.TotalHeight, v)

	if preview == "" {
		return
	}

	crop, err := parseCrop(cropSpec)
	if err != nil {
		log.Fatalf("crop: %v", err)
	}

	if err := writePreview(composer, source, path, crop, v, preview); err != nil {
		log.Fatalf("preview: %v", err)
	}
	log.Printf("wrote %s", preview)
}

// writePreview simulates the review screen: it reloads the source and the
// composite, gates rendering on both, and draws the arrow overlay onto a
// copy of the composite.
func writePreview(composer *defectdoc.Composer, sourcePath, compositePath string, crop types.CropRegion, v verdict.Verdict, previewPath string) error {
	sourceImg, err := composer.LoadImage(sourcePath)
	if err != nil {
		return err
	}
	compositeImg, err := composer.LoadImage(compositePath)
	if err != nil {
		return err
	}

	ov := composer.NewReviewOverlay(v, crop)
	ov.SetSource(sourcePath, sourceImg)
	ov.SetComposite(compositePath, compositeImg)

	canvas := imaging.Clone(compositeImg)
	if err := ov.Render(canvas); err != nil {
		return err
	}

	return imaging.Save(canvas, previewPath)
}

// parseCrop parses "left,top,width,height".
func parseCrop(spec string) (types.CropRegion, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return types.CropRegion{}, fmt.Errorf("expected left,top,width,height, got %q", spec)
	}

	vals := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return types.CropRegion{}, fmt.Errorf("bad crop component %q: %w", p, err)
		}
		vals[i] = n
	}

	return types.CropRegion{Left: vals[0], Top: vals[1], Width: vals[2], Height: vals[3]}, nil
}
