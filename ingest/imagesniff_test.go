package ingest

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/presslint/presslint/model"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return buf.Bytes()
}

func TestSniffPNGDimensionsAndColor(t *testing.T) {
	data := encodePNG(t, image.NewRGBA(image.Rect(0, 0, 40, 30)))

	info, err := SniffImage(data)
	if err != nil {
		t.Fatalf("SniffImage failed: %v", err)
	}
	if info.Format != "png" {
		t.Errorf("format = %q, want png", info.Format)
	}
	if info.PixelWidth != 40 || info.PixelHeight != 30 {
		t.Errorf("dimensions = %dx%d, want 40x30", info.PixelWidth, info.PixelHeight)
	}
	if info.ColorModel != model.ColorSpaceRGB {
		t.Errorf("color model = %v, want rgb", info.ColorModel)
	}
}

func TestSniffGrayscale(t *testing.T) {
	data := encodePNG(t, image.NewGray(image.Rect(0, 0, 8, 8)))

	info, err := SniffImage(data)
	if err != nil {
		t.Fatalf("SniffImage failed: %v", err)
	}
	if info.ColorModel != model.ColorSpaceGray {
		t.Errorf("color model = %v, want grayscale", info.ColorModel)
	}
}

func TestSniffPalettedGIF(t *testing.T) {
	palette := color.Palette{color.Black, color.White}
	img := image.NewPaletted(image.Rect(0, 0, 8, 8), palette)
	var buf bytes.Buffer
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	info, err := SniffImage(buf.Bytes())
	if err != nil {
		t.Fatalf("SniffImage failed: %v", err)
	}
	if info.ColorModel != model.ColorSpaceIndexed {
		t.Errorf("color model = %v, want indexed", info.ColorModel)
	}
}

func TestSniffGarbageFails(t *testing.T) {
	if _, err := SniffImage([]byte("not an image at all")); err == nil {
		t.Fatal("expected an error for non-image bytes")
	}
}

func TestStreamImageSniffedDuringBuild(t *testing.T) {
	stream := &Stream{
		Pages: []PageInput{{
			Width:  420,
			Height: 595,
			Images: []ImageInput{{
				Name: "inline.png",
				BBox: model.BBox{X: 50, Y: 100, Width: 100, Height: 75},
				Data: encodePNG(t, image.NewRGBA(image.Rect(0, 0, 40, 30))),
			}},
		}},
	}

	doc, degraded, err := Build(stream, testOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(degraded) != 0 {
		t.Fatalf("got %d degraded issues, want 0", len(degraded))
	}

	images := doc.ImagesOn(1)
	if len(images) != 1 {
		t.Fatalf("got %d images, want 1", len(images))
	}
	img := images[0]
	if img.PixelWidth != 40 || img.PixelHeight != 30 {
		t.Errorf("sniffed dimensions = %dx%d, want 40x30", img.PixelWidth, img.PixelHeight)
	}
	if img.EmbeddedColorModel != model.ColorSpaceRGB {
		t.Errorf("embedded color model = %v, want rgb", img.EmbeddedColorModel)
	}
}
