package ingest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder

	_ "golang.org/x/image/tiff" // register decoder

	"github.com/presslint/presslint/model"
)

// ImageInfo is what can be learned from embedded image bytes without a full
// decode: intrinsic pixel dimensions and the pixel color model.
type ImageInfo struct {
	Format      string
	PixelWidth  int
	PixelHeight int
	ColorModel  model.ColorSpace
}

// SniffImage reads the header of an embedded image and reports its intrinsic
// pixel dimensions and color model. JPEG, PNG, GIF and TIFF are recognized.
func SniffImage(data []byte) (ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("sniffing image: %w", err)
	}

	return ImageInfo{
		Format:      format,
		PixelWidth:  cfg.Width,
		PixelHeight: cfg.Height,
		ColorModel:  classifyColorModel(cfg.ColorModel),
	}, nil
}

func classifyColorModel(m color.Model) model.ColorSpace {
	switch m {
	case color.YCbCrModel, color.RGBAModel, color.RGBA64Model,
		color.NRGBAModel, color.NRGBA64Model, color.NYCbCrAModel:
		return model.ColorSpaceRGB
	case color.CMYKModel:
		return model.ColorSpaceCMYK
	case color.GrayModel, color.Gray16Model:
		return model.ColorSpaceGray
	}
	if _, ok := m.(color.Palette); ok {
		return model.ColorSpaceIndexed
	}
	return model.ColorSpaceUnknown
}
