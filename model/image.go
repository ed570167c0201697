package model

// ColorSpace represents the declared color space of a placed image.
type ColorSpace int

const (
	ColorSpaceUnknown ColorSpace = iota
	ColorSpaceRGB
	ColorSpaceCMYK
	ColorSpaceGray
	ColorSpaceIndexed
)

// String returns a string representation of the color space
func (c ColorSpace) String() string {
	switch c {
	case ColorSpaceRGB:
		return "rgb"
	case ColorSpaceCMYK:
		return "cmyk"
	case ColorSpaceGray:
		return "grayscale"
	case ColorSpaceIndexed:
		return "indexed"
	default:
		return "unknown"
	}
}

// Image represents an image placed on a page.
type Image struct {
	// Name identifies the image within the document (object name or file name)
	Name string

	// Page is the 1-based page number the image is placed on
	Page int

	// BBox is the placed bounding box in page coordinates (points)
	BBox BBox

	// PixelWidth and PixelHeight are the intrinsic pixel dimensions.
	// Always >= 1 for a well-formed image.
	PixelWidth  int
	PixelHeight int

	// ColorSpace is the color space declared by the producer.
	// Unknown is a valid terminal state, not an error.
	ColorSpace ColorSpace

	// EmbeddedColorModel is the color model sniffed from the embedded
	// image bytes, when they were available to ingestion. Unknown when
	// no bytes were sniffed.
	EmbeddedColorModel ColorSpace
}

// EffectiveDPI returns the resolution the image renders at, per axis, given
// its intrinsic pixel size and placed size in points (72 points per inch).
// Returns 0, 0 for degenerate geometry.
func (i *Image) EffectiveDPI() (x, y float64) {
	if i == nil || !i.BBox.IsValid() || i.PixelWidth < 1 || i.PixelHeight < 1 {
		return 0, 0
	}
	x = float64(i.PixelWidth) / (i.BBox.Width / 72.0)
	y = float64(i.PixelHeight) / (i.BBox.Height / 72.0)
	return x, y
}

// MinEffectiveDPI returns the smaller of the two axis DPI values
func (i *Image) MinEffectiveDPI() float64 {
	x, y := i.EffectiveDPI()
	if y < x {
		return y
	}
	return x
}
