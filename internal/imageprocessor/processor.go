package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ErrNotAnImage is returned when the payload cannot be decoded as JPEG or PNG.
var ErrNotAnImage = errors.New("payload is not a supported image")

// Size bounds the output of Normalize. Aspect ratio is preserved.
type Size struct {
	Width  int
	Height int
}

// SizeAvatar is the bounding box for profile pictures.
var SizeAvatar = Size{Width: 512, Height: 512}

// Processor decodes, shrinks and re-encodes uploaded pictures.
type Processor struct {
	quality int // JPEG quality (1-100)
}

func NewProcessor(quality int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return &Processor{quality: quality}
}

// Normalize decodes the image, fits it into size and encodes it back in its
// original format. Images already inside the box are re-encoded untouched,
// which strips metadata such as EXIF location.
func (p *Processor) Normalize(r io.Reader, size Size) (*bytes.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	out := p.fit(img, size)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, out, &jpeg.Options{Quality: p.quality})
	case "png":
		err = png.Encode(&buf, out)
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrNotAnImage, format)
	}
	if err != nil {
		return nil, "", fmt.Errorf("encode %s: %w", format, err)
	}
	return &buf, format, nil
}

func (p *Processor) fit(img image.Image, size Size) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= size.Width && h <= size.Height {
		return img
	}

	ratio := float64(w) / float64(h)
	newW, newH := size.Width, size.Height
	if float64(size.Width)/float64(size.Height) > ratio {
		newW = int(float64(size.Height) * ratio)
	} else {
		newH = int(float64(size.Width) / ratio)
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
