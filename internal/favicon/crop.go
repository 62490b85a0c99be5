// Package favicon derives a circular site icon from an existing square or
// rectangular icon image.
package favicon

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// ErrEmptyImage is returned when the source image has no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// DataURIPrefix prefixes every synthesized icon.
const DataURIPrefix = "data:image/png;base64,"

// Crop returns a min(w,h) square image with src centred in it and every pixel
// outside the inscribed circle left fully transparent. Pixels inside the
// circle are copied unmodified. The longer axis is cropped symmetrically.
func Crop(src image.Image) *image.NRGBA {
	b := src.Bounds()
	size := min(b.Dx(), b.Dy())
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if size == 0 {
		return dst
	}

	originX := b.Min.X + (b.Dx()-size)/2
	originY := b.Min.Y + (b.Dy()-size)/2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !InCircle(x, y, size) {
				continue
			}
			c := color.NRGBAModel.Convert(src.At(originX+x, originY+y)).(color.NRGBA)
			dst.SetNRGBA(x, y, c)
		}
	}
	return dst
}

// InCircle reports whether the centre of pixel (x, y) of a size×size crop lies
// inside the inscribed circle. Coordinates are doubled to stay in integers.
func InCircle(x, y, size int) bool {
	dx := 2*x + 1 - size
	dy := 2*y + 1 - size
	return dx*dx+dy*dy <= size*size
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeDataURI encodes img as a base64 PNG data URI.
func EncodeDataURI(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return DataURIPrefix + base64.StdEncoding.EncodeToString(data), nil
}

// Synthesize crops src to a circle and returns it as a data URI.
func Synthesize(src image.Image) (string, error) {
	return EncodeDataURI(Crop(src))
}
