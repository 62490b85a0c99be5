package favicon

import (
	"encoding/base64"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// patterned returns a w×h opaque image whose pixel colour encodes (x, y).
func patterned(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func TestCrop_Square(t *testing.T) {
	const n = 32
	src := patterned(n, n)

	out := Crop(src)
	require.Equal(t, image.Rect(0, 0, n, n), out.Bounds())

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			got := out.NRGBAAt(x, y)
			if InCircle(x, y, n) {
				assert.Equal(t, src.NRGBAAt(x, y), got, "pixel %d,%d", x, y)
			} else {
				assert.Equal(t, uint8(0), got.A, "pixel %d,%d", x, y)
			}
		}
	}

	// Corners are outside, centre inside.
	assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), out.NRGBAAt(n-1, n-1).A)
	assert.Equal(t, uint8(255), out.NRGBAAt(n/2, n/2).A)
}

func TestCrop_NonSquare(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		offX, offY int
		wantSize   int
	}{
		{"wide", 40, 20, 10, 0, 20},
		{"tall", 16, 30, 0, 7, 16},
		{"odd remainder", 21, 10, 5, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := patterned(tt.w, tt.h)
			out := Crop(src)
			require.Equal(t, image.Rect(0, 0, tt.wantSize, tt.wantSize), out.Bounds())

			c := tt.wantSize / 2
			assert.Equal(t, src.NRGBAAt(c+tt.offX, c+tt.offY), out.NRGBAAt(c, c))
			assert.Equal(t, uint8(0), out.NRGBAAt(0, 0).A)
		})
	}
}

func TestCrop_OffsetBounds(t *testing.T) {
	src := patterned(20, 20).SubImage(image.Rect(4, 4, 14, 14))

	out := Crop(src)
	require.Equal(t, image.Rect(0, 0, 10, 10), out.Bounds())
	assert.Equal(t, color.NRGBA{R: 9, G: 9, B: 200, A: 255}, out.NRGBAAt(5, 5))
}

func TestCrop_Empty(t *testing.T) {
	out := Crop(image.NewNRGBA(image.Rect(0, 0, 0, 5)))
	assert.True(t, out.Bounds().Empty())

	_, err := Synthesize(image.NewNRGBA(image.Rect(0, 0, 0, 5)))
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestInCircle(t *testing.T) {
	assert.True(t, InCircle(0, 0, 1))
	assert.True(t, InCircle(1, 1, 2))
	assert.False(t, InCircle(0, 0, 4))
	assert.True(t, InCircle(0, 2, 4))
}

func TestSynthesize(t *testing.T) {
	uri, err := Synthesize(patterned(24, 12))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, DataURIPrefix))

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, DataURIPrefix))
	require.NoError(t, err)

	img, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 12), img.Bounds())
}
