package palettepicker

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	return img
}

func TestSampleAtBoundaries(t *testing.T) {
	img := gradient(5, 3)

	s, err := SampleAt(img, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, Sample{4, 2, 7}, s)

	s, err = SampleAt(img, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Sample{0, 0, 7}, s)

	for _, p := range []image.Point{{5, 0}, {-1, 0}, {0, 3}, {0, -1}, {100, 100}} {
		_, err := SampleAt(img, p.X, p.Y)
		assert.ErrorIs(t, err, ErrSampleOutOfBounds, "point %v", p)
	}
}

func TestSampleAtOffsetOrigin(t *testing.T) {
	img := gradient(10, 10).SubImage(image.Rect(3, 4, 6, 8))

	s, err := SampleAt(img, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Sample{3, 4, 7}, s)

	s, err = SampleAt(img, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Sample{5, 7, 7}, s)

	_, err = SampleAt(img, 3, 0)
	assert.ErrorIs(t, err, ErrSampleOutOfBounds)
}

func TestSampleArea(t *testing.T) {
	img := gradient(5, 5)

	s, err := SampleArea(img, 2, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, Sample{2, 2, 7}, s)

	// corner is clipped to the 2x2 block {0,1}x{0,1}
	s, err = SampleArea(img, 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, Sample{1, 1, 7}, s)

	s, err = SampleArea(img, 3, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Sample{3, 1, 7}, s)

	_, err = SampleArea(img, 5, 2, 2)
	assert.ErrorIs(t, err, ErrSampleOutOfBounds)
}
