package palettepicker

import (
	"errors"
	"image"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrSampleOutOfBounds is returned for coordinates outside the image surface.
// Callers treat it as a no-op.
var ErrSampleOutOfBounds = errors.New("sample out of bounds")

// SampleAt reads the pixel at (x, y), relative to the image's top-left corner.
func SampleAt(img image.Image, x, y int) (Sample, error) {
	b := img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return Sample{}, ErrSampleOutOfBounds
	}
	return SampleFromColor(img.At(b.Min.X+x, b.Min.Y+y)), nil
}

// SampleArea averages the (2*radius+1)^2 square centred on (x, y), clipped to
// the image. The centre itself must lie on the image.
func SampleArea(img image.Image, x, y, radius int) (Sample, error) {
	if radius <= 0 {
		return SampleAt(img, x, y)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if x < 0 || y < 0 || x >= w || y >= h {
		return Sample{}, ErrSampleOutOfBounds
	}

	x0, x1 := max(x-radius, 0), min(x+radius, w-1)
	y0, y1 := max(y-radius, 0), min(y+radius, h-1)
	n := (x1 - x0 + 1) * (y1 - y0 + 1)
	rs := make([]float64, 0, n)
	gs := make([]float64, 0, n)
	bs := make([]float64, 0, n)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			s := SampleFromColor(img.At(b.Min.X+px, b.Min.Y+py))
			rs = append(rs, float64(s.R))
			gs = append(gs, float64(s.G))
			bs = append(bs, float64(s.B))
		}
	}
	return Sample{
		R: channelMean(rs),
		G: channelMean(gs),
		B: channelMean(bs),
	}, nil
}

func channelMean(vals []float64) uint8 {
	m := math.Round(stat.Mean(vals, nil))
	return uint8(max(0, min(255, m)))
}
