package utils

import (
	"errors"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/sirupsen/logrus"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// ParsePaletteMethod accepts the String forms.
func ParsePaletteMethod(s string) (PaletteMethod, bool) {
	switch s {
	case "kmeans":
		return PaletteMethodKMeans, true
	case "dominantcolor":
		return PaletteMethodDominantColor, true
	}
	return PaletteMethodDominantColor, false
}

// ExtractPalette suggests up to k representative colors of img. Both methods
// over-sample candidates and keep a spread of them, so one large region does
// not fill every slot with near-identical shades. The most dominant color is
// always first. log may be nil.
func ExtractPalette(img image.Image, k int, method PaletteMethod, log logrus.FieldLogger) []colorful.Color {
	if k <= 0 {
		return nil
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	if method == PaletteMethodKMeans {
		if p := selectDiverse(kmeansCandidates(img, k, log), k); len(p) != 0 {
			return p
		}
		log.Warn("palette: kmeans returned nothing, falling back to dominantcolor")
	}
	return selectDiverse(dominantCandidates(img, k), k)
}

type weightedColor struct {
	col    colorful.Color
	weight float64
}

func dominantCandidates(img image.Image, k int) []weightedColor {
	found := dominantcolor.FindWeight(img, max(24, k*8))
	out := make([]weightedColor, 0, len(found))
	for _, c := range found {
		col, ok := colorful.MakeColor(c.RGBA)
		if !ok {
			continue
		}
		out = append(out, weightedColor{col: col.Clamped(), weight: c.Weight})
	}
	return out
}

func kmeansCandidates(img image.Image, k int, log logrus.FieldLogger) []weightedColor {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	// Subsample so large surfaces stay interactive.
	const maxSamples = 8000
	step := 1
	if w*h > maxSamples {
		step = int(math.Sqrt(float64(w*h)/maxSamples)) + 1
	}
	var dataset clusters.Observations
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if n.A == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(n.R) / 255.0,
				float64(n.G) / 255.0,
				float64(n.B) / 255.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	workK := min(max(k*4, k+2), len(dataset))
	cc, err := kmeans.New().Partition(dataset, workK)
	if err != nil {
		log.WithError(err).Debug("palette: kmeans partition failed")
		return nil
	}

	out := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		out = append(out, weightedColor{
			col:    colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped(),
			weight: float64(len(c.Observations)),
		})
	}
	return out
}

// selectDiverse starts from the heaviest candidate, then repeatedly takes the
// candidate farthest in Lab from everything already chosen, scaled by its
// relative weight.
func selectDiverse(cands []weightedColor, k int) []colorful.Color {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	k = min(k, len(cands))

	labs := make([][3]float64, len(cands))
	maxW := 0.0
	first := 0
	for i, c := range cands {
		l, a, b := c.col.Lab()
		labs[i] = [3]float64{l, a, b}
		if c.weight > maxW {
			maxW = c.weight
			first = i
		}
	}
	if maxW <= 0 {
		maxW = 1
	}

	chosen := []int{first}
	taken := make([]bool, len(cands))
	taken[first] = true
	for len(chosen) < k {
		best, bestScore := -1, -1.0
		for i := range cands {
			if taken[i] {
				continue
			}
			nearest := math.MaxFloat64
			for _, j := range chosen {
				d0 := labs[i][0] - labs[j][0]
				d1 := labs[i][1] - labs[j][1]
				d2 := labs[i][2] - labs[j][2]
				nearest = min(nearest, d0*d0+d1*d1+d2*d2)
			}
			w := max(cands[i].weight, 0) / maxW
			score := math.Sqrt(nearest) * (0.55 + 0.45*math.Sqrt(w))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		taken[best] = true
		chosen = append(chosen, best)
	}

	out := make([]colorful.Color, len(chosen))
	for i, idx := range chosen {
		out[i] = cands[idx].col
	}
	return out
}

// SortPaletteByBrightness orders colors from darkest to brightest by relative
// luminance.
func SortPaletteByBrightness(palette []colorful.Color) {
	slices.SortStableFunc(palette, func(a, b colorful.Color) int {
		la, lb := luminance(a), luminance(b)
		switch {
		case la < lb:
			return -1
		case la > lb:
			return 1
		}
		return 0
	})
}

func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// RenderSwatches draws one tile x tile square per color, left to right.
func RenderSwatches(palette []colorful.Color, tile int) (*image.RGBA, error) {
	if len(palette) == 0 {
		return nil, errors.New("empty palette")
	}
	if tile <= 0 {
		tile = 64
	}
	img := image.NewRGBA(image.Rect(0, 0, tile*len(palette), tile))
	for i, c := range palette {
		r, g, b := c.Clamped().RGB255()
		fill := color.RGBA{R: r, G: g, B: b, A: 255}
		for y := 0; y < tile; y++ {
			for x := i * tile; x < (i+1)*tile; x++ {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img, nil
}
