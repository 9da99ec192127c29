package palettepicker

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Sample is a single pixel read, alpha already discarded.
type Sample struct {
	R, G, B uint8
}

// SampleFromColor converts c through the non-premultiplied model so that
// translucent pixels keep their straight channel values.
func SampleFromColor(c color.Color) Sample {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Sample{R: n.R, G: n.G, B: n.B}
}

// Encode returns the lowercase #rrggbb form of s.
func Encode(s Sample) string {
	return fmt.Sprintf("#%02x%02x%02x", s.R, s.G, s.B)
}

// ParseHex is the inverse of Encode.
func ParseHex(hex string) (Sample, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Sample{}, fmt.Errorf("parse hex %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Sample{R: r, G: g, B: b}, nil
}

// Entry is one palette item. It is a value; copies never alias.
type Entry struct {
	Sample
	Hex string
}

func NewEntry(s Sample) Entry {
	return Entry{Sample: s, Hex: Encode(s)}
}

// Color returns the entry as a colorful.Color with channels in [0,1].
func (e Entry) Color() colorful.Color {
	return colorful.Color{
		R: float64(e.R) / 255.0,
		G: float64(e.G) / 255.0,
		B: float64(e.B) / 255.0,
	}
}

// RGBA returns the opaque swatch color.
func (e Entry) RGBA() color.NRGBA {
	return color.NRGBA{R: e.R, G: e.G, B: e.B, A: 255}
}

func entryFromColorful(c colorful.Color) Entry {
	r, g, b := c.Clamped().RGB255()
	return NewEntry(Sample{R: r, G: g, B: b})
}
