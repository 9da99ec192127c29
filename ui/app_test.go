package ui

import (
	"context"
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/palettepicker"
)

// quad is red green / blue white.
func quad() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})
	return img
}

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	loader := palettepicker.LoaderFunc(func(context.Context, string) (image.Image, error) {
		return quad(), nil
	})
	session := palettepicker.NewSession(loader, palettepicker.Options{Capacity: 4, Logger: quiet()})
	cfg := DefaultConfig()
	cfg.ImageSize = 200
	return NewApplication(test.NewApp(), session, cfg, quiet())
}

func assertEmptySlots(t *testing.T, a *Application, from int) {
	t.Helper()
	for i := from; i < len(a.swatches); i++ {
		assert.Empty(t, a.hexLabels[i].Text, "slot %d", i)
		assert.Equal(t, placeholderColor, a.swatches[i].FillColor, "slot %d", i)
	}
}

func TestApplicationTapFillsSlots(t *testing.T) {
	a := newTestApplication(t)
	require.Len(t, a.swatches, 4)
	assertEmptySlots(t, a, 0)

	// taps on the placeholder surface do nothing
	a.surface.Resize(fyne.NewSize(200, 200))
	test.TapAt(a.surface, fyne.NewPos(10, 10))
	assertEmptySlots(t, a, 0)

	a.open("quad.png")
	assert.Equal(t, "quad.png", a.path.Text)
	a.surface.Resize(fyne.NewSize(200, 200))

	test.TapAt(a.surface, fyne.NewPos(50, 50))
	test.TapAt(a.surface, fyne.NewPos(150, 50))
	assert.Equal(t, "#00ff00", a.hexLabels[0].Text)
	assert.Equal(t, color.NRGBA{0, 255, 0, 255}, a.swatches[0].FillColor)
	assert.Equal(t, "#ff0000", a.hexLabels[1].Text)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, a.swatches[1].FillColor)
	assertEmptySlots(t, a, 2)

	// the far edge is off the image
	test.TapAt(a.surface, fyne.NewPos(200, 10))
	assert.Equal(t, "#00ff00", a.hexLabels[0].Text)
	assertEmptySlots(t, a, 2)
}

func TestApplicationOpenClearsSlots(t *testing.T) {
	a := newTestApplication(t)
	a.open("quad.png")
	a.surface.Resize(fyne.NewSize(200, 200))
	test.TapAt(a.surface, fyne.NewPos(150, 150))
	require.Equal(t, "#ffffff", a.hexLabels[0].Text)

	a.open("other.png")
	assert.Equal(t, "other.png", a.path.Text)
	assertEmptySlots(t, a, 0)
}
