package ui

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// surface shows the current image and reports taps in image pixels.
type surface struct {
	widget.BaseWidget
	img   *canvas.Image
	size  float32
	onTap func(x, y int)
}

func newSurface(img image.Image, size float32, onTap func(x, y int)) *surface {
	s := &surface{
		img:   canvas.NewImageFromImage(img),
		size:  size,
		onTap: onTap,
	}
	s.img.FillMode = canvas.ImageFillStretch
	s.img.SetMinSize(fyne.NewSize(size, size))
	s.ExtendBaseWidget(s)
	return s
}

func (s *surface) SetImage(img image.Image) {
	s.img.Image = img
	s.img.Refresh()
}

func (s *surface) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

func (s *surface) Tapped(ev *fyne.PointEvent) {
	if s.onTap == nil || s.img.Image == nil {
		return
	}
	x, y := surfacePoint(ev.Position, s.Size(), s.img.Image.Bounds())
	s.onTap(x, y)
}

func (s *surface) TappedSecondary(*fyne.PointEvent) {}

func (s *surface) MinSize() fyne.Size {
	return fyne.NewSize(s.size, s.size)
}

func (s *surface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.img)
}

// surfacePoint maps a position in widget units onto the pixel grid of an
// image stretched over the whole widget. Positions on or past the far edge
// land outside [0,w)x[0,h) and are rejected by the sampler.
func surfacePoint(pos fyne.Position, size fyne.Size, bounds image.Rectangle) (int, int) {
	if size.Width <= 0 || size.Height <= 0 {
		return -1, -1
	}
	x := float64(pos.X) * float64(bounds.Dx()) / float64(size.Width)
	y := float64(pos.Y) * float64(bounds.Dy()) / float64(size.Height)
	return int(math.Floor(x)), int(math.Floor(y))
}
