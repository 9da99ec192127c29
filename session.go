package palettepicker

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidImageFile wraps every loader failure: directories, unknown
	// formats and decode timeouts.
	ErrInvalidImageFile = errors.New("invalid image file")
	// ErrNoImage is returned by Click before any image has been loaded.
	ErrNoImage = errors.New("no image loaded")
)

// Loader decodes the image at path into the surface that will be displayed
// and sampled.
type Loader interface {
	Load(ctx context.Context, path string) (image.Image, error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(ctx context.Context, path string) (image.Image, error)

func (f LoaderFunc) Load(ctx context.Context, path string) (image.Image, error) {
	return f(ctx, path)
}

type Options struct {
	// Number of palette slots. Zero means DefaultCapacity.
	Capacity int
	// Averaging radius for each click. Zero samples the single pixel.
	SampleRadius int
	// Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// Session ties one displayed image to one palette. It is not safe for
// concurrent use; every call is expected from the UI event loop.
type Session struct {
	loader  Loader
	palette *Palette
	img     image.Image
	path    string
	radius  int
	log     logrus.FieldLogger
}

func NewSession(loader Loader, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Session{
		loader:  loader,
		palette: NewPalette(opts.Capacity),
		radius:  max(opts.SampleRadius, 0),
		log:     log,
	}
}

// Open loads path and makes it the current image. An empty path means the
// picker was cancelled and nothing happens. On failure the previous image
// and palette are kept as they were.
func (s *Session) Open(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	img, err := s.loader.Load(ctx, path)
	if err == nil && img == nil {
		err = errors.New("loader returned no image")
	}
	if err != nil {
		s.log.WithField("path", path).WithError(err).Warn("image load failed")
		return fmt.Errorf("%w: %w", ErrInvalidImageFile, err)
	}
	return s.SetImage(img, path)
}

// SetImage replaces the current image and clears the palette. A nil image is
// rejected and leaves the session unchanged.
func (s *Session) SetImage(img image.Image, path string) error {
	if img == nil {
		return fmt.Errorf("%w: %s: no image", ErrInvalidImageFile, path)
	}
	s.img = img
	s.path = path
	s.palette.Reset()
	b := img.Bounds()
	s.log.WithFields(logrus.Fields{
		"path":   path,
		"width":  b.Dx(),
		"height": b.Dy(),
	}).Info("image loaded")
	return nil
}

// Click samples the current image at (x, y) and pushes the color onto the
// palette.
func (s *Session) Click(x, y int) (Entry, error) {
	if s.img == nil {
		return Entry{}, ErrNoImage
	}
	sample, err := SampleArea(s.img, x, y, s.radius)
	if err != nil {
		s.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("click outside image ignored")
		return Entry{}, err
	}
	e := NewEntry(sample)
	s.palette.Insert(e)
	s.log.WithFields(logrus.Fields{"x": x, "y": y, "hex": e.Hex}).Debug("sampled")
	return e, nil
}

// Seed pushes colors so that colors[0] ends up most recent.
func (s *Session) Seed(colors []colorful.Color) {
	for i := len(colors) - 1; i >= 0; i-- {
		s.palette.Insert(entryFromColorful(colors[i]))
	}
}

func (s *Session) Loaded() bool { return s.img != nil }

func (s *Session) Image() image.Image { return s.img }

func (s *Session) Path() string { return s.path }

func (s *Session) Palette() *Palette { return s.palette }

func (s *Session) Entries() []Entry { return s.palette.Entries() }

func (s *Session) Slots() []Slot { return s.palette.Slots() }
