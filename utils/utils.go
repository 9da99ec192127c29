package utils

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultImageSize is the edge length of the square display surface.
const DefaultImageSize = 450

var ErrIsDirectory = errors.New("path is a directory")

// ReadImage decodes the file at path with any registered decoder.
func ReadImage(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// LoadImage reads path and scales it to a size x size surface. The decode is
// abandoned when ctx is done.
func LoadImage(ctx context.Context, path string, size int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultImageSize
	}

	type result struct {
		img image.Image
		err error
	}
	done := make(chan result, 1)
	go func() {
		img, err := ReadImage(path)
		done <- result{img, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("decode %s: %w", path, ctx.Err())
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		return Resize(r.img, size, size), nil
	}
}

// Resize scales img to exactly w x h, ignoring aspect ratio.
func Resize(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Placeholder is the surface shown before any image is opened: a light
// checkerboard.
func Placeholder(size int) image.Image {
	if size <= 0 {
		size = DefaultImageSize
	}
	const cell = 25
	light := color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	dark := color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
