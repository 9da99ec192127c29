package main

import (
	"context"
	"errors"
	"image"
	"io/fs"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/setanarut/palettepicker"
	"github.com/setanarut/palettepicker/ui"
	"github.com/setanarut/palettepicker/utils"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("could not read .env")
	}
	cfg := ui.ConfigFromEnv(os.LookupEnv, log)
	log.SetLevel(cfg.LogLevel)

	loader := palettepicker.LoaderFunc(func(ctx context.Context, path string) (image.Image, error) {
		return utils.LoadImage(ctx, path, cfg.ImageSize)
	})
	session := palettepicker.NewSession(loader, cfg.SessionOptions(log))

	ui.NewApplication(app.New(), session, cfg, log).ShowAndRun()
}
