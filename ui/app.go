// Package ui is the fyne front end: it turns window events into Session
// calls and redraws the palette from the session after each one.
package ui

import (
	"context"
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"

	"github.com/setanarut/palettepicker"
	"github.com/setanarut/palettepicker/utils"
)

const (
	invalidImageTitle   = "ERROR!"
	invalidImageMessage = "Invalid image file.\nPlease try again."
	swatchSize          = 64
)

var placeholderColor = color.White

type Application struct {
	app     fyne.App
	window  fyne.Window
	cfg     Config
	session *palettepicker.Session
	log     logrus.FieldLogger

	path      *widget.Entry
	surface   *surface
	hexLabels []*widget.Label
	swatches  []*canvas.Rectangle

	clipboardOK bool
}

// NewApplication builds the main window around session. The session's
// capacity decides how many slots are drawn.
func NewApplication(a fyne.App, session *palettepicker.Session, cfg Config, log logrus.FieldLogger) *Application {
	if log == nil {
		log = logrus.StandardLogger()
	}
	ap := &Application{
		app:     a,
		cfg:     cfg,
		session: session,
		log:     log,
	}
	if err := clipboard.Init(); err != nil {
		log.WithError(err).Warn("clipboard unavailable, swatch copy disabled")
	} else {
		ap.clipboardOK = true
	}
	ap.window = a.NewWindow("Color Palette")
	ap.window.SetContent(ap.layout())
	ap.render()
	return ap
}

func (a *Application) layout() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Color Palette", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	a.path = widget.NewEntry()
	a.path.Disable()

	browse := widget.NewButton("Browse Image Files", a.browse)
	suggest := widget.NewButton("Suggest", a.suggest)

	a.surface = newSurface(utils.Placeholder(a.cfg.ImageSize), float32(a.cfg.ImageSize), a.click)

	n := a.session.Palette().Cap()
	slots := make([]fyne.CanvasObject, 0, n)
	a.hexLabels = make([]*widget.Label, n)
	a.swatches = make([]*canvas.Rectangle, n)
	for i := 0; i < n; i++ {
		i := i
		label := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
		rect := canvas.NewRectangle(placeholderColor)
		rect.StrokeColor = color.Black
		rect.StrokeWidth = 3
		rect.SetMinSize(fyne.NewSize(swatchSize, swatchSize))
		a.hexLabels[i] = label
		a.swatches[i] = rect
		slots = append(slots, container.NewVBox(label, newTappableSwatch(rect, func() { a.copySlot(i) })))
	}

	return container.NewVBox(
		title,
		a.path,
		container.NewHBox(layout.NewSpacer(), browse, suggest, layout.NewSpacer()),
		container.NewCenter(a.surface),
		container.NewGridWithColumns(n, slots...),
	)
}

// ShowAndRun blocks until the window is closed.
func (a *Application) ShowAndRun() {
	a.window.ShowAndRun()
}

func (a *Application) browse() {
	path, err := dialog.File().
		Filter("Image files", "png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff", "webp").
		Title("Browse Image Files").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return
	}
	if err != nil {
		a.log.WithError(err).Error("file picker failed")
		return
	}
	a.open(path)
}

func (a *Application) open(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.DecodeTimeout)
	defer cancel()
	if err := a.session.Open(ctx, path); err != nil {
		dialog.Message("%s", invalidImageMessage).Title(invalidImageTitle).Error()
		return
	}
	a.path.SetText(a.session.Path())
	a.surface.SetImage(a.session.Image())
	a.render()
}

func (a *Application) click(x, y int) {
	if _, err := a.session.Click(x, y); err != nil {
		return
	}
	a.render()
}

func (a *Application) suggest() {
	if !a.session.Loaded() {
		return
	}
	colors := utils.ExtractPalette(a.session.Image(), a.session.Palette().Cap(), a.cfg.SuggestMethod, a.log)
	a.session.Seed(colors)
	a.log.WithField("count", len(colors)).Info("palette seeded from suggestions")
	a.render()
}

func (a *Application) copySlot(i int) {
	slots := a.session.Slots()
	if !a.clipboardOK || i >= len(slots) || slots[i].Empty {
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(slots[i].Hex))
	a.log.WithField("hex", slots[i].Hex).Debug("copied to clipboard")
}

// render redraws every slot from the session.
func (a *Application) render() {
	for i, slot := range a.session.Slots() {
		if slot.Empty {
			a.hexLabels[i].SetText("")
			a.swatches[i].FillColor = placeholderColor
		} else {
			a.hexLabels[i].SetText(slot.Hex)
			a.swatches[i].FillColor = slot.RGBA()
		}
		a.swatches[i].Refresh()
	}
}

type tappableSwatch struct {
	widget.BaseWidget
	rect  *canvas.Rectangle
	onTap func()
}

func newTappableSwatch(rect *canvas.Rectangle, onTap func()) *tappableSwatch {
	t := &tappableSwatch{rect: rect, onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tappableSwatch) Tapped(*fyne.PointEvent) {
	t.onTap()
}

func (t *tappableSwatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.rect)
}
