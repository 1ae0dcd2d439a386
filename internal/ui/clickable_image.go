package ui

import (
	"image"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// ClickableImage renders a bitmap and reports primary-button presses in
// image pixel coordinates
type ClickableImage struct {
	widget.BaseWidget

	image  *canvas.Image
	pixelW int
	pixelH int

	// OnPress is called with the pressed pixel, relative to the top-left
	// corner of the image
	OnPress func(x, y int)
}

var _ desktop.Mouseable = (*ClickableImage)(nil)

// NewClickableImage creates a widget whose minimum size is the image size
func NewClickableImage(img image.Image) *ClickableImage {
	bounds := img.Bounds()

	ci := &ClickableImage{
		image:  canvas.NewImageFromImage(img),
		pixelW: bounds.Dx(),
		pixelH: bounds.Dy(),
	}
	ci.image.FillMode = canvas.ImageFillStretch
	ci.image.SetMinSize(fyne.NewSize(float32(ci.pixelW), float32(ci.pixelH)))
	ci.ExtendBaseWidget(ci)
	return ci
}

// CreateRenderer implements fyne.Widget
func (ci *ClickableImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ci.image)
}

// MinSize returns the image size in canvas units
func (ci *ClickableImage) MinSize() fyne.Size {
	return fyne.NewSize(float32(ci.pixelW), float32(ci.pixelH))
}

// MouseDown records primary-button presses
func (ci *ClickableImage) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || ci.OnPress == nil {
		return
	}
	x, y := ci.PixelAt(ev.Position)
	ci.OnPress(x, y)
}

// MouseUp is a no-op; presses are recorded on the way down
func (ci *ClickableImage) MouseUp(*desktop.MouseEvent) {}

// PixelAt maps a widget-relative position to the image pixel under it. The
// widget may be drawn at a different size than the bitmap on scaled
// displays, so the mapping is proportional. Results are not clamped.
func (ci *ClickableImage) PixelAt(pos fyne.Position) (int, int) {
	size := ci.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return int(math.Floor(float64(pos.X))), int(math.Floor(float64(pos.Y)))
	}

	x := math.Floor(float64(pos.X) * float64(ci.pixelW) / float64(size.Width))
	y := math.Floor(float64(pos.Y) * float64(ci.pixelH) / float64(size.Height))
	return int(x), int(y)
}
