package ui

import (
	"image"
	"log"
	"os"
	"os/signal"

	"fyne.io/fyne/v2"

	"github.com/ytget/click-coords/internal/recorder"
)

// Display opens recorder windows on a Fyne application
type Display struct {
	app fyne.App
}

var _ recorder.Display = (*Display)(nil)

// NewDisplay creates a display backed by app
func NewDisplay(app fyne.App) *Display {
	return &Display{app: app}
}

// NewWindow creates a fixed-size, unpadded window showing only img
func (d *Display) NewWindow(title string, img image.Image) recorder.Window {
	w := &Window{
		win:   d.app.NewWindow(title),
		image: NewClickableImage(img),
	}
	w.image.OnPress = w.handlePress

	w.win.SetPadded(false)
	w.win.SetContent(w.image)
	w.win.Resize(w.image.MinSize())
	w.win.SetFixedSize(true)
	w.win.SetMaster()
	w.win.SetCloseIntercept(w.requestClose)

	return w
}

// Window adapts a fyne.Window to recorder.Window
type Window struct {
	win   fyne.Window
	image *ClickableImage

	onClick func(x, y int)
	onClose func()
}

var _ recorder.Window = (*Window)(nil)

// SetOnClick registers the press handler
func (w *Window) SetOnClick(f func(x, y int)) {
	w.onClick = f
}

// SetOnClose registers the close handler
func (w *Window) SetOnClose(f func()) {
	w.onClose = f
}

// Run shows the window and blocks until the application event loop ends.
// CloseSignals received meanwhile are handled like the close button.
func (w *Window) Run() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, CloseSignals...)
	defer signal.Stop(sigs)

	done := make(chan struct{})
	defer close(done)

	go watchClose(sigs, done, func() {
		fyne.Do(w.requestClose)
	})

	w.win.ShowAndRun()
}

// watchClose calls request once if a signal arrives before done is closed
func watchClose(sigs <-chan os.Signal, done <-chan struct{}, request func()) {
	select {
	case sig := <-sigs:
		log.Printf("Received %s, closing window", sig)
		request()
	case <-done:
	}
}

// Close closes the window, which ends the event loop
func (w *Window) Close() {
	w.win.Close()
}

func (w *Window) handlePress(x, y int) {
	if w.onClick != nil {
		w.onClick(x, y)
	}
}

// requestClose runs on the UI goroutine for both the close button and
// termination signals
func (w *Window) requestClose() {
	if w.onClose == nil {
		w.Close()
		return
	}
	w.onClose()
}
