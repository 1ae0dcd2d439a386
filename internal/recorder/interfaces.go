package recorder

import "image"

// Decoder turns an image file into a bitmap.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// Display creates windows that show a single bitmap.
type Display interface {
	NewWindow(title string, img image.Image) Window
}

// Window is one on-screen image surface.
type Window interface {
	// SetOnClick registers the handler for primary-button presses. x and y
	// are pixel positions relative to the image's top-left corner.
	SetOnClick(func(x, y int))

	// SetOnClose registers the handler invoked when the user asks to close
	// the window. The handler is responsible for calling Close.
	SetOnClose(func())

	// Run shows the window and blocks until the event loop ends.
	Run()

	// Close hides the window and ends the event loop.
	Close()
}
