package recorder

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/ytget/click-coords/internal/model"
	"github.com/ytget/click-coords/internal/output"
)

// Recorder collects fractional click coordinates on a single image
type Recorder struct {
	decoder Decoder
	display Display
	out     io.Writer
	title   string

	width  int
	height int
	window Window
	state  model.RecorderState
	log    *model.CoordinateLog
	err    error
}

// New creates a recorder that decodes with decoder, shows images on display
// and writes the final document to out
func New(decoder Decoder, display Display, out io.Writer, title string) *Recorder {
	return &Recorder{
		decoder: decoder,
		display: display,
		out:     out,
		title:   title,
		state:   model.RecorderStateOpen,
		log:     model.NewCoordinateLog(),
	}
}

// Run loads the image at path and records clicks until the window closes
func (r *Recorder) Run(path string) error {
	img, err := r.Load(path)
	if err != nil {
		return err
	}
	return r.Start(img)
}

// Load decodes the image at path
func (r *Recorder) Load(path string) (image.Image, error) {
	img, err := r.decoder.Decode(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, &InputError{Path: path, Err: fmt.Errorf("image has no pixels (%dx%d)", bounds.Dx(), bounds.Dy())}
	}

	log.Printf("Loaded image %s (%dx%d)", path, bounds.Dx(), bounds.Dy())
	return img, nil
}

// Start shows img and blocks until the window is closed. The returned error
// is an *OutputError if the coordinates could not be written.
func (r *Recorder) Start(img image.Image) error {
	if r.window != nil {
		return errors.New("recorder already started")
	}

	bounds := img.Bounds()
	r.width = bounds.Dx()
	r.height = bounds.Dy()

	r.window = r.display.NewWindow(r.title, img)
	r.window.SetOnClick(r.Click)
	r.window.SetOnClose(r.Close)
	r.window.Run()

	// The loop can end without a close request, e.g. quit from the OS menu
	r.Close()
	return r.err
}

// Click records a press at pixel (x, y) relative to the image origin
func (r *Recorder) Click(x, y int) {
	if !r.state.AcceptsClicks() || r.width == 0 || r.height == 0 {
		return
	}
	r.log.Append(model.NewCoordinate(x, y, r.width, r.height))
}

// Close writes the collected coordinates and closes the window. Only the
// first call has any effect.
func (r *Recorder) Close() {
	if r.state.IsFinished() {
		return
	}
	r.state = model.RecorderStateClosed

	if err := output.Write(r.out, r.log.Entries()); err != nil {
		r.err = &OutputError{Err: err}
	} else {
		log.Printf("Recorded %d click(s)", r.log.Len())
	}

	if r.window != nil {
		r.window.Close()
	}
}

// State returns the current lifecycle state
func (r *Recorder) State() model.RecorderState {
	return r.state
}

// Coordinates returns a copy of the coordinates recorded so far
func (r *Recorder) Coordinates() []model.Coordinate {
	return r.log.Entries()
}

// Err returns the error recorded while closing, if any
func (r *Recorder) Err() error {
	return r.err
}
