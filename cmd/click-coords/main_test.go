package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/click-coords/internal/recorder"
)

// closingWindow presses once at the image centre and then closes
type closingWindow struct {
	img     image.Image
	onClick func(x, y int)
	onClose func()
}

func (w *closingWindow) SetOnClick(f func(x, y int)) { w.onClick = f }
func (w *closingWindow) SetOnClose(f func())         { w.onClose = f }
func (w *closingWindow) Close()                      {}

func (w *closingWindow) Run() {
	b := w.img.Bounds()
	w.onClick(b.Dx()/2, b.Dy()/2)
	w.onClose()
}

type countingDisplay struct {
	windows int
}

func (d *countingDisplay) NewWindow(title string, img image.Image) recorder.Window {
	d.windows++
	return &closingWindow{img: img}
}

func runWith(t *testing.T, args ...string) (int, string, string, *countingDisplay) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	display := &countingDisplay{}
	displays := 0
	code := run(append([]string{"click-coords"}, args...), &stdout, &stderr, func() recorder.Display {
		displays++
		return display
	})
	assert.LessOrEqual(t, displays, 1)
	return code, stdout.String(), stderr.String(), display
}

func TestRun_Help(t *testing.T) {
	code, stdout, stderr, display := runWith(t, "-h")

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "usage: click-coords <image>")
	assert.Equal(t, 0, display.windows)
}

func TestRun_UsageErrors(t *testing.T) {
	tests := [][]string{
		nil,
		{"a.png", "b.png"},
		{"-x", "a.png"},
	}

	for _, args := range tests {
		code, stdout, stderr, display := runWith(t, args...)

		assert.Equal(t, exitUsage, code, "args %v", args)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "usage: click-coords <image>")
		assert.Equal(t, 0, display.windows)
	}
}

func TestRun_MissingImage(t *testing.T) {
	code, stdout, stderr, display := runWith(t, filepath.Join(t.TempDir(), "missing.png"))

	assert.Equal(t, recorder.ExitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "cannot load image")
	assert.Equal(t, 0, display.windows)
}

func TestRun_PrintsCoordinates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picture.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 4))))
	require.NoError(t, f.Close())

	code, stdout, _, display := runWith(t, path)

	assert.Equal(t, recorder.ExitOK, code)
	assert.Equal(t, "[\n    [0.5, 0.5]\n]\n", stdout)
	assert.Equal(t, 1, display.windows)
}
