package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/click-coords/internal/config"
	"github.com/ytget/click-coords/internal/platform"
	"github.com/ytget/click-coords/internal/recorder"
	"github.com/ytget/click-coords/internal/ui"
)

// Exit status for a malformed command line
const exitUsage = 2

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, newFyneDisplay))
}

// newFyneDisplay creates the Fyne app; called only once arguments are valid
func newFyneDisplay() recorder.Display {
	return ui.NewDisplay(app.NewWithID(ui.AppID))
}

func run(args []string, stdout, stderr io.Writer, newDisplay func() recorder.Display) int {
	program := config.DefaultProgramName
	if len(args) > 0 {
		program = filepath.Base(args[0])
		args = args[1:]
	}
	log.SetOutput(stderr)
	log.SetFlags(0)
	log.SetPrefix(program + ": ")

	opts, err := config.ParseArgs(program, args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return recorder.ExitOK
	case err != nil:
		return exitUsage
	}

	rec := recorder.New(platform.NewImageDecoder(), newDisplay(), stdout, opts.WindowTitle)
	if err := rec.Run(opts.ImagePath); err != nil {
		log.Print(err)
		return recorder.ExitCode(err)
	}
	return recorder.ExitOK
}
