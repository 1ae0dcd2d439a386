package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Default values
const (
	DefaultProgramName = "click-coords"
	DefaultWindowTitle = "Image Click Coordinates"
)

// ErrUsage is returned when the command line does not name exactly one image
var ErrUsage = errors.New("expected exactly one image path")

// Options holds the configuration for a single recording run
type Options struct {
	ImagePath   string
	WindowTitle string
}

// ParseArgs parses command-line arguments (without the program name).
// Usage text and parse diagnostics go to stderr. -h yields flag.ErrHelp.
func ParseArgs(program string, args []string, stderr io.Writer) (*Options, error) {
	if program == "" {
		program = DefaultProgramName
	}

	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s <image>\n\n", program)
		fmt.Fprintln(fs.Output(), "Opens the image in a window and records every left click as")
		fmt.Fprintln(fs.Output(), "[x/width, y/height]. The list is printed as JSON when the window closes.")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "%s: %v\n", program, ErrUsage)
		fs.Usage()
		return nil, ErrUsage
	}

	return &Options{
		ImagePath:   fs.Arg(0),
		WindowTitle: DefaultWindowTitle,
	}, nil
}
