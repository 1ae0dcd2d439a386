package recorder

// Package recorder implements the click recorder: it loads an image, shows it
// through a Display, turns presses on the image into fractional coordinates,
// and prints the collected coordinates once when the window closes. The
// windowing toolkit and the image decoder are reached only through the
// interfaces in interfaces.go.
