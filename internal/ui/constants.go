package ui

import (
	"os"
	"syscall"
)

// Application identity
const (
	AppID = "com.ytget.click-coords"
)

// Signals that request the same shutdown as the window close button
var CloseSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
