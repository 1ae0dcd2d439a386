package ui

// Package ui contains the Fyne-based desktop adapter for the recorder. It
// shows the image in a fixed-size window, reports primary-button presses as
// image pixel positions, and routes the close button and termination signals
// through one close handler.
