package model

// RecorderState represents the lifecycle state of a click recorder
type RecorderState string

const (
	// RecorderStateOpen means the window is visible and clicks are accepted
	RecorderStateOpen RecorderState = "Open"

	// RecorderStateClosed means the log has been flushed; terminal
	RecorderStateClosed RecorderState = "Closed"
)

// String returns the string representation of RecorderState
func (rs RecorderState) String() string {
	return string(rs)
}

// AcceptsClicks returns true if click events should still be recorded
func (rs RecorderState) AcceptsClicks() bool {
	return rs == RecorderStateOpen
}

// IsFinished returns true once the recorder has been closed
func (rs RecorderState) IsFinished() bool {
	return rs == RecorderStateClosed
}
