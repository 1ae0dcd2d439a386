package model

// Package model defines the recorder's data: fractional click coordinates,
// the append-only coordinate log, and the recorder lifecycle state. Types
// carry no UI or I/O dependencies so they can be exercised directly in tests.
