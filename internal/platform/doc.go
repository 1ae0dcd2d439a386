package platform

// Package platform contains OS and filesystem glue: resolving the input path
// and decoding image files with the registered codecs.
