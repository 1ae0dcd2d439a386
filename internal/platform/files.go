package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Image file extensions recognised for the webp fallback decoder
const (
	WebPExtension = ".webp"
)

// ResolveImagePath converts path to an absolute path and checks that it
// names an existing regular file
func ResolveImagePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("empty image path")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("path is a directory: %s", absPath)
	}

	return absPath, nil
}

// hasWebPExtension reports whether the path looks like a webp file
func hasWebPExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), WebPExtension)
}
