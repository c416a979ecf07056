package imagepkg

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// ErrUnsupportedFormat is returned for output paths whose extension maps to
// no known encoder.
var ErrUnsupportedFormat = imaging.ErrUnsupportedFormat

// Format resolves the encoder format for an output path by its extension.
// Checking this before composition starts avoids fetching images for a job
// that could never be saved.
func Format(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return f, fmt.Errorf("output %s: %w", path, ErrUnsupportedFormat)
	}
	return f, nil
}

// Save encodes img to path, selecting the encoder from the file extension.
// The parent directory is created if missing.
func Save(img image.Image, path string) error {
	if _, err := Format(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
