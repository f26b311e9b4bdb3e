// Package screenshot saves rendered frames as PNG files.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Writer names and writes screenshot files.
type Writer struct {
	outputDir string
	prefix    string

	// Now stamps file names. Tests replace it.
	Now func() time.Time
}

// New creates a writer saving to outputDir as <prefix>_<timestamp>.png.
func New(outputDir, prefix string) *Writer {
	return &Writer{
		outputDir: outputDir,
		prefix:    prefix,
		Now:       time.Now,
	}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.outputDir
}

// SetOutputDir sets the output directory for screenshots.
func (w *Writer) SetOutputDir(dir string) {
	w.outputDir = dir
}

// FromPixels builds an image from bottom-up RGBA rows as read back from
// OpenGL, flipping it so row 0 is the top.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("screenshot: invalid size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}

// Save encodes img as PNG and returns the path written.
func (w *Writer) Save(img image.Image) (string, error) {
	if w.outputDir != "" {
		if err := os.MkdirAll(w.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := w.Filename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// Filename returns the path the next Save would write.
func (w *Writer) Filename() string {
	// Millisecond precision keeps quick successive captures apart.
	timestamp := w.Now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.png", w.prefix, timestamp)
	if w.outputDir != "" {
		filename = filepath.Join(w.outputDir, filename)
	}
	return filename
}
