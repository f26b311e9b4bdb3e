package screenshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromPixelsFlips(t *testing.T) {
	// Two rows, bottom row red, top row blue, as GL reads them.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	img, err := FromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("FromPixels: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top row: got %v, want blue", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom row: got %v, want red", got)
	}
}

func TestFromPixelsRejectsBadInput(t *testing.T) {
	if _, err := FromPixels(make([]byte, 12), 2, 2); err == nil {
		t.Error("short buffer: got nil error")
	}
	if _, err := FromPixels(nil, 0, 2); err == nil {
		t.Error("zero width: got nil error")
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	w := New(dir, "frame")
	w.Now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 10e6, time.UTC) }

	img, err := FromPixels(make([]byte, 4*3*2), 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	path, err := w.Save(img)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := filepath.Join(dir, "frame_2024-05-06_07-08-09.010.png")
	if path != want {
		t.Errorf("path: got %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("size: got %dx%d, want 3x2", b.Dx(), b.Dy())
	}
}
