// Package capture writes screenshots to disk as WebP.
package capture

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Fit scales img down so neither side exceeds maxSize, keeping the aspect
// ratio. Images already small enough (or maxSize <= 0) are returned as is.
func Fit(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	if maxSize <= 0 || (b.Dx() <= maxSize && b.Dy() <= maxSize) {
		return img
	}

	w, h := maxSize, maxSize
	if b.Dx() >= b.Dy() {
		h = max(1, b.Dy()*maxSize/b.Dx())
	} else {
		w = max(1, b.Dx()*maxSize/b.Dy())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Save encodes img as WebP at path, creating parent directories. A failed
// write leaves no file behind.
func Save(path string, img image.Image, maxSize int) error {
	// nativewebp ignores writer errors, so encode in memory first
	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, Fit(img, maxSize), nil); err != nil {
		return fmt.Errorf("capture: webp encode: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("capture: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("capture: %w", err)
	}
	return nil
}

// FileName returns a timestamped screenshot path inside dir.
func FileName(dir string, now time.Time) string {
	return filepath.Join(dir, "sevenlights-"+now.Format("20060102-150405.000")+".webp")
}
