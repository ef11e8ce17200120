package boxfolk

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// Screenshot encodings.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// ValidFormat reports whether f names a supported screenshot encoding.
func ValidFormat(f string) bool {
	switch f {
	case FormatPNG, FormatWebP, FormatTGA:
		return true
	}
	return false
}

// Screenshot queues a labeled screenshot to be captured at the end of the
// next DrawFrame. The file is written to ScreenshotDir with a timestamped
// name, at the logical surface size.
func (v *Viewport) Screenshot(label string) {
	v.screenshotQueue = append(v.screenshotQueue, label)
}

// flushScreenshots writes the frame for every queued label. Called at the end
// of DrawFrame.
func (v *Viewport) flushScreenshots(frame *image.RGBA) {
	if len(v.screenshotQueue) == 0 {
		return
	}
	defer func() { v.screenshotQueue = v.screenshotQueue[:0] }()

	if err := os.MkdirAll(v.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[boxfolk] screenshot: mkdir %s: %v\n", v.ScreenshotDir, err)
		return
	}

	img := downscale(frame, v.size)
	stamp := time.Now().Format("20060102_150405")
	ext := v.ScreenshotFormat
	if !ValidFormat(ext) {
		ext = FormatPNG
	}

	for _, label := range v.screenshotQueue {
		path := filepath.Join(v.ScreenshotDir, fmt.Sprintf("%s_%06d_%s.%s", stamp, v.frames, sanitizeLabel(label), ext))
		if err := writeImage(path, img, ext); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[boxfolk] screenshot: %v\n", err)
		}
	}
}

// downscale resamples a device-pixel frame to the logical size. Frames that
// already match are returned as-is.
func downscale(frame *image.RGBA, size Size) image.Image {
	b := frame.Bounds()
	if size.Width <= 0 || size.Height <= 0 || (b.Dx() == size.Width && b.Dy() == size.Height) {
		return frame
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), frame, b, draw.Src, nil)
	return dst
}

// writeImage encodes img to path using the named format.
func writeImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodeImage(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// EncodeImage writes img to w as PNG, WebP (lossless) or TGA.
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatTGA:
		return tga.Encode(w, img)
	default:
		return fmt.Errorf("unknown image format %q", format)
	}
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
