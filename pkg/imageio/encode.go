package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/ftrvxmtrx/tga"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format identifies an output encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// FormatFromPath picks the encoding from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".webp":
		return FormatWebP, nil
	case ".tga":
		return FormatTGA, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encode writes fb to w in the given format
func Encode(w io.Writer, fb *renderer.Framebuffer, format Format) error {
	if format == FormatPPM {
		return WritePPM(w, fb)
	}
	return EncodeImage(w, fb.ToRGBA(), format)
}

// EncodeImage writes an already quantized image. PPM is not accepted here since it is
// written straight from the framebuffer.
func EncodeImage(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
		return nil
	case FormatTGA:
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("tga encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save encodes fb to path, choosing the format from its extension. When scale is above 1
// the framebuffer is taken to be rendered at scale times the output size and is downsampled
// first; PPM output is then written from the downsampled pixels.
func Save(path string, fb *renderer.Framebuffer, scale int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := Write(f, fb, format, scale); err != nil {
		return err
	}

	return f.Close()
}

// Write encodes fb to w, downsampling by scale when scale is above 1
func Write(w io.Writer, fb *renderer.Framebuffer, format Format, scale int) error {
	if scale <= 1 {
		return Encode(w, fb, format)
	}

	img := Downsample(fb.ToRGBA(), fb.Width/scale, fb.Height/scale)
	if format == FormatPPM {
		return WritePPMImage(w, img)
	}
	return EncodeImage(w, img, format)
}
