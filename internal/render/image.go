package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/ulysse71/milky-way/internal/projection"
)

// ErrUnsupportedFormat is returned for image formats WriteImage cannot encode.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// RenderImage draws points as single pixels on a black background. When
// several points land on the same pixel the nearest one wins.
func RenderImage(points []projection.Point, cam Camera, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}

	depth := make([]float64, width*height)
	for i := range depth {
		depth[i] = math.Inf(1)
	}

	for _, p := range points {
		s := cam.ProjectToScreen(p.Vec(), width, height, FovY)
		if !s.Visible {
			continue
		}
		x, y := int(s.X), int(s.Y)
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		idx := y*width + x
		if s.Depth > depth[idx] {
			continue
		}
		depth[idx] = s.Depth
		img.SetNRGBA(x, y, color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 0xff})
	}
	return img
}

// FormatFromPath returns the image format implied by the file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 92})
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteImage encodes img to path, picking the format from its extension.
func WriteImage(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return f.Close()
}
