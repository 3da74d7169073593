package stego

import (
	"fmt"
	"image"
	_ "image/gif" // decode-only; never a legal output format (lossy-unsafe: no LSB guarantee)
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func loadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("stego: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

func ImageDimensions(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("stego: decode config %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		out := image.NewNRGBA(n.Bounds())
		copy(out.Pix, n.Pix)
		return out
	}
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

type outputFormat int

const (
	formatPNG outputFormat = iota
	formatBMP
	formatTIFF
)

// formatFromPath fails closed for anything that isn't a known lossless
// format — JPEG would silently destroy the embedded LSBs on re-encode.
func formatFromPath(path string) (outputFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return formatPNG, nil
	case ".bmp":
		return formatBMP, nil
	case ".tif", ".tiff":
		return formatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedOutputFormat, path)
	}
}

// saveImage writes to a temp file and renames over path so a failure
// never leaves a partial file at the final destination.
func saveImage(img *image.NRGBA, path string) (err error) {
	format, err := formatFromPath(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".stegapp-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if encErr := encodeImage(tmp, img, format); encErr != nil {
		tmp.Close()
		return encErr
	}
	if closeErr := tmp.Close(); closeErr != nil {
		return closeErr
	}
	return os.Rename(tmpName, path)
}

func encodeImage(w io.Writer, img *image.NRGBA, format outputFormat) error {
	switch format {
	case formatPNG:
		return png.Encode(w, img)
	case formatBMP:
		return bmp.Encode(w, img)
	case formatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Uncompressed})
	default:
		return ErrUnsupportedOutputFormat
	}
}
