package mapimage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrInvalidSize    = errors.New("map image dimensions must be positive")
	ErrUnknownFormat  = errors.New("unsupported map image format")
	ErrImageCorrupted = errors.New("map image could not be decoded")
)

var backgroundColor = color.RGBA{0xEC, 0xEF, 0xF1, 0xFF}

// Map is the static background the dashboard projects zones onto.
type Map struct {
	width       int
	height      int
	format      string
	data        []byte
	contentType string
}

// Load reads an image file and decodes only its header for the dimensions.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map image %s: %w", path, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrImageCorrupted, path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}

	return &Map{
		width:       cfg.Width,
		height:      cfg.Height,
		format:      format,
		data:        data,
		contentType: contentTypeFor(format),
	}, nil
}

// Blank creates a plain background of the given size for deployments without
// a map file.
func Blank(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: backgroundColor}, image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return &Map{
		width:       width,
		height:      height,
		format:      "png",
		data:        buf.Bytes(),
		contentType: "image/png",
	}, nil
}

func (m *Map) Width() int {
	return m.width
}

func (m *Map) Height() int {
	return m.height
}

func (m *Map) Format() string {
	return m.format
}

func (m *Map) ContentType() string {
	return m.contentType
}

// Bytes returns the encoded image as loaded. Callers must not modify it.
func (m *Map) Bytes() []byte {
	return m.data
}

func (m *Map) decode() (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(m.data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageCorrupted, err)
	}
	return img, nil
}

func contentTypeFor(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "bmp":
		return "image/bmp"
	case "tiff":
		return "image/tiff"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
