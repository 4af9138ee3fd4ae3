package mapimage

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/KasumiMercury/campus-crowd-dashboard/internal/domain"
)

const (
	markerRadius = 7
	labelOffset  = 6
	labelPadding = 2
)

var (
	markerColors = map[string]color.RGBA{
		"green":  {0x2E, 0x7D, 0x32, 0xFF},
		"orange": {0xEF, 0x6C, 0x00, 0xFF},
		"red":    {0xC6, 0x28, 0x28, 0xFF},
	}
	markerOutline = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	labelBox      = color.RGBA{0x00, 0x00, 0x00, 0x99}
	labelText     = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// Render draws the markers over the map and returns the result as PNG.
func (m *Map) Render(markers []domain.Marker) ([]byte, error) {
	base, err := m.decode()
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(base.Bounds())
	draw.Draw(canvas, canvas.Bounds(), base, base.Bounds().Min, draw.Src)

	for _, marker := range markers {
		x := int(marker.PixelX) + canvas.Bounds().Min.X
		y := int(marker.PixelY) + canvas.Bounds().Min.Y

		fill, ok := markerColors[marker.Color]
		if !ok {
			fill = markerColors["green"]
		}
		fillCircle(canvas, x, y, markerRadius+1, markerOutline)
		fillCircle(canvas, x, y, markerRadius, fill)
		drawLabel(canvas, marker.Label, x+labelOffset, y-labelOffset)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(img.Bounds()) {
				img.SetRGBA(p.X, p.Y, c)
			}
		}
	}
}

// drawLabel writes each line of text with its top-left corner at (x, y).
func drawLabel(img *image.RGBA, text string, x, y int) {
	face := basicfont.Face7x13
	lines := strings.Split(text, "\n")
	lineHeight := face.Metrics().Height.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelText),
		Face: face,
	}

	width := 0
	for _, line := range lines {
		if w := d.MeasureString(line).Ceil(); w > width {
			width = w
		}
	}

	box := image.Rect(x-labelPadding, y-labelPadding, x+width+labelPadding, y+lineHeight*len(lines)+labelPadding)
	draw.Draw(img, box, image.NewUniform(labelBox), image.Point{}, draw.Over)

	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		d.Dot = fixed.P(x, y+ascent+i*lineHeight)
		d.DrawString(line)
	}
}
