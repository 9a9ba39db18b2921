package share

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/julianstephens/nila/internal/constants"
)

// Card geometry in logical points; everything is multiplied by density.
const (
	panelInset    = 12
	panelRadius   = 24
	contentMargin = 16
	textPadding   = 24
	headingSize   = 20
	bodySize      = 22
	stackSpacing  = 12
	shadowOffset  = 1
)

var (
	gradientStart = color.NRGBA{R: 255, G: 217, B: 230, A: 255} // pink
	gradientEnd   = color.NRGBA{R: 230, G: 191, B: 255, A: 255} // lavender
	panelFill     = color.NRGBA{R: 255, G: 255, B: 255, A: 51}
	headingColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 242}
	bodyColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	headingShadow = color.NRGBA{A: 51}
	bodyShadow    = color.NRGBA{A: 64}
)

type fonts struct {
	heading *opentype.Font
	body    *opentype.Font
}

var loadFonts = sync.OnceValues(func() (*fonts, error) {
	heading, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse heading font: %w", err)
	}
	body, err := opentype.Parse(gomedium.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse body font: %w", err)
	}
	return &fonts{heading: heading, body: body}, nil
})

// CardRenderer draws the 9:16 portrait share card.
type CardRenderer struct{}

// NewCardRenderer returns a renderer using the bundled Go fonts.
func NewCardRenderer() *CardRenderer {
	return &CardRenderer{}
}

// Render draws phrase onto a card scaled by density and returns it as PNG.
func (r *CardRenderer) Render(phrase string, density float64) ([]byte, error) {
	if density <= 0 || density > constants.MaxPixelDensity || math.IsNaN(density) {
		return nil, fmt.Errorf("pixel density %g out of range (0, %g]", density, constants.MaxPixelDensity)
	}

	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	headingFace, err := newFace(f.heading, headingSize*density)
	if err != nil {
		return nil, err
	}
	defer headingFace.Close()
	bodyFace, err := newFace(f.body, bodySize*density)
	if err != nil {
		return nil, err
	}
	defer bodyFace.Close()

	w := scale(constants.ShareCardWidth, density)
	h := scale(constants.ShareCardHeight, density)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	fillGradient(img)

	inset := scale(panelInset, density)
	panel := image.Rect(inset, inset, w-inset, h-inset)
	mask := &roundedRect{rect: panel, radius: float64(panelRadius) * density}
	draw.DrawMask(img, panel, image.NewUniform(panelFill), image.Point{}, mask, panel.Min, draw.Over)

	wrapWidth := w - 2*scale(panelInset+contentMargin+textPadding, density)
	lines := wrapText(bodyFace, strings.TrimSpace(phrase), wrapWidth)

	headingHeight := headingFace.Metrics().Height.Ceil()
	lineHeight := bodyFace.Metrics().Height.Ceil()
	spacing := scale(stackSpacing, density)
	blockHeight := headingHeight + spacing + len(lines)*lineHeight

	top := (h - blockHeight) / 2
	shadow := scale(shadowOffset, density)

	drawCentered(img, headingFace, constants.ShareCardHeading, top, w, shadow, headingColor, headingShadow)
	y := top + headingHeight + spacing
	for _, line := range lines {
		drawCentered(img, bodyFace, line, y, w, shadow, bodyColor, bodyShadow)
		y += lineHeight
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode card: %w", err)
	}
	return buf.Bytes(), nil
}

func scale(points int, density float64) int {
	return int(math.Round(float64(points) * density))
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// fillGradient paints a top-left to bottom-right linear gradient.
func fillGradient(img *image.RGBA) {
	b := img.Bounds()
	span := float64(b.Dx() + b.Dy() - 2)
	if span <= 0 {
		span = 1
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t := float64(x+y) / span
			img.SetRGBA(x, y, color.RGBA{
				R: lerp(gradientStart.R, gradientEnd.R, t),
				G: lerp(gradientStart.G, gradientEnd.G, t),
				B: lerp(gradientStart.B, gradientEnd.B, t),
				A: 255,
			})
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// roundedRect is an alpha mask that is opaque inside a rectangle with
// rounded corners.
type roundedRect struct {
	rect   image.Rectangle
	radius float64
}

func (r *roundedRect) ColorModel() color.Model { return color.AlphaModel }

func (r *roundedRect) Bounds() image.Rectangle { return r.rect }

func (r *roundedRect) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(r.rect) {
		return color.Transparent
	}
	px, py := float64(x)+0.5, float64(y)+0.5
	minX, minY := float64(r.rect.Min.X), float64(r.rect.Min.Y)
	maxX, maxY := float64(r.rect.Max.X), float64(r.rect.Max.Y)

	cx := math.Max(minX+r.radius, math.Min(px, maxX-r.radius))
	cy := math.Max(minY+r.radius, math.Min(py, maxY-r.radius))
	if math.Hypot(px-cx, py-cy) > r.radius {
		return color.Transparent
	}
	return color.Opaque
}

// wrapText breaks text into lines no wider than maxWidth pixels. A single
// word wider than maxWidth gets a line of its own.
func wrapText(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	limit := fixed.I(maxWidth)

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if font.MeasureString(face, candidate) <= limit {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// drawCentered draws text horizontally centered with its line box starting
// at top, preceded by a drop shadow offset downward.
func drawCentered(img draw.Image, face font.Face, text string, top, width, shadow int, fg, shadowColor color.Color) {
	advance := font.MeasureString(face, text)
	x := (fixed.I(width) - advance) / 2
	baseline := fixed.I(top) + face.Metrics().Ascent

	d := &font.Drawer{Dst: img, Face: face}

	d.Src = image.NewUniform(shadowColor)
	d.Dot = fixed.Point26_6{X: x, Y: baseline + fixed.I(shadow)}
	d.DrawString(text)

	d.Src = image.NewUniform(fg)
	d.Dot = fixed.Point26_6{X: x, Y: baseline}
	d.DrawString(text)
}
