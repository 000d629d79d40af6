// Package render rasterizes report text into a monospace PNG image.
package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Options control the image geometry. The canvas is sized from the longest
// line and the line count, not from measured glyphs, so output dimensions
// are a pure function of the text shape.
type Options struct {
	FontSizePt      float64
	LineHeight      float64
	PaddingIn       float64
	DPI             int
	CharWidthFactor float64
}

func DefaultOptions() Options {
	return Options{
		FontSizePt:      12,
		LineHeight:      1.10,
		PaddingIn:       0.35,
		DPI:             200,
		CharWidthFactor: 0.60,
	}
}

// Image renders the lines top-aligned on a white canvas, one text line per
// row, using the embedded Go Mono face.
func Image(lines []string, o Options) (*image.RGBA, error) {
	ft, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    o.FontSizePt,
		DPI:     float64(o.DPI),
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	defer face.Close()

	maxChars := 60
	if len(lines) > 0 {
		maxChars = 0
		for _, ln := range lines {
			if n := utf8.RuneCountInString(ln); n > maxChars {
				maxChars = n
			}
		}
	}

	dpi := float64(o.DPI)
	charWIn := o.FontSizePt / 72.0 * o.CharWidthFactor
	lineHIn := o.FontSizePt / 72.0 * o.LineHeight
	widthPx := int(math.Round((2*o.PaddingIn + float64(maxChars)*charWIn) * dpi))
	heightPx := int(math.Round((2*o.PaddingIn + float64(len(lines))*lineHIn) * dpi))

	img := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	padPx := int(math.Round(o.PaddingIn * dpi))
	lineStep := fixed.Int26_6(math.Round(lineHIn * dpi * 64))
	d := &font.Drawer{Dst: img, Src: image.Black, Face: face}
	y := fixed.I(padPx) + face.Metrics().Ascent
	for _, ln := range lines {
		d.Dot = fixed.Point26_6{X: fixed.I(padPx), Y: y}
		d.DrawString(ln)
		y += lineStep
	}
	return img, nil
}

// WritePNG renders the lines and encodes the image to path. The parent
// directory must already exist.
func WritePNG(path string, lines []string, o Options) error {
	img, err := Image(lines, o)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
