// Package render draws an opaque text payload as a QR code in one of the
// supported output formats. It knows nothing about the payload's structure.
package render

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// Format selects the output encoding of the rendered QR code. The zero
// value is FormatASCII.
type Format int

const (
	FormatASCII Format = iota
	FormatPNG
	FormatSVG
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	default:
		return "ascii"
	}
}

// ParseFormat maps a user-supplied format name to a Format. Matching is
// case-insensitive; unsupported names (like jpeg) are an error.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii":
		return FormatASCII, nil
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	}
	return FormatASCII, fmt.Errorf("invalid format: %q (supported: ascii, png, svg)", s)
}

// ParseRecovery maps a user-supplied error correction name to a
// qrcode.RecoveryLevel.
func ParseRecovery(s string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return qrcode.Low, nil
	case "medium":
		return qrcode.Medium, nil
	case "high":
		return qrcode.High, nil
	case "highest":
		return qrcode.Highest, nil
	}
	return qrcode.Medium, fmt.Errorf("invalid recovery level: %q (supported: low, medium, high, highest)", s)
}

// Options controls how the QR code is drawn.
type Options struct {
	Format   Format
	Size     int // PNG edge length in pixels
	MinSize  int // minimum SVG edge length in pixels
	Recovery qrcode.RecoveryLevel
	Inverse  bool // swap dark and light cells in ascii output
}

// DefaultOptions returns the built-in rendering defaults: ascii output, a
// 512px PNG edge, a 200px SVG minimum, and medium error correction.
func DefaultOptions() Options {
	return Options{
		Format:   FormatASCII,
		Size:     512,
		MinSize:  200,
		Recovery: qrcode.Medium,
	}
}

// Render encodes payload as a QR code and returns the bytes to write to the
// output stream: unicode half-block text for ascii, a PNG image, or an SVG
// document.
func Render(payload string, opts Options) ([]byte, error) {
	q, err := qrcode.New(payload, opts.Recovery)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	switch opts.Format {
	case FormatPNG:
		png, err := q.PNG(opts.Size)
		if err != nil {
			return nil, fmt.Errorf("failed to render PNG: %w", err)
		}
		return png, nil
	case FormatSVG:
		return renderSVG(q.Bitmap(), opts.MinSize), nil
	default:
		return []byte(q.ToSmallString(opts.Inverse)), nil
	}
}

// renderSVG draws one rect per dark module. The bitmap already includes the
// quiet zone border; the module size is scaled up until the edge reaches
// minSize pixels.
func renderSVG(bitmap [][]bool, minSize int) []byte {
	modules := len(bitmap)
	scale := 1
	if minSize > 0 && modules > 0 {
		scale = (minSize + modules - 1) / modules
	}
	dim := modules * scale

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" shape-rendering="crispEdges">`+"\n", dim, dim)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="#ffffff"/>`+"\n", dim, dim)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="#000000"/>`+"\n", x*scale, y*scale, scale, scale)
			}
		}
	}
	b.WriteString("</svg>\n")
	return []byte(b.String())
}
