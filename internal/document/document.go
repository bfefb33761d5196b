// Package document renders case records into paginated documents: a page
// size plus an ordered list of text instructions that a backend (see the
// pdf subpackage) turns into an exportable byte stream. Rendering is a pure
// function of the case and the generation timestamp; empty fields come out
// as blank text, never a placeholder literal.
package document

import (
	"strings"
	"unicode/utf8"
)

// A4 portrait, millimetres.
const (
	PageWidth  = 210.0
	PageHeight = 297.0

	marginLeft   = 20.0
	centerX      = PageWidth / 2
	contentWidth = 170.0

	// Wrapped blocks that would pass this baseline flow onto a new page.
	flowLimit = 270.0
	topMargin = 20.0
)

// ptToMm converts a font size in points to millimetres.
const ptToMm = 0.3528

type Color struct {
	R, G, B int
}

var (
	colorBlack = Color{0, 0, 0}
	colorBlue  = Color{0, 94, 184}
	colorGrey  = Color{128, 128, 128}
	colorRed   = Color{220, 53, 69}
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextOp places a string with its baseline at (X, Y). For AlignCenter, X is
// the centre of the rendered text.
type TextOp struct {
	X, Y  float64
	Size  float64
	Color Color
	Align Align
	Text  string
}

type Page struct {
	Ops []TextOp
}

// Document is a self-contained paginated layout plus the suggested filename
// (without extension) for the exported file.
type Document struct {
	Title      string
	Filename   string
	PageWidth  float64
	PageHeight float64
	Pages      []Page
}

type builder struct {
	doc *Document
}

func newBuilder(title, filename string) *builder {
	return &builder{
		doc: &Document{
			Title:      title,
			Filename:   filename,
			PageWidth:  PageWidth,
			PageHeight: PageHeight,
			Pages:      []Page{{}},
		},
	}
}

func (b *builder) text(x, y, size float64, c Color, align Align, s string) {
	page := &b.doc.Pages[len(b.doc.Pages)-1]
	page.Ops = append(page.Ops, TextOp{X: x, Y: y, Size: size, Color: c, Align: align, Text: s})
}

func (b *builder) newPage() {
	b.doc.Pages = append(b.doc.Pages, Page{})
}

// wrapped writes text word-wrapped to the content width, one line per op,
// flowing onto a new page when it runs past the flow limit. It returns the
// baseline of the next free line.
func (b *builder) wrapped(x, y, size float64, c Color, text string) float64 {
	step := lineHeight(size)
	for _, line := range wrap(text, maxChars(size)) {
		if y > flowLimit {
			b.newPage()
			y = topMargin
		}
		if line != "" {
			b.text(x, y, size, c, AlignLeft, line)
		}
		y += step
	}
	return y
}

func lineHeight(size float64) float64 {
	return size * ptToMm * 1.15
}

// maxChars approximates how many characters of proportional text fit in the
// content width at the given size, using half an em as the average glyph
// width. The figure only has to be deterministic, not typographically exact.
func maxChars(size float64) int {
	return int(contentWidth / (size * ptToMm * 0.5))
}

// wrap greedily word-wraps text to limit characters per line, preserving
// paragraph breaks. Words longer than a whole line are broken hard.
func wrap(text string, limit int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		fields := strings.Fields(para)
		if len(fields) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range fields {
			for utf8.RuneCountInString(word) > limit {
				if current != "" {
					lines = append(lines, current)
					current = ""
				}
				runes := []rune(word)
				lines = append(lines, string(runes[:limit]))
				word = string(runes[limit:])
			}
			switch {
			case current == "":
				current = word
			case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= limit:
				current += " " + word
			default:
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		}
	}
	return lines
}
