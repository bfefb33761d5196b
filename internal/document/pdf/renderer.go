// Package pdf turns a paginated document into PDF bytes. It is the only
// place that knows about a concrete file format; the layout itself lives in
// the document package.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/mcallister/ro-casework/internal/document"
)

const fontFamily = "Helvetica"

// Render draws every text instruction of doc onto A4 pages and returns the
// finished PDF.
func Render(doc *document.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("render pdf: nil document")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAutoPageBreak(false, 0)

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			pdf.SetFont(fontFamily, "", op.Size)
			pdf.SetTextColor(op.Color.R, op.Color.G, op.Color.B)

			x := op.X
			if op.Align == document.AlignCenter {
				x = op.X - pdf.GetStringWidth(op.Text)/2
			}
			pdf.Text(x, op.Y, op.Text)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
