// Package fpdf renders assembled event tables into a PDF document.
package fpdf

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"eventpdf/internal/domain/entities"
)

const (
	topMargin    = 15.0
	bottomMargin = 15.0
	headingH     = 8.0
	sectionH     = 6.0
)

// Renderer produces a single PDF from a layout and its assembled tables
type Renderer struct{}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// document bundles the fpdf handle with the derived geometry of one render
type document struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
	layout    *entities.Layout
	widths    []float64
	left      float64
	breakAt   float64
}

// Render writes the document to outputPath: one heading, then one subtable
// per non-empty section, with column titles repeated after page breaks.
func (r *Renderer) Render(layout *entities.Layout, tables []*entities.Table, outputPath string) error {
	orientation := "P"
	if strings.EqualFold(layout.Orientation, "landscape") {
		orientation = "L"
	}

	pdf := fpdf.New(orientation, "mm", layout.PageSize, "")
	pageW, pageH := pdf.GetPageSize()
	if layout.TableWidth > pageW {
		return fmt.Errorf("table width %.1f mm exceeds page width %.1f mm", layout.TableWidth, pageW)
	}

	doc := &document{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		layout:    layout,
		widths:    layout.ColumnWidths(),
		left:      (pageW - layout.TableWidth) / 2,
		breakAt:   pageH - bottomMargin,
	}

	pdf.SetMargins(doc.left, topMargin, doc.left)
	pdf.SetAutoPageBreak(false, bottomMargin)
	pdf.SetLineWidth(ruleWidth)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(layout.Font.Family, "", 7)
		pdf.CellFormat(0, 6, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	doc.heading()
	for _, table := range tables {
		if table.Empty() {
			continue
		}
		doc.subtable(table)
	}

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func (d *document) heading() {
	d.applyStyle(headingStyle, d.layout.Font.HeadingSize)
	d.pdf.CellFormat(d.layout.TableWidth, headingH, d.translate(d.layout.Title),
		"1", 1, "CM", true, 0, "")
}

func (d *document) subtable(table *entities.Table) {
	// Keep the section title together with at least its column header
	if d.pdf.GetY()+sectionH+2*d.layout.Font.LineHeight > d.breakAt {
		d.pdf.AddPage()
	}

	d.applyStyle(sectionStyle, d.layout.Font.SectionSize)
	d.pdf.CellFormat(d.layout.TableWidth, sectionH, d.translate(table.Title),
		"1", 1, "LM", false, 0, "")
	d.columnHeader()

	for _, row := range table.Rows {
		d.row(row)
	}
	d.pdf.Ln(4)
}

func (d *document) columnHeader() {
	d.applyStyle(columnStyle, d.layout.Font.Size)
	for i, col := range d.layout.Columns {
		ln := 0
		if i == len(d.layout.Columns)-1 {
			ln = 1
		}
		d.pdf.CellFormat(d.widths[i], d.layout.Font.LineHeight+2*cellPadding,
			d.translate(col.Title), "1", ln, "CM", false, 0, "")
	}
}

func (d *document) row(row entities.Row) {
	cellStyle := normalStyle
	if row.Reference {
		cellStyle = referenceStyle
	}
	d.applyStyle(cellStyle, d.layout.Font.Size)

	lineH := d.layout.Font.LineHeight
	cells := make([][]string, len(row.Cells))
	maxLines := 1
	for i, text := range row.Cells {
		cells[i] = d.wrap(text, d.widths[i]-2*cellPadding)
		if len(cells[i]) > maxLines {
			maxLines = len(cells[i])
		}
	}
	rowH := float64(maxLines)*lineH + 2*cellPadding

	if d.pdf.GetY()+rowH > d.breakAt {
		d.pdf.AddPage()
		d.columnHeader()
		d.applyStyle(cellStyle, d.layout.Font.Size)
	}

	x := d.left
	y := d.pdf.GetY()
	for i, lines := range cells {
		w := d.widths[i]
		// Vertically center the cell's lines within the row
		textY := y + cellPadding + (rowH-2*cellPadding-float64(len(lines))*lineH)/2
		for n, line := range lines {
			d.pdf.SetXY(x, textY+float64(n)*lineH)
			d.pdf.CellFormat(w, lineH, line, "", 0, cellStyle.align, false, 0, "")
		}
		d.pdf.Rect(x, y, w, rowH, "D")
		x += w
	}
	d.pdf.SetXY(d.left, y+rowH)
}

// wrap splits cell text into rendered lines, honoring explicit newlines
// before width-based wrapping.
func (d *document) wrap(text string, width float64) []string {
	if text == "" {
		return []string{""}
	}
	lines := make([]string, 0, 4)
	for _, part := range strings.Split(text, "\n") {
		translated := d.translate(part)
		if translated == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, d.pdf.SplitText(translated, width)...)
	}
	return lines
}

func (d *document) applyStyle(s style, size float64) {
	d.pdf.SetFont(d.layout.Font.Family, s.fontStyle, size)
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.SetTextColor(0, 0, 0)
	if s.fill {
		d.pdf.SetFillColor(s.fillRGB[0], s.fillRGB[1], s.fillRGB[2])
	}
}
