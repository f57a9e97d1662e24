package export

import (
	"bytes"
	"fmt"

	"docquiz/internal/domain"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer renders a finished quiz into a printable PDF with a
// questions section and a separately labeled answer key. It implements
// domain.QuizExporter.
type PDFRenderer struct{}

// NewPDFRenderer creates a new quiz PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the PDF bytes for the given items and title.
func (r *PDFRenderer) Render(items []domain.QuizItem, title string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.AliasNbPages("")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(128, 128, 128)
		doc.CellFormat(0, 10, fmt.Sprintf("%d / {nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(0, 10, tr(title), "", "C", false)
	doc.Ln(6)

	r.sectionHeading(doc, "Questions")
	for i, item := range items {
		doc.SetFont("Helvetica", "", 11)
		doc.SetTextColor(0, 0, 0)
		doc.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, item.Stem)), "", "L", false)
		if item.Type == domain.TypeMCQ {
			doc.SetFont("Helvetica", "", 10)
			for j, opt := range item.Options {
				doc.SetX(28)
				doc.MultiCell(0, 5, tr(fmt.Sprintf("%c. %s", 'A'+j, opt)), "", "L", false)
			}
		}
		doc.Ln(4)
	}

	doc.Ln(6)
	r.sectionHeading(doc, "Answer Key")
	for i, item := range items {
		doc.SetFont("Helvetica", "", 11)
		doc.SetTextColor(0, 0, 0)
		doc.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, item.Answer)), "", "L", false)
		if item.Ref != "" {
			doc.SetFont("Helvetica", "I", 9)
			doc.SetTextColor(128, 128, 128)
			doc.MultiCell(0, 5, tr(fmt.Sprintf("(Reference: %s)", item.Ref)), "", "L", false)
		}
		doc.Ln(2)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, domain.NewInternalError("Failed to render quiz PDF", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) sectionHeading(doc *fpdf.Fpdf, text string) {
	doc.SetFont("Helvetica", "BU", 14)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 9, text, "", 1, "L", false, 0, "")
	doc.Ln(2)
}

var _ domain.QuizExporter = (*PDFRenderer)(nil)
