package docs

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Renderer turns approved filings into printable PDF documents carrying a
// verification QR code.
type Renderer struct {
	orgName       string
	verifyBaseURL string
}

func NewRenderer(orgName, verifyBaseURL string) *Renderer {
	return &Renderer{orgName: orgName, verifyBaseURL: verifyBaseURL}
}

func (r *Renderer) newDoc(title, referenceCode string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, r.orgName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Office of Student Affairs and Services", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	if referenceCode != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, "Reference: "+referenceCode, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
	return pdf
}

func field(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 7, value, "", "L", false)
}

// qrBlock stamps the verification QR code and link into the bottom-left
// corner of the current page.
func (r *Renderer) qrBlock(pdf *gofpdf.Fpdf, kind, referenceCode string) error {
	link := VerifyURL(r.verifyBaseURL, kind, referenceCode)
	png, err := VerifyQR(link, 256)
	if err != nil {
		return err
	}

	name := "verify-" + referenceCode
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))

	_, pageH := pdf.GetPageSize()
	y := pageH - 45
	pdf.ImageOptions(name, 12, y, 28, 28, false, opts, 0, "")
	pdf.SetXY(42, y+8)
	pdf.SetFont("Helvetica", "", 8)
	pdf.MultiCell(0, 4, "Scan to verify this document's authenticity:\n"+link, "", "L", false)
	return nil
}

func (r *Renderer) output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
