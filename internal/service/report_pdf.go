package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	reportFont     = "Helvetica"
	reportFontSize = 14.0

	// text origin, one inch from the top-left corner
	reportOriginPt = 72.0
)

// ReportRenderer produces the downloadable PDF for a stored report
type ReportRenderer interface {
	Render(username, orderID, testName, detail string) ([]byte, string, error)
}

type pdfReportRenderer struct{}

func NewPDFReportRenderer() ReportRenderer {
	return &pdfReportRenderer{}
}

var _ ReportRenderer = (*pdfReportRenderer)(nil)

// Render draws the detail text as a single line on one A4 page and names
// the file {username}_{orderID}_{testName}.pdf. Output is deterministic
// for identical inputs.
func (r *pdfReportRenderer) Render(username, orderID, testName, detail string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(time.Time{})
	pdf.AddPage()
	pdf.SetFont(reportFont, "", reportFontSize)
	pdf.Text(reportOriginPt, reportOriginPt, detail)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render report pdf: %w", err)
	}

	filename := fmt.Sprintf("%s_%s_%s.pdf", username, orderID, testName)
	return buf.Bytes(), filename, nil
}
