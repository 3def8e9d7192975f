package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator is an interface so handlers can be tested with a mock.
type Generator interface {
	GenerateClientReport(data ClientReportData) (string, error)
}

// ReportGenerator renders the client summary report.
type ReportGenerator struct {
	RootDir string // storage root, e.g. "./files"
}

type ClientReportRow struct {
	ClientID string
	Name     string
	Email    string
	Status   string
	Revenue  float64
}

type ClientReportData struct {
	GeneratedAt  time.Time
	Rows         []ClientReportRow
	ActiveCount  int
	TotalRevenue float64
	Filename     string // file name without path; generated when empty
}

func NewReportGenerator(rootDir string) *ReportGenerator {
	return &ReportGenerator{RootDir: filepath.Clean(rootDir)}
}

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	return filepath.Join(g.RootDir, filepath.Base(filename)), nil
}

// GenerateClientReport writes the PDF and returns its absolute path.
func (g *ReportGenerator) GenerateClientReport(data ClientReportData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("clients_%s.pdf", data.GeneratedAt.Format("20060102_150405"))
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Client Summary", false)
	pdf.SetAuthor("crmlite", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "CLIENT SUMMARY", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, data.GeneratedAt.Format("02.01.2006 15:04"), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	// Totals
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Totals", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	g.kvLine(pdf, "Clients", fmt.Sprintf("%d", len(data.Rows)))
	g.kvLine(pdf, "Active clients", fmt.Sprintf("%d", data.ActiveCount))
	g.kvLine(pdf, "Total revenue", fmt.Sprintf("%.2f", data.TotalRevenue))
	pdf.Ln(2)
	g.hr(pdf)

	// Table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(18, 7, "ID", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 7, "Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, "Email", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Status", "1", 0, "C", false, 0, "")
	pdf.CellFormat(22, 7, "Revenue", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range data.Rows {
		pdf.CellFormat(18, 6, row.ClientID, "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, row.Email, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, row.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 6, fmt.Sprintf("%.2f", row.Revenue), "1", 1, "R", false, 0, "")
	}

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	pdf.SetLineWidth(0.3)
	x := pdf.GetX()
	y := pdf.GetY()
	pdf.Line(20, y, 190, y)
	pdf.SetXY(x, y+2)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(50, 6, key, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}
