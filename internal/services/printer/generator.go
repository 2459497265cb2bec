package printer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Tanmay1202/macnmanage/internal/models"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateResourceLabel renders an A6 PDF label for a single resource:
// a QR code encoding the resource id plus the name, type and unit.
func GenerateResourceLabel(res models.Resource) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A6", "")
	pdf.SetMargins(8, 8, 8)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// A6 is 105 x 148 mm
	pageWidth := 105.0

	qrPng, err := qrcode.Encode(res.ID, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}

	imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader("qr", imgOptions, bytes.NewReader(qrPng))

	qrSize := 60.0
	pdf.ImageOptions("qr", (pageWidth-qrSize)/2, 14, qrSize, qrSize, false, imgOptions, 0, "")

	pdf.SetXY(8, 80)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(pageWidth-16, 8, res.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pageWidth-16, 6, res.Type, "", 1, "C", false, 0, "")
	pdf.CellFormat(pageWidth-16, 6, fmt.Sprintf("%.2f %s", res.Quantity, res.Unit), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 7)
	pdf.SetXY(8, 134)
	pdf.CellFormat(pageWidth-16, 4, res.ID, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateInventoryReport renders an A4 PDF listing the given resources
// with their derived position values (quantity x price per unit).
func GenerateInventoryReport(resources []models.Resource) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 14, 12)
	pdf.SetAutoPageBreak(true, 16)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Inventory Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, time.Now().UTC().Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Column widths add up to 186 (A4 width minus margins)
	widths := []float64{56, 30, 22, 16, 28, 34}
	headers := []string{"Name", "Type", "Quantity", "Unit", "Price/Unit", "Value"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	total := 0.0
	for _, res := range resources {
		pdf.CellFormat(widths[0], 6, res.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, res.Type, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.2f", res.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, res.Unit, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.2f", res.PricePerUnit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, fmt.Sprintf("%.2f", res.Value()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
		total += res.Value()
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4], 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 7, fmt.Sprintf("%.2f", total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
