package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
)

// BuildPDF renders a one-page dashboard report: the KPI block followed by
// the station ranking table.
func BuildPDF(report *domain.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, report.Title)
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2006-01-02 15:04:05")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Station: %s", report.Filter.Station))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Month: %s", monthLabel(report.Filter.Month)))
	pdf.Ln(8)

	k := report.KPIs
	pdf.Cell(0, 6, fmt.Sprintf("Total Transactions: %d", k.TotalTransactions))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Energy (kWh): %.2f", k.TotalEnergyKWh))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Revenue: %.2f", k.TotalRevenue))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Unique Users: %d", k.UniqueUsers))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Unique Stations: %d", k.UniqueStations))
	pdf.Ln(5)
	if k.AvgDurationMinutes != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Avg Duration (min): %.1f", *k.AvgDurationMinutes))
	} else {
		pdf.Cell(0, 6, "Avg Duration (min): n/a")
	}
	pdf.Ln(5)
	if k.PricePerKWh != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Price per kWh: %.2f", *k.PricePerKWh))
	} else {
		pdf.Cell(0, 6, "Price per kWh: n/a")
	}
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 6, "Station", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Transactions", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Energy (kWh)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Revenue", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, s := range report.Charts.TopStations {
		pdf.CellFormat(60, 6, s.StationID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%d", s.Transactions), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", s.EnergyKWh), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", s.Revenue), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
