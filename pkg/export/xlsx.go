package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
)

// BuildXLSX renders a dashboard report as a workbook: one summary sheet for
// the KPIs plus one sheet per chart table.
func BuildXLSX(report *domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	summary := "summary"
	f.SetSheetName("Sheet1", summary)

	_ = f.SetCellValue(summary, "A1", report.Title)
	_ = f.SetCellValue(summary, "A2", "Generated")
	_ = f.SetCellValue(summary, "B2", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	_ = f.SetCellValue(summary, "A3", "Station")
	_ = f.SetCellValue(summary, "B3", report.Filter.Station)
	_ = f.SetCellValue(summary, "A4", "Month")
	_ = f.SetCellValue(summary, "B4", monthLabel(report.Filter.Month))

	k := report.KPIs
	_ = f.SetCellValue(summary, "A6", "Total Transactions")
	_ = f.SetCellValue(summary, "B6", k.TotalTransactions)
	_ = f.SetCellValue(summary, "A7", "Total Energy (kWh)")
	_ = f.SetCellValue(summary, "B7", k.TotalEnergyKWh)
	_ = f.SetCellValue(summary, "A8", "Total Revenue")
	_ = f.SetCellValue(summary, "B8", k.TotalRevenue)
	_ = f.SetCellValue(summary, "A9", "Unique Users")
	_ = f.SetCellValue(summary, "B9", k.UniqueUsers)
	_ = f.SetCellValue(summary, "A10", "Unique Stations")
	_ = f.SetCellValue(summary, "B10", k.UniqueStations)
	_ = f.SetCellValue(summary, "A11", "Avg Duration (min)")
	_ = f.SetCellValue(summary, "B11", nullable(k.AvgDurationMinutes))
	_ = f.SetCellValue(summary, "A12", "Price per kWh")
	_ = f.SetCellValue(summary, "B12", nullable(k.PricePerKWh))

	hourly := "hourly"
	f.NewSheet(hourly)
	_ = f.SetCellValue(hourly, "A1", "Hour")
	_ = f.SetCellValue(hourly, "B1", "Transactions")
	_ = f.SetCellValue(hourly, "C1", "Energy (kWh)")
	for i, b := range report.Charts.Hourly {
		row := i + 2
		_ = f.SetCellValue(hourly, fmt.Sprintf("A%d", row), b.Hour)
		_ = f.SetCellValue(hourly, fmt.Sprintf("B%d", row), b.Transactions)
		_ = f.SetCellValue(hourly, fmt.Sprintf("C%d", row), b.EnergyKWh)
	}

	weekdays := "weekdays"
	f.NewSheet(weekdays)
	_ = f.SetCellValue(weekdays, "A1", "Day")
	_ = f.SetCellValue(weekdays, "B1", "Transactions")
	for i, b := range report.Charts.Weekdays {
		row := i + 2
		_ = f.SetCellValue(weekdays, fmt.Sprintf("A%d", row), b.Label)
		_ = f.SetCellValue(weekdays, fmt.Sprintf("B%d", row), b.Transactions)
	}

	stations := "stations"
	f.NewSheet(stations)
	_ = f.SetCellValue(stations, "A1", "Station")
	_ = f.SetCellValue(stations, "B1", "Transactions")
	_ = f.SetCellValue(stations, "C1", "Energy (kWh)")
	_ = f.SetCellValue(stations, "D1", "Revenue")
	for i, s := range report.Charts.TopStations {
		row := i + 2
		_ = f.SetCellValue(stations, fmt.Sprintf("A%d", row), s.StationID)
		_ = f.SetCellValue(stations, fmt.Sprintf("B%d", row), s.Transactions)
		_ = f.SetCellValue(stations, fmt.Sprintf("C%d", row), s.EnergyKWh)
		_ = f.SetCellValue(stations, fmt.Sprintf("D%d", row), s.Revenue)
	}

	revenue := "revenue"
	f.NewSheet(revenue)
	_ = f.SetCellValue(revenue, "A1", "Date")
	_ = f.SetCellValue(revenue, "B1", "Revenue (thousands)")
	for i, p := range report.Charts.DailyRevenue {
		row := i + 2
		_ = f.SetCellValue(revenue, fmt.Sprintf("A%d", row), p.Date.Format("2006-01-02"))
		_ = f.SetCellValue(revenue, fmt.Sprintf("B%d", row), p.RevenueThousands)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func nullable(v *float64) interface{} {
	if v == nil {
		return "n/a"
	}
	return *v
}

func monthLabel(month int) string {
	if month == 0 {
		return "ALL"
	}
	return fmt.Sprintf("%d", month)
}
