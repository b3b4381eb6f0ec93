package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
	"github.com/ev-tools/charge-atlas/pkg/services/analytics"
)

// Reporter renders a dashboard report to the console in formatted text.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter.
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

// reportView augments a report with the narrative extrema lines.
type reportView struct {
	*domain.Report
	AvgDuration    string
	PricePerKWh    string
	PeakHour       string
	QuietHour      string
	BusiestWeekday string
	LeadingStation string
	BestMonth      string
}

func (c *Reporter) Handle(report *domain.Report) error {
	view := reportView{
		Report:         report,
		AvgDuration:    "n/a",
		PricePerKWh:    "n/a",
		PeakHour:       "n/a",
		QuietHour:      "n/a",
		BusiestWeekday: "n/a",
		LeadingStation: "n/a",
		BestMonth:      "n/a",
	}
	if v := report.KPIs.AvgDurationMinutes; v != nil {
		view.AvgDuration = fmt.Sprintf("%.1f", *v)
	}
	if v := report.KPIs.PricePerKWh; v != nil {
		view.PricePerKWh = fmt.Sprintf("%.2f", *v)
	}
	if h, ok := analytics.PeakHour(report.Charts.Hourly); ok {
		view.PeakHour = fmt.Sprintf("%02d:00", h)
	}
	if h, ok := analytics.QuietHour(report.Charts.Hourly); ok {
		view.QuietHour = fmt.Sprintf("%02d:00", h)
	}
	if d, ok := analytics.BusiestWeekday(report.Charts.Weekdays); ok {
		view.BusiestWeekday = d.Label()
	}
	if s, ok := analytics.LeadingStation(report.Charts.TopStations); ok {
		view.LeadingStation = fmt.Sprintf("%s (%d transactions)", s.StationID, s.Transactions)
	}
	if m, ok := analytics.BestMonth(report.Charts.MonthlyRevenue); ok {
		view.BestMonth = fmt.Sprintf("%s (%.2f)", m.Name, m.Amount)
	}

	tmpl := `
{{.Title}}
Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
Station: {{.Filter.Station}} | Month: {{if eq .Filter.Month 0}}ALL{{else}}{{.Filter.Month}}{{end}}

=== KPIs ===
Total Transactions: {{.KPIs.TotalTransactions}}
Total Energy (kWh): {{printf "%.2f" .KPIs.TotalEnergyKWh}}
Total Revenue: {{printf "%.2f" .KPIs.TotalRevenue}}
Unique Users: {{.KPIs.UniqueUsers}}
Unique Stations: {{.KPIs.UniqueStations}}
Avg Duration (min): {{.AvgDuration}}
Price per kWh: {{.PricePerKWh}}

=== Highlights ===
Peak hour: {{.PeakHour}}
Quietest hour: {{.QuietHour}}
Busiest weekday: {{.BusiestWeekday}}
Leading station: {{.LeadingStation}}
Best month: {{.BestMonth}}

=== Top Stations ===
{{range .Charts.TopStations}}- {{.StationID}}: {{.Transactions}} transactions, {{printf "%.2f" .EnergyKWh}} kWh, {{printf "%.2f" .Revenue}} revenue
{{end}}
=== Weekday Usage ===
{{range .Charts.Weekdays}}- {{.Label}}: {{.Transactions}}
{{end}}`

	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}
