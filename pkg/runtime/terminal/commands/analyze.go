package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ev-tools/charge-atlas/pkg/models/domain"
	"github.com/ev-tools/charge-atlas/pkg/services/analytics"
	"github.com/ev-tools/charge-atlas/pkg/services/dataset"
	"github.com/ev-tools/charge-atlas/pkg/services/ingest"
)

// ReportHandler consumes an evaluated dashboard report.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

type AnalyzeCmd struct {
	dataPath string
	station  string
	month    int
	reporter ReportHandler
}

func NewAnalyzeCmd(reporter ReportHandler) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze charging session data",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.dataPath, "data", "", "Path to the session CSV file")
	cmd.Flags().StringVar(&ac.station, "station", domain.StationAll, "Station id to filter on (ALL for every station)")
	cmd.Flags().IntVar(&ac.month, "month", domain.MonthAll, "Month number 1-12 to filter on (0 for every month)")

	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	report, err := buildReport(ac.dataPath, ac.station, ac.month)
	if err != nil {
		return err
	}
	return ac.reporter.Handle(report)
}

// buildReport loads a dataset and evaluates the full catalog for one
// filter selection.
func buildReport(dataPath, station string, month int) (*domain.Report, error) {
	sessions, stats, err := ingest.LoadCSV(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load session data: %w", err)
	}

	ds := dataset.New(sessions)
	f := domain.FilterState{Station: station, Month: month}
	if !ds.HasStation(f.Station) {
		return nil, fmt.Errorf("station %q not present in dataset", f.Station)
	}
	if !ds.HasMonth(f.Month) {
		return nil, fmt.Errorf("month %d not present in dataset", f.Month)
	}

	kpis, charts := analytics.Evaluate(ds, f)
	report := &domain.Report{
		Title:       fmt.Sprintf("EV Charging Sessions (%d rows, %d unparsable timestamps, %d unparsable durations)", stats.Rows, stats.BadTimestamps, stats.BadDurations),
		GeneratedAt: time.Now(),
		Filter:      f,
		KPIs:        kpis,
		Charts:      charts,
	}
	return report, nil
}
