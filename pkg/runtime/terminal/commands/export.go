package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ev-tools/charge-atlas/pkg/export"
	"github.com/ev-tools/charge-atlas/pkg/models/domain"
)

type ExportCmd struct {
	dataPath string
	station  string
	month    int
	format   string
	outPath  string
}

func NewExportCmd() *cobra.Command {
	ec := &ExportCmd{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dashboard report to a file",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.dataPath, "data", "", "Path to the session CSV file")
	cmd.Flags().StringVar(&ec.station, "station", domain.StationAll, "Station id to filter on (ALL for every station)")
	cmd.Flags().IntVar(&ec.month, "month", domain.MonthAll, "Month number 1-12 to filter on (0 for every month)")
	cmd.Flags().StringVar(&ec.format, "format", "xlsx", "Export format: xlsx or pdf")
	cmd.Flags().StringVar(&ec.outPath, "out", "", "Output file path")

	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	report, err := buildReport(ec.dataPath, ec.station, ec.month)
	if err != nil {
		return err
	}

	var payload []byte
	switch ec.format {
	case "xlsx":
		payload, err = export.BuildXLSX(report)
	case "pdf":
		payload, err = export.BuildPDF(report)
	default:
		return fmt.Errorf("unsupported format %q, expected xlsx or pdf", ec.format)
	}
	if err != nil {
		return fmt.Errorf("failed to build %s report: %w", ec.format, err)
	}

	if err := os.WriteFile(ec.outPath, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ec.outPath, err)
	}
	return nil
}
