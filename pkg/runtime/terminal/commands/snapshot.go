package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ev-tools/charge-atlas/pkg/services/dataset"
	"github.com/ev-tools/charge-atlas/pkg/services/ingest"
)

// SnapshotCmd encodes a CSV source into a dataset snapshot, so a later run
// can restore the derived records without re-parsing the CSV.
type SnapshotCmd struct {
	dataPath string
	outPath  string
}

func NewSnapshotCmd() *cobra.Command {
	sc := &SnapshotCmd{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Serialize a session CSV into a dataset snapshot",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.dataPath, "data", "", "Path to the session CSV file")
	cmd.Flags().StringVar(&sc.outPath, "out", "", "Output snapshot path")

	_ = cmd.MarkFlagRequired("data")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (sc *SnapshotCmd) run(cmd *cobra.Command, args []string) error {
	sessions, _, err := ingest.LoadCSV(sc.dataPath)
	if err != nil {
		return fmt.Errorf("failed to load session data: %w", err)
	}

	out, err := os.Create(sc.outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", sc.outPath, err)
	}
	defer out.Close()

	return dataset.EncodeSnapshot(dataset.New(sessions), out)
}
