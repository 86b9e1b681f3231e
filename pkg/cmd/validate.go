package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/chartdraw/pkg/drawing"
	"github.com/c9s/chartdraw/pkg/types"
)

func init() {
	RootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:          "validate [file]",
	Short:        "validate a saved drawings file",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "can not read drawings file %s", args[0])
		}

		var records []types.DrawingRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return errors.Wrapf(err, "can not decode drawings file %s", args[0])
		}

		var ok, skipped int
		for _, r := range records {
			if _, err := drawing.NewFromRecord(r); err != nil {
				log.WithError(err).WithField("drawing", r.ID).Warnf("unrecognized record")
				skipped++
				continue
			}
			ok++
		}

		fmt.Printf("%d drawings ok, %d skipped\n", ok, skipped)
		if skipped > 0 {
			return errors.Errorf("%d of %d records are not loadable", skipped, len(records))
		}
		return nil
	},
}
