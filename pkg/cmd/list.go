package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/c9s/chartdraw/pkg/overlay"
	"github.com/c9s/chartdraw/pkg/scale"
	"github.com/c9s/chartdraw/pkg/style"
)

func init() {
	RootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:          "list [file]",
	Short:        "list the drawings stored in a drawings file",
	SilenceUsage: true,
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "can not read drawings file %s", args[0])
		}

		manager := overlay.NewManager(overlay.DefaultConfig(), scale.NewMapper(nil, nil))
		if err := manager.Deserialize(data); err != nil {
			return err
		}

		w := table.NewWriter()
		w.SetOutputMirror(os.Stdout)
		w.SetStyle(*style.NewDefaultTableStyle())
		w.AppendHeader(table.Row{"ID", "TYPE", "STATE", "POINTS", "VISIBLE", "LOCKED"})

		for _, d := range manager.Drawings() {
			w.AppendRow(table.Row{
				d.ID(), d.Type(), d.State(), len(d.Points()), d.Visible(), d.Locked(),
			})
		}

		w.Render()
		return nil
	},
}
