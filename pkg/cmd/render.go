package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wcharczuk/go-chart/v2"
	chartdrawing "github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/c9s/chartdraw/pkg/overlay"
	"github.com/c9s/chartdraw/pkg/scale"
	"github.com/c9s/chartdraw/pkg/types"
)

func init() {
	renderCmd.Flags().String("bars", "", "csv file with time,open,high,low,close rows")
	renderCmd.Flags().String("drawings", "", "saved drawings file")
	renderCmd.Flags().String("output", "chart.png", "output png path")
	RootCmd.AddCommand(renderCmd)
}

// renderCmd is a debugging aid: it plots the close prices and overlays
// the drawing point sequences on top. The production renderer lives in
// the host charting application, not here.
var renderCmd = &cobra.Command{
	Use:          "render",
	Short:        "render a quick preview png of bars with drawings overlaid",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		barsFile, err := cmd.Flags().GetString("bars")
		if err != nil {
			return err
		}
		if barsFile == "" {
			return errors.New("--bars option is required")
		}

		drawingsFile, err := cmd.Flags().GetString("drawings")
		if err != nil {
			return err
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		f, err := os.Open(barsFile)
		if err != nil {
			return errors.Wrapf(err, "can not open bars file %s", barsFile)
		}
		defer f.Close()

		bars, err := types.ReadBarsCSV(f)
		if err != nil {
			return err
		}
		if len(bars) == 0 {
			return errors.Errorf("bars file %s is empty", barsFile)
		}

		manager := overlay.NewManager(overlay.DefaultConfig(), scale.NewMapper(nil, nil))
		if drawingsFile != "" {
			data, err := os.ReadFile(drawingsFile)
			if err != nil {
				return errors.Wrapf(err, "can not read drawings file %s", drawingsFile)
			}
			if err := manager.Deserialize(data); err != nil {
				return err
			}
		}

		graph := buildPreviewChart(bars, manager)

		out, err := os.Create(output)
		if err != nil {
			return errors.Wrapf(err, "can not create output file %s", output)
		}
		defer out.Close()

		if err := graph.Render(chart.PNG, out); err != nil {
			return errors.Wrap(err, "can not render chart")
		}

		log.Infof("wrote %s", output)
		return nil
	},
}

func buildPreviewChart(bars []types.Bar, manager *overlay.Manager) chart.Chart {
	xs := make([]time.Time, len(bars))
	ys := make([]float64, len(bars))
	for i, b := range bars {
		xs[i] = time.Unix(0, b.Time*int64(time.Millisecond))
		ys[i] = b.Close
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name:    "close",
			XValues: xs,
			YValues: ys,
		},
	}

	for _, d := range manager.Drawings() {
		points := d.Points()
		if len(points) == 0 || !d.Visible() {
			continue
		}

		dx := make([]time.Time, len(points))
		dy := make([]float64, len(points))
		for i, p := range points {
			dx[i] = time.Unix(0, p.Time*int64(time.Millisecond))
			dy[i] = p.Price
		}

		series = append(series, chart.TimeSeries{
			Name:    string(d.Type()),
			XValues: dx,
			YValues: dy,
			Style: chart.Style{
				StrokeColor: colorFromHex(d.Style().LineColor),
				StrokeWidth: d.Style().LineWidth,
			},
		})
	}

	return chart.Chart{
		Width:  1280,
		Height: 720,
		XAxis:  chart.XAxis{Name: "time"},
		YAxis:  chart.YAxis{Name: "price"},
		Series: series,
	}
}

func colorFromHex(hex string) chartdrawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if hex == "" {
		return chart.ColorBlue
	}
	return chartdrawing.ColorFromHex(hex)
}
