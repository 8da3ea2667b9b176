// Package main provides the solvechart CLI: render dashboard charts and
// exports without running the server.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/solvegraph/dashboard"
	"github.com/danielhkuo/solvegraph/export"
	"github.com/danielhkuo/solvegraph/render"
	"github.com/danielhkuo/solvegraph/source"
)

type options struct {
	data       string
	malformed  string
	recent     int
	width      int
	height     int
	dateFormat string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "solvechart",
		Short:        "Render solve dashboard charts from a records file",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.data, "data", os.Getenv("SOLVES_DATA"), "Records file or http(s) URL")
	rootCmd.PersistentFlags().StringVar(&opts.malformed, "malformed", "strict", "Malformed record policy: strict or skip")
	rootCmd.PersistentFlags().IntVar(&opts.recent, "recent", 1000, "Records counted by the daily and weekly charts")

	rootCmd.AddCommand(newListCmd(opts), newRenderCmd(opts), newExportCmd(opts))
	return rootCmd
}

// snapshot loads the records once and builds every chart.
func (o *options) snapshot(ctx context.Context) (*dashboard.Snapshot, error) {
	if o.data == "" {
		return nil, fmt.Errorf("--data is required (or set SOLVES_DATA)")
	}
	policy, err := source.ParsePolicy(o.malformed)
	if err != nil {
		return nil, err
	}
	svc := dashboard.NewService(source.NewLoader(o.data, source.Options{Policy: policy}), nil,
		dashboard.Settings{RecentSolves: o.recent}, o.data)
	return svc.Reload(ctx)
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := opts.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTITLE\tX\tSERIES")
			for _, c := range snap.Charts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", c.Name, c.Title, c.Graph.XType, len(c.Series))
			}
			return tw.Flush()
		},
	}
}

func newRenderCmd(opts *options) *cobra.Command {
	var chartName, format, outputPath string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one chart as SVG or PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "svg" && format != "png" {
				return fmt.Errorf("invalid format: %s (must be svg or png)", format)
			}
			snap, err := opts.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			chart, ok := snap.Chart(chartName)
			if !ok {
				return fmt.Errorf("unknown chart: %s", chartName)
			}

			layout := render.DefaultLayout()
			layout.Width, layout.Height = float64(opts.width), float64(opts.height)
			layout.DateFormat = opts.dateFormat
			c, err := render.NewChart(chart.Series, chart.Graph, layout)
			if err != nil {
				return fmt.Errorf("render failed: %w", err)
			}

			return writeOutput(cmd.OutOrStdout(), outputPath, func(w io.Writer) error {
				if format == "png" {
					return c.WritePNG(w)
				}
				return c.WriteSVG(w)
			})
		},
	}

	cmd.Flags().StringVarP(&chartName, "chart", "c", dashboard.ChartTimes, "Chart name (see list)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "Output format: svg or png")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().IntVar(&opts.width, "width", 600, "Chart width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 300, "Chart height in pixels")
	cmd.Flags().StringVar(&opts.dateFormat, "date-format", "%Y-%m-%d", "strftime layout for readout dates")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the solves, summary and chart data as an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := opts.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), outputPath, func(w io.Writer) error {
				return export.Write(w, snap)
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "solves.xlsx", "Output file path (- for stdout)")
	return cmd
}

// writeOutput sends write's output to path, or to stdout when path is empty
// or "-".
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return f.Close()
}
