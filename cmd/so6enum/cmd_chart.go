package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tmendel/so6enum/enumerate"
)

func newChartCmd() *cobra.Command {
	var (
		dataDir string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render growth and checklist charts from a run summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(filepath.Join(dataDir, summaryFile))
			if err != nil {
				return fmt.Errorf("reading summary (run `so6enum run` first): %w", err)
			}
			var res enumerate.Result
			if err := yaml.Unmarshal(data, &res); err != nil {
				return fmt.Errorf("parsing summary: %w", err)
			}
			if len(res.Levels) == 0 {
				return fmt.Errorf("summary holds no levels")
			}
			return renderCharts(&res, outPath)
		},
	}

	cmd.Flags().StringVarP(&dataDir, "data-dir", "o", "data", "directory holding summary.yaml")
	cmd.Flags().StringVar(&outPath, "out", "so6enum-report.html", "output HTML file")
	return cmd
}

func renderCharts(res *enumerate.Result, outPath string) error {
	tcounts := make([]string, 0, len(res.Levels))
	found := make([]opts.LineData, 0, len(res.Levels))
	hits := make([]opts.BarData, 0, len(res.Levels))
	remaining := make([]opts.LineData, 0, len(res.Levels))
	for _, l := range res.Levels {
		tcounts = append(tcounts, strconv.Itoa(l.TCount))
		found = append(found, opts.LineData{Value: l.Found})
		hits = append(hits, opts.BarData{Value: l.Hits})
		remaining = append(remaining, opts.LineData{Value: l.PatternsLeft})
	}

	growth := charts.NewLine()
	growth.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Frontier growth",
			Subtitle: "new canonical matrices per T-count (stored levels)",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "T-count"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "matrices"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	growth.SetXAxis(tcounts).AddSeries("found", found)

	checklist := charts.NewBar()
	checklist.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Checklist progress",
			Subtitle: "pattern hits per T-count and patterns remaining",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "T-count"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	checklist.SetXAxis(tcounts).AddSeries("hits", hits)

	left := charts.NewLine()
	left.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Patterns remaining"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "T-count"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	left.SetXAxis(tcounts).AddSeries("remaining", remaining)

	caseMix := charts.NewBar()
	caseMix.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Case mix",
			Subtitle: "frontier patterns by case number (stored levels)",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "T-count"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	caseMix.SetXAxis(tcounts)
	for caseNum := 0; caseNum <= 8; caseNum++ {
		series := make([]opts.BarData, 0, len(res.Levels))
		any := false
		for _, l := range res.Levels {
			n := l.Cases[caseNum]
			if n > 0 {
				any = true
			}
			series = append(series, opts.BarData{Value: n})
		}
		if any {
			caseMix.AddSeries(fmt.Sprintf("case %d", caseNum), series)
		}
	}

	page := components.NewPage().SetPageTitle("so6enum report")
	page.AddCharts(growth, checklist, caseMix, left)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("rendering charts: %w", err)
	}
	return nil
}
