package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/browser"

	"kdd-pipeline/internal/config"
	"kdd-pipeline/internal/schema"
)

// Reporter renders the two views as self-contained HTML chart pages and,
// when configured, opens them in the default browser.
type Reporter struct {
	cfg config.Settings
	out io.Writer

	chartDir string
}

func New(cfg config.Settings, out io.Writer) *Reporter {
	return &Reporter{cfg: cfg, out: out}
}

// Run renders both views. Empty views are skipped with a notice and are
// not errors.
func (r *Reporter) Run(t *schema.Table) error {
	if err := r.renderTopAttacks(t); err != nil {
		return fmt.Errorf("top-attack chart: %w", err)
	}
	if err := r.renderAttackTrend(t); err != nil {
		return fmt.Errorf("attack-trend chart: %w", err)
	}
	return nil
}

func (r *Reporter) renderTopAttacks(t *schema.Table) error {
	view := TopAttacks(t, r.cfg.TopAttacks)
	if len(view) == 0 {
		fmt.Fprintln(r.out, "No attacks found, skipping the top-attack chart.")
		return nil
	}

	labels := make([]string, 0, len(view))
	data := make([]opts.BarData, 0, len(view))
	for _, lc := range view {
		labels = append(labels, lc.Label)
		data = append(data, opts.BarData{Value: lc.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Top %d Attack Types (Synthetic Data)", r.cfg.TopAttacks),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Attack Type"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Frequency"}),
	)
	bar.SetXAxis(labels).AddSeries("frequency", data)

	return r.render(bar, "top_attacks.html")
}

func (r *Reporter) renderAttackTrend(t *schema.Table) error {
	view := AttackTrend(t, r.cfg.IntervalSize)
	if len(view) == 0 {
		fmt.Fprintln(r.out, "No attack trend to plot, skipping the trend chart.")
		return nil
	}

	intervals := make([]string, 0, len(view))
	data := make([]opts.LineData, 0, len(view))
	for _, ic := range view {
		intervals = append(intervals, strconv.Itoa(ic.Interval))
		data = append(data, opts.LineData{Value: ic.Count})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Attack Trend Over Time (Intervals of %d records)", r.cfg.IntervalSize),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: fmt.Sprintf("Time Interval (Block of %d Records)", r.cfg.IntervalSize)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Attacks"}),
	)
	line.SetXAxis(intervals).AddSeries("attacks", data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: true}))

	return r.render(line, "attack_trend.html")
}

type renderable interface {
	Render(w io.Writer) error
}

func (r *Reporter) render(chart renderable, name string) error {
	dir, err := r.ensureChartDir()
	if err != nil {
		return err
	}

	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer file.Close()

	if err := chart.Render(file); err != nil {
		return fmt.Errorf("could not render %s: %w", path, err)
	}
	fmt.Fprintf(r.out, "Chart written to %s\n", path)

	if r.cfg.OpenCharts {
		if err := browser.OpenFile(path); err != nil {
			fmt.Fprintf(r.out, "Could not open %s in a browser: %v\n", path, err)
		}
	}
	return nil
}

func (r *Reporter) ensureChartDir() (string, error) {
	if r.chartDir != "" {
		return r.chartDir, nil
	}
	if r.cfg.ChartDir != "" {
		if err := os.MkdirAll(r.cfg.ChartDir, 0o755); err != nil {
			return "", fmt.Errorf("could not create chart directory: %w", err)
		}
		r.chartDir = r.cfg.ChartDir
		return r.chartDir, nil
	}

	dir, err := os.MkdirTemp("", "kdd-charts-")
	if err != nil {
		return "", fmt.Errorf("could not create chart directory: %w", err)
	}
	r.chartDir = dir
	return r.chartDir, nil
}
