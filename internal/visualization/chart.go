package visualization

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/analysis"
	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/models"
)

const defaultTitle = "Emotion Distribution in Comments"

// ChartRenderer turns an emotion frequency table into a PNG artifact in
// the output directory. Bar charts sort descending by count; pie charts
// label each slice with its percentage share.
type ChartRenderer struct {
	outputDir string
}

func NewChartRenderer(outputDir string) (*ChartRenderer, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &ChartRenderer{outputDir: outputDir}, nil
}

func (r *ChartRenderer) Render(kind analysis.ChartKind, table *models.EmotionFrequencyTable, title string) (string, error) {
	if table == nil || table.Len() == 0 {
		return "", errors.New("no emotion counts to render")
	}
	if title == "" {
		title = defaultTitle
	}

	if kind == analysis.ChartPie {
		return r.renderPie(table, title)
	}
	return r.renderBar(table, title)
}

func (r *ChartRenderer) renderBar(table *models.EmotionFrequencyTable, title string) (string, error) {
	bars := make([]chart.Value, 0, table.Len())
	for _, entry := range table.SortedEntries() {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s (%d)", entry.Emotion, entry.Count),
			Value: float64(entry.Count),
		})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1024,
		Height:   640,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		Bars: bars,
	}

	return r.save(&graph, "emotion_distribution")
}

func (r *ChartRenderer) renderPie(table *models.EmotionFrequencyTable, title string) (string, error) {
	graph := chart.PieChart{
		Title:  title,
		Width:  800,
		Height: 800,
		Values: pieSlices(table),
	}

	return r.save(&graph, "emotion_pie")
}

// pieSlices normalizes counts to percentage-labelled slices. Percentages
// always sum to 100 across the table's labels.
func pieSlices(table *models.EmotionFrequencyTable) []chart.Value {
	total := float64(table.Total())
	slices := make([]chart.Value, 0, table.Len())
	for _, entry := range table.Entries() {
		percent := float64(entry.Count) / total * 100
		slices = append(slices, chart.Value{
			Label: fmt.Sprintf("%s (%.1f%%)", entry.Emotion, percent),
			Value: float64(entry.Count),
		})
	}
	return slices
}

type renderable interface {
	Render(provider chart.RendererProvider, w io.Writer) error
}

func (r *ChartRenderer) save(graph renderable, prefix string) (string, error) {
	filename := fmt.Sprintf("%s_%s.png", prefix, time.Now().Format("20060102_150405"))
	path := filepath.Join(r.outputDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to render chart: %w", err)
	}

	slog.Info("[ChartRenderer] Chart saved", slog.String("path", path))
	return path, nil
}
