package nlp

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelineBackends"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/models"
)

// MaxInputLength is the model's input ceiling. Longer text is silently
// truncated, matching what the tokenizer would do anyway.
const MaxInputLength = 512

// Analyzer classifies one comment's text. A non-nil error means the
// analyzer itself is unusable (model load failed) and the whole batch
// must stop; per-comment failures come back as sentinel results instead.
type Analyzer interface {
	Analyze(text string) (models.ClassificationResult, error)
}

// modelRunner is the loaded classification pipeline. Tests inject fakes.
type modelRunner interface {
	Run(text string) ([]models.EmotionScore, error)
}

// EmotionAnalyzer wraps a pretrained multi-label emotion model. The
// model is loaded lazily on first use: requests that fail before
// classification (bad URL, no comments) never pay the load cost. A load
// failure is sticky and re-surfaces on every subsequent call.
type EmotionAnalyzer struct {
	modelID  string
	modelDir string

	mu      sync.Mutex
	loaded  bool
	runner  modelRunner
	loadErr error
	loadFn  func() (modelRunner, error)
}

func NewEmotionAnalyzer(modelID, modelDir string) *EmotionAnalyzer {
	a := &EmotionAnalyzer{modelID: modelID, modelDir: modelDir}
	a.loadFn = a.loadHugotPipeline
	return a
}

func (a *EmotionAnalyzer) Analyze(text string) (models.ClassificationResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.UnknownResult(), nil
	}

	if runes := []rune(text); len(runes) > MaxInputLength {
		text = string(runes[:MaxInputLength])
	}

	runner, err := a.ensureLoaded()
	if err != nil {
		return models.ClassificationResult{}, fmt.Errorf("emotion model unavailable: %w", err)
	}

	scores, err := runner.Run(text)
	if err != nil {
		slog.Error("[EmotionAnalyzer] Error analyzing emotions",
			slog.String("error", err.Error()))
		return models.ErrorResult(err), nil
	}
	if len(scores) == 0 {
		return models.ErrorResult(errors.New("classifier returned no scores")), nil
	}

	// Stable sort keeps the model's taxonomy order on ties, so the
	// primary emotion tie-break is deterministic (first max wins).
	ranked := make([]models.EmotionScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return models.ClassificationResult{
		Emotion:     ranked[0].Emotion,
		Confidence:  ranked[0].Score,
		AllEmotions: ranked,
	}, nil
}

// ensureLoaded performs the one-time model load. The mutex makes
// concurrent first-use safe: one caller loads, the rest wait on the
// lock and observe the outcome.
func (a *EmotionAnalyzer) ensureLoaded() (modelRunner, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.loaded {
		a.runner, a.loadErr = a.loadFn()
		a.loaded = true
	}
	return a.runner, a.loadErr
}

func (a *EmotionAnalyzer) loadHugotPipeline() (modelRunner, error) {
	if err := os.MkdirAll(a.modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath := filepath.Join(a.modelDir, strings.ReplaceAll(a.modelID, "/", "_"))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[EmotionAnalyzer] Model not found, downloading...",
			slog.String("model", a.modelID))
		downloaded, err := hugot.DownloadModel(a.modelID, a.modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to download model %s: %w", a.modelID, err)
		}
		modelPath = downloaded
		slog.Info("[EmotionAnalyzer] Model downloaded successfully",
			slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "emotionClassificationPipeline",
		Options: []pipelineBackends.PipelineOption[*pipelines.TextClassificationPipeline]{
			pipelines.WithMultiLabel(),
		},
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize classification pipeline: %w", err)
	}

	slog.Info("[EmotionAnalyzer] Model loaded successfully",
		slog.String("model", a.modelID))
	return &hugotRunner{session: session, pipeline: pipeline}, nil
}

// hugotRunner holds the ORT session for the process lifetime; it is
// never destroyed except at exit.
type hugotRunner struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func (r *hugotRunner) Run(text string) ([]models.EmotionScore, error) {
	output, err := r.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, err
	}
	if len(output.ClassificationOutputs) == 0 {
		return nil, errors.New("empty classification output")
	}

	raw := output.ClassificationOutputs[0]
	scores := make([]models.EmotionScore, 0, len(raw))
	for _, out := range raw {
		scores = append(scores, models.EmotionScore{
			Emotion: out.Label,
			Score:   float64(out.Score),
		})
	}
	return scores, nil
}
