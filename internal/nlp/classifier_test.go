package nlp

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/knights-analytics/hugot/pipelineBackends"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/models"
)

// Pins WithMultiLabel to the option type TextClassificationConfig
// expects, so an upstream signature change surfaces at compile time
// instead of at model load.
var _ = []pipelineBackends.PipelineOption[*pipelines.TextClassificationPipeline]{
	pipelines.WithMultiLabel(),
}

type recordingRunner struct {
	mu     sync.Mutex
	inputs []string
	scores []models.EmotionScore
	err    error
}

func (r *recordingRunner) Run(text string) ([]models.EmotionScore, error) {
	r.mu.Lock()
	r.inputs = append(r.inputs, text)
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.scores, nil
}

func newTestAnalyzer(runner modelRunner, loadErr error) (*EmotionAnalyzer, *int) {
	loadCount := 0
	a := &EmotionAnalyzer{modelID: "test/model", modelDir: "unused"}
	a.loadFn = func() (modelRunner, error) {
		loadCount++
		return runner, loadErr
	}
	return a, &loadCount
}

func TestAnalyzeEmptyInputSkipsModel(t *testing.T) {
	a, loadCount := newTestAnalyzer(&recordingRunner{}, nil)

	for _, input := range []string{"", "   ", "\n\t"} {
		result, err := a.Analyze(input)
		require.NoError(t, err)
		assert.Equal(t, models.EmotionUnknown, result.Emotion)
		assert.Zero(t, result.Confidence)
	}
	assert.Equal(t, 0, *loadCount, "empty input must never trigger the model load")
}

func TestAnalyzeRanksScores(t *testing.T) {
	runner := &recordingRunner{scores: []models.EmotionScore{
		{Emotion: "sadness", Score: 0.1},
		{Emotion: "joy", Score: 0.7},
		{Emotion: "anger", Score: 0.2},
	}}
	a, _ := newTestAnalyzer(runner, nil)

	result, err := a.Analyze("what a great video")
	require.NoError(t, err)

	assert.Equal(t, "joy", result.Emotion)
	assert.Equal(t, 0.7, result.Confidence)
	require.Len(t, result.AllEmotions, 3)
	assert.Equal(t, "joy", result.AllEmotions[0].Emotion)
	assert.Equal(t, "anger", result.AllEmotions[1].Emotion)
	assert.Equal(t, "sadness", result.AllEmotions[2].Emotion)
	assert.Equal(t, result.AllEmotions[0].Score, result.Confidence)
}

func TestAnalyzeTieBreaksOnFirstMax(t *testing.T) {
	runner := &recordingRunner{scores: []models.EmotionScore{
		{Emotion: "joy", Score: 0.5},
		{Emotion: "anger", Score: 0.5},
	}}
	a, _ := newTestAnalyzer(runner, nil)

	result, err := a.Analyze("some text")
	require.NoError(t, err)
	assert.Equal(t, "joy", result.Emotion, "ties resolve to the first max in taxonomy order")
}

func TestAnalyzeTruncatesLongInput(t *testing.T) {
	runner := &recordingRunner{scores: []models.EmotionScore{{Emotion: "joy", Score: 1}}}
	a, _ := newTestAnalyzer(runner, nil)

	long := strings.Repeat("x", MaxInputLength*2)
	first, err := a.Analyze(long)
	require.NoError(t, err)

	second, err := a.Analyze(long[:MaxInputLength])
	require.NoError(t, err)

	require.Len(t, runner.inputs, 2)
	assert.Len(t, runner.inputs[0], MaxInputLength)
	assert.Equal(t, runner.inputs[0], runner.inputs[1], "long input must classify as its truncated prefix")
	assert.Equal(t, first, second)
}

func TestAnalyzeRunnerFailureReturnsSentinel(t *testing.T) {
	runner := &recordingRunner{err: errors.New("tensor shape mismatch")}
	a, _ := newTestAnalyzer(runner, nil)

	result, err := a.Analyze("some text")
	require.NoError(t, err, "per-comment failures must not escalate")
	assert.Equal(t, models.EmotionError, result.Emotion)
	assert.Zero(t, result.Confidence)
	assert.Contains(t, result.Error, "tensor shape mismatch")
}

func TestAnalyzeLoadFailureIsSticky(t *testing.T) {
	a, loadCount := newTestAnalyzer(nil, errors.New("onnx runtime missing"))

	_, err := a.Analyze("first")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "onnx runtime missing")

	_, err = a.Analyze("second")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "onnx runtime missing")
	assert.Equal(t, 1, *loadCount, "a failed load must not be retried")
}

func TestAnalyzeConcurrentFirstUseLoadsOnce(t *testing.T) {
	runner := &recordingRunner{scores: []models.EmotionScore{{Emotion: "joy", Score: 1}}}
	a, loadCount := newTestAnalyzer(runner, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := a.Analyze("concurrent text")
			assert.NoError(t, err)
			assert.Equal(t, "joy", result.Emotion)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, *loadCount, "concurrent first use must load exactly once")
}
