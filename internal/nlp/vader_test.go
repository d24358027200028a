package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/models"
)

func TestVaderAnalyzeLabels(t *testing.T) {
	v := NewVaderAnalyzer()

	result, err := v.Analyze("I absolutely love this, it is wonderful and amazing!")
	require.NoError(t, err)
	assert.Equal(t, "positive", result.Emotion)
	for _, score := range result.AllEmotions {
		if score.Emotion == "positive" {
			assert.Equal(t, score.Score, result.Confidence)
		}
	}

	result, err = v.Analyze("This is horrible, I hate it so much, terrible awful garbage")
	require.NoError(t, err)
	assert.Equal(t, "negative", result.Emotion)
}

// Mildly positive sentences have a dominant neutral proportion but a
// clearly positive compound score. The compound score decides the label.
func TestVaderAnalyzeCompoundDecidesLabel(t *testing.T) {
	v := NewVaderAnalyzer()

	result, err := v.Analyze("This video is good")
	require.NoError(t, err)
	assert.Equal(t, "positive", result.Emotion)

	result, err = v.Analyze("This video is bad")
	require.NoError(t, err)
	assert.Equal(t, "negative", result.Emotion)
}

func TestVaderAnalyzeEmptyInput(t *testing.T) {
	v := NewVaderAnalyzer()

	result, err := v.Analyze("")
	require.NoError(t, err)
	assert.Equal(t, models.EmotionUnknown, result.Emotion)
	assert.Zero(t, result.Confidence)
}

func TestVaderAnalyzeRankedDescending(t *testing.T) {
	v := NewVaderAnalyzer()

	result, err := v.Analyze("a fine day")
	require.NoError(t, err)
	require.Len(t, result.AllEmotions, 3)
	for i := 1; i < len(result.AllEmotions); i++ {
		assert.GreaterOrEqual(t, result.AllEmotions[i-1].Score, result.AllEmotions[i].Score)
	}
}

func TestConvertMarkdownToTextStripsHTML(t *testing.T) {
	assert.Equal(t, "This video is good", ConvertMarkdownToText("This video is **good**"))
	assert.Equal(t, "heading and text", ConvertMarkdownToText("# heading\n\nand text"))
	assert.NotContains(t, ConvertMarkdownToText("plain sentence"), "<")
}

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "check this out", RemoveLinks("check this [out](https://example.com/page)"))
	assert.Equal(t, "go  now", RemoveLinks("go https://example.com now"))
}
