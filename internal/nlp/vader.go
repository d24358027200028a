package nlp

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/models"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// VaderAnalyzer is a lexicon-based alternative to the transformer
// classifier: no model download, English only, three coarse labels
// (positive/neutral/negative) instead of a full emotion taxonomy.
// Selected with ANALYZER=vader.
type VaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return bareURLPattern.ReplaceAllString(input, "")
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	// blackfriday emits HTML; strip the tags so edge words like
	// "good</p>" still hit the lexicon.
	stripped := htmlTagPattern.ReplaceAllString(string(output), " ")
	plainText := strings.Join(strings.Fields(stripped), " ")

	return RemoveLinks(plainText)
}

func (v *VaderAnalyzer) Analyze(text string) (models.ClassificationResult, error) {
	plainText := ConvertMarkdownToText(text)
	if strings.TrimSpace(plainText) == "" {
		return models.UnknownResult(), nil
	}

	sentiment := v.analyzer.PolarityScores(plainText)

	// The label comes from the compound score; the per-label
	// proportions only rank the breakdown. Ranking proportions would
	// call nearly everything neutral, since the neutral share
	// dominates most sentences.
	label := "neutral"
	if sentiment.Compound >= 0.20 {
		label = "positive"
	} else if sentiment.Compound <= -0.20 {
		label = "negative"
	}

	proportions := map[string]float64{
		"positive": sentiment.Positive,
		"neutral":  sentiment.Neutral,
		"negative": sentiment.Negative,
	}
	ranked := []models.EmotionScore{
		{Emotion: "positive", Score: sentiment.Positive},
		{Emotion: "neutral", Score: sentiment.Neutral},
		{Emotion: "negative", Score: sentiment.Negative},
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return models.ClassificationResult{
		Emotion:     label,
		Confidence:  proportions[label],
		AllEmotions: ranked,
	}, nil
}
