package models

const (
	// EmotionUnknown is returned for empty or non-text input without
	// invoking the model.
	EmotionUnknown = "unknown"
	// EmotionError is returned when classification of a single comment
	// fails; the failure never aborts the batch.
	EmotionError = "error"
)

type EmotionScore struct {
	Emotion string  `json:"emotion"`
	Score   float64 `json:"score"`
}

// ClassificationResult holds the ranked output of one classifier run.
// Confidence always equals the score of the first AllEmotions entry.
type ClassificationResult struct {
	Emotion     string         `json:"emotion"`
	Confidence  float64        `json:"confidence"`
	AllEmotions []EmotionScore `json:"all_emotions"`
	Error       string         `json:"error,omitempty"`
}

// UnknownResult is the sentinel for input that never reached the model.
func UnknownResult() ClassificationResult {
	return ClassificationResult{Emotion: EmotionUnknown, Confidence: 0, AllEmotions: []EmotionScore{}}
}

// ErrorResult is the sentinel for a per-comment classification failure.
func ErrorResult(cause error) ClassificationResult {
	return ClassificationResult{Emotion: EmotionError, Confidence: 0, AllEmotions: []EmotionScore{}, Error: cause.Error()}
}

// AnnotatedComment is one row of the working result set: the retrieved
// comment joined with its preprocessed text and classification.
type AnnotatedComment struct {
	Comment
	ProcessedText string  `json:"processed_comment"`
	Emotion       string  `json:"emotion"`
	Confidence    float64 `json:"confidence"`
}
