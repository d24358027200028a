package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/clients"
	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/models"
	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/nlp"
)

type ChartKind string

const (
	ChartBar ChartKind = "bar"
	ChartPie ChartKind = "pie"
)

// CommentSource retrieves a video's comments and metadata. Satisfied by
// *clients.YouTubeClient; tests substitute fakes.
type CommentSource interface {
	FetchComments(ctx context.Context, videoID string, limit int) clients.CommentFetchResult
	FetchVideoMetadata(ctx context.Context, videoID string) *models.VideoMetadata
}

type Preprocessor interface {
	Preprocess(text string) string
}

type Renderer interface {
	Render(kind ChartKind, table *models.EmotionFrequencyTable, title string) (string, error)
}

// MetadataCache is the optional metadata cache boundary, satisfied by
// *clients.ValkeyClient (a nil one caches nothing).
type MetadataCache interface {
	GetCachedMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, bool)
	CacheMetadata(ctx context.Context, videoID string, metadata *models.VideoMetadata)
}

// Pipeline drives one analysis run: resolve the reference, page through
// comments, preprocess and classify each one, aggregate label counts and
// hand them to the renderer. All state is per-run; the only thing shared
// across runs is the analyzer's lazily loaded model.
type Pipeline struct {
	source       CommentSource
	cache        MetadataCache
	preprocessor Preprocessor
	analyzer     nlp.Analyzer
	renderer     Renderer
	maxComments  int
	timeout      time.Duration
}

func NewPipeline(source CommentSource, cache MetadataCache, preprocessor Preprocessor, analyzer nlp.Analyzer, renderer Renderer, maxComments int, timeout time.Duration) *Pipeline {
	return &Pipeline{
		source:       source,
		cache:        cache,
		preprocessor: preprocessor,
		analyzer:     analyzer,
		renderer:     renderer,
		maxComments:  maxComments,
		timeout:      timeout,
	}
}

// Result is the outcome of one completed run. ChartPath is empty when
// the caller asked for structured results only.
type Result struct {
	VideoID   string                    `json:"video_id"`
	Title     string                    `json:"title"`
	Comments  []models.AnnotatedComment `json:"comments"`
	Frequency []models.EmotionCount     `json:"emotion_counts"`
	Metadata  *models.VideoMetadata     `json:"video,omitempty"`
	ChartPath string                    `json:"-"`
}

// Run executes the whole pipeline under the configured deadline.
// Comments keep their retrieval order; a timeout discards all partial
// work and surfaces as context.DeadlineExceeded.
func (p *Pipeline) Run(ctx context.Context, videoRef string, maxComments int, kind ChartKind, renderChart bool) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	videoID, err := ExtractVideoID(videoRef)
	if err != nil {
		return nil, err
	}

	limit := maxComments
	if limit <= 0 || limit > p.maxComments {
		limit = p.maxComments
	}

	start := time.Now()
	fetched := p.source.FetchComments(ctx, videoID, limit)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if len(fetched.Comments) == 0 {
		if fetched.Reason != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpstream, fetched.Reason)
		}
		return nil, ErrNoComments
	}

	rows := make([]models.AnnotatedComment, 0, len(fetched.Comments))
	table := models.NewEmotionFrequencyTable()
	for _, comment := range fetched.Comments {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		processed := p.preprocessor.Preprocess(comment.Text)
		classification, err := p.analyzer.Analyze(processed)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrModelLoad, err)
		}

		rows = append(rows, models.AnnotatedComment{
			Comment:       comment,
			ProcessedText: processed,
			Emotion:       classification.Emotion,
			Confidence:    classification.Confidence,
		})
		table.Add(classification.Emotion)
	}

	metadata := p.lookupMetadata(ctx, videoID)
	title := chartTitle(metadata, videoID)

	result := &Result{
		VideoID:   videoID,
		Title:     title,
		Comments:  rows,
		Frequency: table.Entries(),
		Metadata:  metadata,
	}

	if renderChart {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		chartPath, err := p.renderer.Render(kind, table, title)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRender, err)
		}
		result.ChartPath = chartPath
	}

	slog.Info("[Pipeline] Analysis complete",
		slog.String("video_id", videoID),
		slog.Int("comments", len(rows)),
		slog.Int("emotions", table.Len()),
		slog.Duration("elapsed", time.Since(start)))
	return result, nil
}

// lookupMetadata is best-effort: a nil result only degrades the title.
func (p *Pipeline) lookupMetadata(ctx context.Context, videoID string) *models.VideoMetadata {
	if p.cache != nil {
		if metadata, ok := p.cache.GetCachedMetadata(ctx, videoID); ok {
			return metadata
		}
	}

	metadata := p.source.FetchVideoMetadata(ctx, videoID)
	if metadata != nil && p.cache != nil {
		p.cache.CacheMetadata(ctx, videoID, metadata)
	}
	return metadata
}

func chartTitle(metadata *models.VideoMetadata, videoID string) string {
	if metadata != nil && metadata.Title != "" {
		return "Emotions in comments for: " + metadata.Title
	}
	return "Emotions in comments for: " + videoID
}

// IsTimeout reports whether the run ended because the pipeline deadline
// was exceeded.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
