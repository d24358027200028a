package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/models"
)

const (
	YOUTUBE_API_URL   = "https://www.googleapis.com/youtube/v3"
	YOUTUBE_PAGE_SIZE = 100
)

// ErrQuotaExceeded marks the daily YouTube Data API quota running out.
// Pagination treats it like any other upstream failure (partial return)
// but logs it distinctly so operators can tell it apart from outages.
var ErrQuotaExceeded = errors.New("youtube api quota exceeded")

// ErrUpstreamUnavailable covers transient upstream failures.
var ErrUpstreamUnavailable = errors.New("youtube api unavailable")

type YouTubeClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
	limiter *rate.Limiter
}

type YouTubeOption func(*YouTubeClient)

// WithBaseURL points the client at a different API host. Used by tests.
func WithBaseURL(baseURL string) YouTubeOption {
	return func(c *YouTubeClient) { c.baseURL = baseURL }
}

func WithHTTPClient(client *http.Client) YouTubeOption {
	return func(c *YouTubeClient) { c.client = client }
}

func NewYouTubeClient(apiKey string, rps float64, opts ...YouTubeOption) *YouTubeClient {
	c := &YouTubeClient{
		client:  &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: YOUTUBE_API_URL,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CommentFetchResult carries whatever pagination accumulated plus the
// reason it stopped early, if it did. An upstream failure never throws
// away comments already fetched.
type CommentFetchResult struct {
	Comments []models.Comment
	Reason   error
}

// FetchComments pages through a video's top-level comment threads until
// the limit is reached or the upstream stream ends. Each page requests
// min(100, remaining) items and the cap is enforced mid-page.
func (c *YouTubeClient) FetchComments(ctx context.Context, videoID string, limit int) CommentFetchResult {
	var comments []models.Comment
	seen := make(map[string]bool)
	pageToken := ""

	for len(comments) < limit {
		remaining := limit - len(comments)
		pageSize := remaining
		if pageSize > YOUTUBE_PAGE_SIZE {
			pageSize = YOUTUBE_PAGE_SIZE
		}

		page, err := c.fetchCommentPage(ctx, videoID, pageSize, pageToken)
		if err != nil {
			if errors.Is(err, ErrQuotaExceeded) {
				slog.Error("[YouTubeClient] API quota exceeded, returning partial results",
					slog.String("video_id", videoID),
					slog.Int("fetched", len(comments)))
			} else {
				slog.Warn("[YouTubeClient] Comment fetch failed, returning partial results",
					slog.String("video_id", videoID),
					slog.Int("fetched", len(comments)),
					slog.String("error", err.Error()))
			}
			return CommentFetchResult{Comments: comments, Reason: err}
		}

		for _, item := range page.Items {
			if len(comments) >= limit {
				break
			}
			comment, ok := parseCommentItem(item)
			if !ok {
				slog.Debug("[YouTubeClient] Skipping malformed comment item",
					slog.String("item_id", item.ID))
				continue
			}
			if comment.ID != "" && seen[comment.ID] {
				continue
			}
			seen[comment.ID] = true
			comments = append(comments, comment)
		}

		if page.NextPageToken == "" || len(comments) >= limit {
			break
		}
		pageToken = page.NextPageToken
	}

	slog.Info("[YouTubeClient] Extracted comments",
		slog.String("video_id", videoID),
		slog.Int("count", len(comments)))
	return CommentFetchResult{Comments: comments}
}

// parseCommentItem resolves the nested snippet path defensively: an item
// missing any required piece is skipped, never fatal to the page.
func parseCommentItem(item models.CommentThreadItem) (models.Comment, bool) {
	top := item.Snippet.TopLevelComment
	if top == nil || top.Snippet == nil {
		return models.Comment{}, false
	}
	snippet := top.Snippet
	if snippet.AuthorDisplayName == "" && snippet.TextDisplay == "" {
		return models.Comment{}, false
	}
	return models.Comment{
		ID:          item.ID,
		Author:      snippet.AuthorDisplayName,
		Text:        snippet.TextDisplay,
		PublishedAt: snippet.PublishedAt,
		Likes:       snippet.LikeCount,
	}, true
}

func (c *YouTubeClient) fetchCommentPage(ctx context.Context, videoID string, pageSize int, pageToken string) (*models.CommentThreadsResponse, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", videoID)
	params.Set("maxResults", strconv.Itoa(pageSize))
	params.Set("textFormat", "plainText")
	params.Set("key", c.apiKey)
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var page models.CommentThreadsResponse
	if err := c.getJSON(ctx, c.baseURL+"/commentThreads?"+params.Encode(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FetchVideoMetadata is a single videos.list call. It returns nil when
// the upstream has no matching item or anything fails: metadata only
// decorates the chart title and must never abort the pipeline.
func (c *YouTubeClient) FetchVideoMetadata(ctx context.Context, videoID string) *models.VideoMetadata {
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", videoID)
	params.Set("key", c.apiKey)

	var response models.VideoListResponse
	if err := c.getJSON(ctx, c.baseURL+"/videos?"+params.Encode(), &response); err != nil {
		slog.Warn("[YouTubeClient] Video metadata lookup failed",
			slog.String("video_id", videoID),
			slog.String("error", err.Error()))
		return nil
	}
	if len(response.Items) == 0 {
		slog.Warn("[YouTubeClient] No video found for metadata lookup",
			slog.String("video_id", videoID))
		return nil
	}

	item := response.Items[0]
	return &models.VideoMetadata{
		Title:        item.Snippet.Title,
		Channel:      item.Snippet.ChannelTitle,
		PublishedAt:  item.Snippet.PublishedAt,
		ViewCount:    item.Statistics.ViewCount,
		LikeCount:    item.Statistics.LikeCount,
		CommentCount: item.Statistics.CommentCount,
	}
}

func (c *YouTubeClient) getJSON(ctx context.Context, requestURL string, out any) error {
	backoff := INITIAL_BACKOFF

	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", USER_AGENT)

		res, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("[YouTubeClient] Request failed",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			if attempt < MAX_RETRIES {
				time.Sleep(backoff)
				backoff = nextBackoff(backoff)
			}
			continue
		}

		body, readErr := io.ReadAll(res.Body)
		res.Body.Close()
		if readErr != nil {
			return readErr
		}

		switch {
		case res.StatusCode == http.StatusOK:
			if err := json.Unmarshal(body, out); err != nil {
				return fmt.Errorf("failed to parse JSON response: %w", err)
			}
			return nil
		case res.StatusCode == http.StatusForbidden:
			if reason := errorReason(body); reason == "quotaExceeded" || reason == "dailyLimitExceeded" {
				return ErrQuotaExceeded
			}
			return fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, res.StatusCode)
		case res.StatusCode >= http.StatusInternalServerError:
			slog.Warn("[YouTubeClient] Server error, retrying",
				slog.Int("statusCode", res.StatusCode),
				slog.Duration("backoff", backoff),
				slog.Int("attempt", attempt))
			// No point sleeping after the last attempt.
			if attempt < MAX_RETRIES {
				time.Sleep(backoff)
				backoff = nextBackoff(backoff)
			}
		default:
			return fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, res.StatusCode)
		}
	}

	return fmt.Errorf("%w: failed after %d retries", ErrUpstreamUnavailable, MAX_RETRIES)
}

func nextBackoff(backoff time.Duration) time.Duration {
	backoff *= 2
	if backoff > MAX_BACKOFF {
		backoff = MAX_BACKOFF
	}
	return backoff
}

func errorReason(body []byte) string {
	var response models.YouTubeErrorResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return ""
	}
	if len(response.Error.Errors) == 0 {
		return ""
	}
	return response.Error.Errors[0].Reason
}
