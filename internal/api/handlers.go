package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/analysis"
)

const (
	defaultMaxComments = 50
	formatImage        = "image"
	formatJSON         = "json"
)

type Handler struct {
	pipeline *analysis.Pipeline
}

func NewHandler(pipeline *analysis.Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

// Analyze runs the full pipeline for one video and answers with either
// the rendered PNG (default) or the structured result set (format=json).
func (h *Handler) Analyze(c *gin.Context) {
	videoURL := c.Query("video_url")
	if videoURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video_url query parameter is required"})
		return
	}

	maxComments := defaultMaxComments
	if raw := c.Query("max_comments"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_comments must be a positive integer"})
			return
		}
		maxComments = parsed
	}

	// Anything that is not explicitly "pie" renders a bar chart.
	kind := analysis.ChartBar
	if c.DefaultQuery("chart_type", "bar") == "pie" {
		kind = analysis.ChartPie
	}

	wantJSON := c.DefaultQuery("format", formatImage) == formatJSON

	result, err := h.pipeline.Run(c.Request.Context(), videoURL, maxComments, kind, !wantJSON)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if wantJSON {
		c.JSON(http.StatusOK, result)
		return
	}
	c.File(result.ChartPath)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, analysis.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid YouTube URL"})
	case errors.Is(err, analysis.ErrNoComments):
		c.JSON(http.StatusNotFound, gin.H{"error": "No comments found for this video"})
	case analysis.IsTimeout(err):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Analysis timed out"})
	default:
		slog.Error("[API] Analysis failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "YouTube Emotion Detection API is running",
		"endpoints": gin.H{
			"analyze": "/api/analyze?video_url=<url>&max_comments=<n>&chart_type=<bar|pie>&format=<image|json>",
			"health":  "/api/health",
		},
	})
}
