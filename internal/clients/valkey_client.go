package clients

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/JoeToribioFlores/youtube-emotion-detection/internal/models"
)

const (
	VALKEY_METADATA_PREFIX = "youtube:video_metadata:"
	VALKEY_METADATA_TTL    = 86400
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

// ValkeyClient caches video metadata lookups so repeated analyses of the
// same video do not spend YouTube API quota. The cache is optional: a nil
// *ValkeyClient is safe to use and caches nothing.
type ValkeyClient struct {
	client valkey.Client
}

func InitValkey(address, password string, useTLS bool) *ValkeyClient {
	if address == "" {
		return nil
	}

	valkeyOnce.Do(func() {
		opts := valkey.ClientOption{
			InitAddress:      []string{address},
			Password:         password,
			ConnWriteTimeout: 5 * time.Second,
			SelectDB:         0,
		}
		if useTLS {
			opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
		}

		client, err := valkey.NewClient(opts)
		if err != nil {
			slog.Error("[ValkeyClient] Failed to create client, metadata caching disabled",
				slog.String("error", err.Error()))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			slog.Error("[ValkeyClient] Failed to ping valkey, metadata caching disabled",
				slog.String("error", err.Error()))
			client.Close()
			return
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")
		valkeyInstance = &ValkeyClient{client: client}
	})
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.client.Close()
	}
}

func (vc *ValkeyClient) GetCachedMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, bool) {
	if vc == nil {
		return nil, false
	}

	res := vc.doWithRetry(ctx, vc.client.B().Get().Key(VALKEY_METADATA_PREFIX+videoID).Build())
	raw, err := res.AsBytes()
	if err != nil {
		return nil, false
	}

	var metadata models.VideoMetadata
	if err := json.Unmarshal(raw, &metadata); err != nil {
		slog.Warn("[ValkeyClient] Discarding unparseable cached metadata",
			slog.String("video_id", videoID))
		return nil, false
	}
	return &metadata, true
}

func (vc *ValkeyClient) CacheMetadata(ctx context.Context, videoID string, metadata *models.VideoMetadata) {
	if vc == nil || metadata == nil {
		return
	}

	raw, err := json.Marshal(metadata)
	if err != nil {
		return
	}

	res := vc.doWithRetry(ctx, vc.client.B().Set().
		Key(VALKEY_METADATA_PREFIX+videoID).
		Value(string(raw)).
		ExSeconds(VALKEY_METADATA_TTL).
		Build())
	if err := res.Error(); err != nil {
		slog.Warn("[ValkeyClient] Failed to cache metadata",
			slog.String("video_id", videoID),
			slog.String("error", err.Error()))
		return
	}

	slog.Debug("[ValkeyClient] Cached video metadata",
		slog.String("video_id", videoID))
}

func (vc *ValkeyClient) doWithRetry(ctx context.Context, completed valkey.Completed) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < MAX_RETRIES; i++ {
		result = vc.client.Do(ctx, completed)
		if result.Error() == nil || valkey.IsValkeyNil(result.Error()) {
			break
		}

		slog.Warn("[ValkeyClient] Command failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))
		time.Sleep(250 * time.Millisecond)
	}
	return result
}
