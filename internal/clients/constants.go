package clients

import "time"

// Retry budget is deliberately small: the whole pipeline runs under a
// 25s deadline, so long backoff ladders would just convert upstream
// flakiness into pipeline timeouts.
const (
	MAX_RETRIES     = 3
	INITIAL_BACKOFF = 500 * time.Millisecond
	MAX_BACKOFF     = 4 * time.Second
	USER_AGENT      = "youtube-emotion-detection/1.0 (+https://github.com/JoeToribioFlores/youtube-emotion-detection)"
)
