package analysis

import "regexp"

// Recognized video reference forms: watch URLs, short youtu.be links,
// embed URLs and shorts URLs, with or without scheme and www. The ID is
// everything up to the next '&', '?' or '/'. First matching pattern wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^&?/]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([^&?/]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([^&?/]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/([^&?/]+)`),
}

// ExtractVideoID resolves a video URL to its stable identifier.
func ExtractVideoID(videoURL string) (string, error) {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(videoURL); match != nil {
			return match[1], nil
		}
	}
	return "", ErrInvalidReference
}
