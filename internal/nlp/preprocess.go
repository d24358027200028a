package nlp

import (
	"regexp"
	"strings"
)

var (
	urlPattern         = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern     = regexp.MustCompile(`<[^>]*>`)
	punctuationPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	digitPattern       = regexp.MustCompile(`[0-9]+`)
)

// TextPreprocessor normalizes comment text before classification:
// lowercasing, stripping URLs/HTML/punctuation/digits and removing
// stop words for the configured language.
type TextPreprocessor struct {
	language  string
	stopWords map[string]struct{}
}

func NewTextPreprocessor(language string) *TextPreprocessor {
	return &TextPreprocessor{
		language:  language,
		stopWords: stopWordsFor(language),
	}
}

func (p *TextPreprocessor) Preprocess(text string) string {
	if text == "" {
		return ""
	}

	cleaned := strings.ToLower(text)
	cleaned = urlPattern.ReplaceAllString(cleaned, "")
	cleaned = htmlTagPattern.ReplaceAllString(cleaned, "")
	cleaned = punctuationPattern.ReplaceAllString(cleaned, "")
	cleaned = digitPattern.ReplaceAllString(cleaned, "")

	tokens := strings.Fields(cleaned)
	kept := tokens[:0]
	for _, token := range tokens {
		if _, stop := p.stopWords[token]; !stop {
			kept = append(kept, token)
		}
	}

	return strings.Join(kept, " ")
}
