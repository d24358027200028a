package nlp

// Stop-word lists for the two supported analysis languages. These cover
// the high-frequency function words that dominate YouTube comments; the
// classifier itself is robust to the long tail.

var englishStopWords = []string{
	"a", "about", "after", "all", "also", "an", "and", "any", "are", "as",
	"at", "be", "because", "been", "but", "by", "can", "could", "did", "do",
	"does", "for", "from", "had", "has", "have", "he", "her", "him", "his",
	"how", "i", "if", "in", "into", "is", "it", "its", "just", "me", "more",
	"most", "my", "no", "not", "of", "on", "only", "or", "other", "our",
	"out", "over", "she", "so", "some", "such", "than", "that", "the",
	"their", "them", "then", "there", "these", "they", "this", "to", "too",
	"up", "us", "was", "we", "were", "what", "when", "which", "who", "will",
	"with", "would", "you", "your",
}

var spanishStopWords = []string{
	"a", "al", "algo", "como", "con", "cuando", "de", "del", "desde",
	"donde", "el", "ella", "ellas", "ellos", "en", "entre", "era", "eres",
	"es", "esa", "ese", "eso", "esta", "este", "esto", "fue", "ha", "han",
	"hasta", "hay", "la", "las", "le", "les", "lo", "los", "mas", "me",
	"mi", "mis", "mucho", "muy", "nada", "ni", "no", "nos", "nosotros",
	"o", "otra", "otro", "para", "pero", "por", "porque", "que", "se",
	"ser", "si", "sin", "sobre", "son", "soy", "su", "sus", "también",
	"te", "tiene", "tienen", "todo", "tu", "tus", "un", "una", "uno",
	"unos", "y", "ya", "yo",
}

func stopWordsFor(language string) map[string]struct{} {
	var words []string
	switch language {
	case "spanish":
		words = spanishStopWords
	default:
		words = englishStopWords
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
