package sentiment

import (
	"strings"
)

// Analyzer performs lexicon-based polarity estimation over news text
type Analyzer struct {
	positiveWords map[string]float64
	negativeWords map[string]float64
}

// NewAnalyzer creates new sentiment analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		positiveWords: buildPositiveWords(),
		negativeWords: buildNegativeWords(),
	}
}

// Polarity analyzes text and returns a score in [-1.0, 1.0]
func (a *Analyzer) Polarity(text string) float64 {
	if text == "" {
		return 0.0
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0.0
	}

	var score float64
	matchCount := 0

	for _, word := range words {
		// Clean punctuation
		word = strings.Trim(word, ".,!?;:()'\"")

		if weight, ok := a.positiveWords[word]; ok {
			score += weight
			matchCount++
		}

		if weight, ok := a.negativeWords[word]; ok {
			score -= weight
			matchCount++
		}
	}

	if matchCount == 0 {
		return 0.0
	}

	// Normalize by text length
	normalizedScore := score / float64(len(words))

	if normalizedScore > 1.0 {
		normalizedScore = 1.0
	} else if normalizedScore < -1.0 {
		normalizedScore = -1.0
	}

	return normalizedScore
}

// buildPositiveWords returns positive keywords for equities news
func buildPositiveWords() map[string]float64 {
	return map[string]float64{
		"bullish":      1.0,
		"surge":        0.8,
		"soar":         0.8,
		"rally":        0.8,
		"outperform":   0.7,
		"beat":         0.7,
		"beats":        0.7,
		"record":       0.6,
		"upgrade":      0.6,
		"upgraded":     0.6,
		"strong":       0.6,
		"breakthrough": 0.6,
		"promising":    0.6,
		"favorable":    0.6,
		"gain":         0.6,
		"gains":        0.6,
		"profit":       0.6,
		"growth":       0.5,
		"grow":         0.5,
		"growing":      0.5,
		"rise":         0.5,
		"rises":        0.5,
		"raise":        0.5,
		"positive":     0.5,
		"optimistic":   0.5,
		"innovation":   0.5,
		"expands":      0.5,
		"expansion":    0.5,
		"partnership":  0.5,
		"dividend":     0.4,
		"buyback":      0.5,
		"high":         0.3,
		"up":           0.3,
		"praise":       0.5,
		"recognition":  0.4,
		"satisfaction": 0.5,
		"momentum":     0.4,
		"above":        0.3,
	}
}

// buildNegativeWords returns negative keywords for equities news
func buildNegativeWords() map[string]float64 {
	return map[string]float64{
		"bearish":      1.0,
		"crash":        1.0,
		"fraud":        1.0,
		"bankruptcy":   1.0,
		"plunge":       0.8,
		"plunges":      0.8,
		"tumble":       0.8,
		"slump":        0.7,
		"selloff":      0.7,
		"miss":         0.7,
		"misses":       0.7,
		"downgrade":    0.7,
		"downgraded":   0.7,
		"lawsuit":      0.7,
		"probe":        0.6,
		"investigation": 0.6,
		"recall":       0.6,
		"layoffs":      0.7,
		"loss":         0.6,
		"losses":       0.6,
		"decline":      0.6,
		"declines":     0.6,
		"weak":         0.6,
		"fall":         0.5,
		"falls":        0.5,
		"drop":         0.5,
		"drops":        0.5,
		"cut":          0.5,
		"cuts":         0.5,
		"warning":      0.5,
		"fears":        0.5,
		"concern":      0.4,
		"concerns":     0.4,
		"negative":     0.5,
		"pessimistic":  0.5,
		"down":         0.3,
		"below":        0.3,
		"overvalued":   0.6,
		"short":        0.3,
	}
}
