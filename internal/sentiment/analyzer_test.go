package sentiment

import (
	"testing"
)

func TestAnalyzer_Polarity(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		name     string
		text     string
		expected string // positive, negative, or neutral
	}{
		{
			name:     "bullish text",
			text:     "Shares surge after record earnings beat, analysts upgrade on strong growth",
			expected: "positive",
		},
		{
			name:     "bearish text",
			text:     "Stock plunges amid fraud probe, downgrade follows weak guidance and layoffs",
			expected: "negative",
		},
		{
			name:     "neutral text",
			text:     "The company held its annual shareholder meeting on Tuesday",
			expected: "neutral",
		},
		{
			name:     "mixed but positive",
			text:     "Despite concerns, strong momentum and record profit drive the rally",
			expected: "positive",
		},
		{
			name:     "empty text",
			text:     "",
			expected: "neutral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := analyzer.Polarity(tt.text)

			var got string
			if score > 0.05 {
				got = "positive"
			} else if score < -0.05 {
				got = "negative"
			} else {
				got = "neutral"
			}

			if got != tt.expected {
				t.Errorf("Expected %s sentiment, got %s (score: %.3f)",
					tt.expected, got, score)
			}
		})
	}
}

func TestAnalyzer_ScoreRange(t *testing.T) {
	analyzer := NewAnalyzer()

	texts := []string{
		"surge rally beat upgrade strong",
		"crash plunge fraud bankruptcy downgrade",
		"stable sideways unchanged",
	}

	for _, text := range texts {
		score := analyzer.Polarity(text)

		if score < -1.0 || score > 1.0 {
			t.Errorf("Score should be between -1.0 and 1.0, got %.3f for: %s",
				score, text)
		}
	}
}

func TestAnalyzer_Deterministic(t *testing.T) {
	analyzer := NewAnalyzer()

	text := "Analysts Raise Price Target Citing Strong Growth"
	first := analyzer.Polarity(text)
	for i := 0; i < 10; i++ {
		if got := analyzer.Polarity(text); got != first {
			t.Fatalf("Polarity changed between calls: %v vs %v", got, first)
		}
	}
}
