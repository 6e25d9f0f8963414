package directory

import "testing"

func TestDirectory_Lookup(t *testing.T) {
	dir := New()

	tests := []struct {
		name         string
		ticker       string
		wantName     string
		wantIndustry string
	}{
		{
			name:         "known ticker",
			ticker:       "AAPL",
			wantName:     "Apple Inc.",
			wantIndustry: "Technology/Consumer Electronics",
		},
		{
			name:         "another known ticker",
			ticker:       "MSFT",
			wantName:     "Microsoft Corporation",
			wantIndustry: "Technology/Software",
		},
		{
			name:         "unknown ticker gets synthesized record",
			ticker:       "ZZZZ",
			wantName:     "ZZZZ Corporation",
			wantIndustry: "Technology",
		},
		{
			name:         "empty ticker is still total",
			ticker:       "",
			wantName:     " Corporation",
			wantIndustry: "Technology",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dir.Lookup(tt.ticker)
			if got.Name != tt.wantName {
				t.Errorf("Lookup(%q).Name = %q, want %q", tt.ticker, got.Name, tt.wantName)
			}
			if got.Industry != tt.wantIndustry {
				t.Errorf("Lookup(%q).Industry = %q, want %q", tt.ticker, got.Industry, tt.wantIndustry)
			}
		})
	}
}

func TestDirectory_LookupStable(t *testing.T) {
	dir := New()

	first := dir.Lookup("QQQQ")
	for i := 0; i < 5; i++ {
		if got := dir.Lookup("QQQQ"); got != first {
			t.Fatalf("Lookup not stable: %+v vs %+v", got, first)
		}
	}
}
