// Package signals synthesizes market-activity figures (social media
// mentions, analyst rating splits) deterministically from a ticker and
// its aggregate sentiment. Every function here is pure: no I/O, no
// clock, no shared state.
package signals

import (
	"math"

	"github.com/stocksage/stocksage/pkg/models"
	"github.com/stocksage/stocksage/pkg/stablehash"
)

// TotalAnalysts is the fixed analyst population used for rating splits
const TotalAnalysts = 25

// Mentions estimates social media mention volume for a ticker. The base
// lands in [1000, 5999] from the ticker hash and is scaled by news
// volume: heavier coverage means more chatter.
func Mentions(ticker string, newsCount int) int {
	base := stablehash.Mod(ticker, "", 5000) + 1000

	newsFactor := math.Max(1, float64(newsCount)/2)

	return int(math.Floor(float64(base) * newsFactor))
}

// AnalystRatings converts an aggregate sentiment score in [-1, 1] into
// a buy/hold/sell analyst distribution. Each bucket is floored from its
// own ratio, so the three counts may not sum to TotalAnalysts exactly;
// that rounding artifact is part of the contract.
func AnalystRatings(sentimentScore float64) models.AnalystRatings {
	scaled := math.Floor((sentimentScore + 1) * 50) // 0..100

	buyRatio := scaled / 100
	sellRatio := (100 - scaled) / 100
	holdRatio := 1 - math.Abs(sentimentScore)/2

	return models.AnalystRatings{
		Buy:  int(math.Floor(TotalAnalysts * buyRatio)),
		Hold: int(math.Floor(TotalAnalysts * holdRatio)),
		Sell: int(math.Floor(TotalAnalysts * sellRatio)),
	}
}
