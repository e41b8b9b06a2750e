package wavetable

import (
	"math"

	"github.com/cwbudde/algo-osc/core"
)

// BandForFreq maps a fundamental frequency in Hz to a table band using the
// semitone-based logarithmic banding scheme. The result is clamped to
// [1, BandCount-1]; non-positive frequencies map to the lowest band.
func BandForFreq(freq float64) int {
	if freq <= 0 {
		return 1
	}

	band := (69 + int(math.Ceil(12*log2(freq/440)))) / SemitonesPerBand

	return core.ClampInt(band, 1, BandCount-1)
}

// FreqForBand returns the representative frequency of a band: the highest
// fundamental the band's tables are alias-free for.
func FreqForBand(band int) float64 {
	return 440 * math.Pow(2, (float64(band*SemitonesPerBand)-69)/12)
}
