// Package ranking orders extracted records into dense rankings.
package ranking

import (
	"math"
	"sort"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
)

// Build sorts records by descending value, keeping scan order among equal
// values, and assigns positions 1..N. The displayed value is rounded to two
// decimals; the raw cell content is carried unchanged.
func Build(records []models.RawRecord) []models.RankedEntry {
	sorted := make([]models.RawRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	entries := make([]models.RankedEntry, len(sorted))
	for i, rec := range sorted {
		entries[i] = models.RankedEntry{
			Position:           i + 1,
			Name:               rec.Name,
			AchievementPercent: Round2(rec.Value),
			RawValue:           rec.Raw,
		}
	}
	return entries
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Top returns at most n leading entries; n <= 0 returns all of them.
func Top(entries []models.RankedEntry, n int) []models.RankedEntry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
