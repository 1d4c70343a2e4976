// Package stats contains statistics calculations and reporting.
package stats

import (
	"sort"

	"github.com/verte-zerg/wordstat/internal/model"
)

// TopLetters returns the top N letters by frequency.
func TopLetters(d model.Dictionary, n int) []model.LetterCount {
	if n <= 0 || len(d.Letters) == 0 {
		return nil
	}
	items := d.PresentLetters()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Letter < items[j].Letter
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// TopWords returns the top N words by frequency.
func TopWords(d model.Dictionary, n int) []model.WordCount {
	if n <= 0 || len(d.Frequencies) == 0 {
		return nil
	}
	items := make([]model.WordCount, len(d.Frequencies))
	copy(items, d.Frequencies)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Word < items[j].Word
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
