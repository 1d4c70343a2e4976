// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/wordstat/internal/model"
)

const (
	// MaxBarStars caps the letter chart bars; larger counts are appended in parentheses.
	MaxBarStars = 10
	// WordColumnWidth is the left-aligned word column of the frequency list.
	WordColumnWidth = 10
	// HistogramPadding is added to the longest word to size the histogram rule.
	HistogramPadding = 10
)

const vocabularyPrefix = "Words in dictionary – "

var (
	letterHeader = []string{
		`/--------------\`,
		`|  Letter Freq |`,
		`\--------------/`,
	}
	dictionaryHeader = []string{
		`/------------\`,
		`| Dictionary |`,
		`\------------/`,
		"Word  Frequency",
		"-------------------------",
	}
	histogramHeader = []string{
		`/------------\`,
		`| Histogram  |`,
		`\------------/`,
	}
)

// RenderReport writes the vocabulary, counters, letter chart, word list and histogram.
func RenderReport(w io.Writer, d model.Dictionary) error {
	renderers := []func(io.Writer, model.Dictionary) error{
		RenderVocabulary,
		RenderCounters,
		RenderLetterChart,
		RenderWordFrequency,
		RenderHistogram,
	}
	for _, render := range renderers {
		if err := render(w, d); err != nil {
			return err
		}
	}
	return nil
}

// RenderVocabulary prints every distinct word on one line, each followed by a comma.
func RenderVocabulary(w io.Writer, d model.Dictionary) error {
	var b strings.Builder
	b.WriteString(vocabularyPrefix)
	for _, word := range d.Vocabulary {
		b.WriteString(word)
		b.WriteByte(',')
	}
	_, err := fmt.Fprintln(w, b.String())
	return err
}

// RenderCounters prints the character, word and line totals.
func RenderCounters(w io.Writer, d model.Dictionary) error {
	return writeLines(w, []string{
		fmt.Sprintf("Number of Letters   : %d", d.Counters.Chars),
		fmt.Sprintf("Number of Words     : %d", d.Counters.Words),
		fmt.Sprintf("Number of Lines     : %d", d.Counters.Lines),
	})
}

// RenderLetterChart prints one capped bar per letter present in the text.
func RenderLetterChart(w io.Writer, d model.Dictionary) error {
	lines := append([]string(nil), letterHeader...)
	for _, lc := range d.PresentLetters() {
		lines = append(lines, fmt.Sprintf("%c |%s", lc.Letter, CappedBar(lc.Count)))
	}
	return writeLines(w, lines)
}

// RenderWordFrequency prints each word, its count and an uncapped bar.
func RenderWordFrequency(w io.Writer, d model.Dictionary) error {
	lines := append([]string(nil), dictionaryHeader...)
	for _, wc := range d.Frequencies {
		lines = append(lines, fmt.Sprintf("%-*s%d |%s", WordColumnWidth, wc.Word, wc.Count, bar(wc.Count)))
	}
	return writeLines(w, lines)
}

// RenderHistogram prints right-aligned words between two dashed rules.
func RenderHistogram(w io.Writer, d model.Dictionary) error {
	maxLen := 0
	for _, wc := range d.Frequencies {
		if len(wc.Word) > maxLen {
			maxLen = len(wc.Word)
		}
	}
	rule := strings.Repeat("-", maxLen+HistogramPadding)

	lines := append([]string(nil), histogramHeader...)
	lines = append(lines, rule)
	for _, wc := range d.Frequencies {
		lines = append(lines, fmt.Sprintf("%*s %s", maxLen, wc.Word, bar(wc.Count)))
	}
	lines = append(lines, rule)
	return writeLines(w, lines)
}

// RenderTopLetters prints the n most frequent letters with their share of all letters.
func RenderTopLetters(w io.Writer, d model.Dictionary, n int) error {
	top := TopLetters(d, n)
	if len(top) == 0 {
		_, err := fmt.Fprintln(w, "No letters found.")
		return err
	}
	total := d.LetterTotal()
	columns := []column{
		{title: "Letter"},
		{title: "Count", align: alignRight},
		{title: "Share", align: alignRight},
	}
	rows := make([][]string, 0, len(top))
	for _, lc := range top {
		rows = append(rows, []string{
			string(lc.Letter),
			fmt.Sprintf("%d", lc.Count),
			fmt.Sprintf("%.2f%%", Share(lc.Count, total)),
		})
	}
	return writeLines(w, formatTable(columns, rows))
}

// Share returns count as a percentage of total, or 0 when total is 0.
func Share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// CappedBar renders at most MaxBarStars stars, appending the exact count when it is exceeded.
func CappedBar(count int) string {
	if count <= MaxBarStars {
		return bar(count)
	}
	return fmt.Sprintf("%s (%d)", bar(MaxBarStars), count)
}

func bar(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat("*", count)
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
