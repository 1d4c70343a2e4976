// Package stats contains statistics calculations and reporting.
package stats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/verte-zerg/wordstat/internal/model"
	"github.com/verte-zerg/wordstat/internal/tokenizer"
)

const sparkChars = " .:-=+*#%@"

// AccumulateFile reads path into memory and builds its dictionary.
func AccumulateFile(path string) (model.Dictionary, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return model.Dictionary{}, fmt.Errorf("unable to open file %s: %w", path, err)
	}
	return Accumulate(content), nil
}

// Accumulate builds the dictionary for content using a line pass for words
// and a byte pass for characters and letters.
func Accumulate(content []byte) model.Dictionary {
	var d model.Dictionary
	counts := map[string]int{}
	var longest longestWord

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), len(content)+1)
	for scanner.Scan() {
		d.Counters.Lines++
		tok := tokenizer.New(scanner.Bytes())
		for {
			word, ok := tok.Next()
			if !ok {
				break
			}
			counts[word]++
			longest.offer(word)
			d.Counters.Words++
		}
	}

	d.Letters = map[byte]int{}
	for _, ch := range content {
		d.Counters.Chars++
		if tokenizer.IsLetter(ch) {
			d.Letters[tokenizer.ToLower(ch)]++
		}
	}

	d.Vocabulary = make([]string, 0, len(counts))
	for word := range counts {
		d.Vocabulary = append(d.Vocabulary, word)
	}
	sort.Strings(d.Vocabulary)
	d.Frequencies = invertCounts(d.Vocabulary, counts)
	d.LongestWord = longest.word
	return d
}

func invertCounts(vocabulary []string, counts map[string]int) []model.WordCount {
	out := make([]model.WordCount, 0, len(vocabulary))
	for _, word := range vocabulary {
		out = append(out, model.WordCount{Word: word, Count: counts[word]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Word < out[j].Word
		}
		return out[i].Count < out[j].Count
	})
	return out
}

// longestWord keeps the longest word seen; equal lengths keep the
// lexicographically smaller one.
type longestWord struct {
	word string
}

func (l *longestWord) offer(word string) {
	switch {
	case len(word) > len(l.word):
		l.word = word
	case len(word) == len(l.word) && word < l.word:
		l.word = word
	}
}

// LetterSeries returns the counts for 'a'..'z', zeros included.
func LetterSeries(d model.Dictionary) []float64 {
	out := make([]float64, 0, 26)
	for ch := byte('a'); ch <= 'z'; ch++ {
		out = append(out, float64(d.Letters[ch]))
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
