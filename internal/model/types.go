// Package model defines shared data structures.
package model

// Config defines the settings resolved for a run.
type Config struct {
	InputPath string
	StartTab  string
	Verbose   bool
}

// Counters holds the summary totals of a scan.
type Counters struct {
	Chars int
	Words int
	Lines int
}

// WordCount pairs a word with its number of occurrences.
type WordCount struct {
	Word  string
	Count int
}

// LetterCount pairs an ASCII letter with its number of occurrences.
type LetterCount struct {
	Letter byte
	Count  int
}

// Dictionary is the aggregate built from a single input text.
type Dictionary struct {
	Counters Counters
	// Vocabulary lists distinct words in lexicographic order.
	Vocabulary []string
	// Letters maps 'a'..'z' to occurrences. Absent keys mean zero.
	Letters map[byte]int
	// Frequencies is ordered by ascending count, then by word.
	Frequencies []WordCount
	LongestWord string
}

// LetterTotal returns the number of letters counted across the text.
func (d Dictionary) LetterTotal() int {
	total := 0
	for _, n := range d.Letters {
		total += n
	}
	return total
}

// PresentLetters returns letters with a non-zero count in alphabetical order.
func (d Dictionary) PresentLetters() []LetterCount {
	out := make([]LetterCount, 0, len(d.Letters))
	for ch := byte('a'); ch <= 'z'; ch++ {
		if n := d.Letters[ch]; n > 0 {
			out = append(out, LetterCount{Letter: ch, Count: n})
		}
	}
	return out
}
