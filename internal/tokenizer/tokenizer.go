// Package tokenizer splits a line of text into normalized words.
package tokenizer

// Tokenizer yields lower-cased ASCII words from a single line.
type Tokenizer struct {
	line []byte
	pos  int
}

// New returns a Tokenizer positioned at the start of line.
func New(line []byte) *Tokenizer {
	return &Tokenizer{line: line}
}

// Next returns the next word, or "" and false once the line is exhausted.
func (t *Tokenizer) Next() (string, bool) {
	for t.pos < len(t.line) && !IsLetter(t.line[t.pos]) {
		t.pos++
	}
	if t.pos >= len(t.line) {
		return "", false
	}
	start := t.pos
	for t.pos < len(t.line) && IsLetter(t.line[t.pos]) {
		t.pos++
	}
	word := make([]byte, t.pos-start)
	for i, ch := range t.line[start:t.pos] {
		word[i] = ToLower(ch)
	}
	return string(word), true
}

// Words tokenizes the whole line.
func Words(line []byte) []string {
	var out []string
	tok := New(line)
	for {
		word, ok := tok.Next()
		if !ok {
			return out
		}
		out = append(out, word)
	}
}

// IsLetter reports whether ch is an ASCII letter.
func IsLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// ToLower lower-cases an ASCII upper-case letter and leaves other bytes alone.
func ToLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
