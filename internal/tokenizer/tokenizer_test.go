package tokenizer

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"empty", "", nil},
		{"punctuation only", "... ,;! 123", nil},
		{"sentence", "The cat sat on the mat.", []string{"the", "cat", "sat", "on", "the", "mat"}},
		{"trailing word", "  hello World", []string{"hello", "world"}},
		{"digits split words", "abc1def", []string{"abc", "def"}},
		{"apostrophe splits", "don't", []string{"don", "t"}},
		{"non-ascii is a delimiter", "caf\xc3\xa9 ok", []string{"caf", "ok"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words([]byte(tt.line))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNextSignalsExhaustion(t *testing.T) {
	tok := New([]byte("Go!"))
	word, ok := tok.Next()
	if !ok || word != "go" {
		t.Fatalf("expected go, got %q (ok=%v)", word, ok)
	}
	for i := 0; i < 2; i++ {
		word, ok = tok.Next()
		if ok || word != "" {
			t.Fatalf("expected exhaustion, got %q (ok=%v)", word, ok)
		}
	}
}

func TestIsLetterAndToLower(t *testing.T) {
	for _, ch := range []byte("azAZ") {
		if !IsLetter(ch) {
			t.Fatalf("expected %q to be a letter", ch)
		}
	}
	for _, ch := range []byte("@[`{0 \n") {
		if IsLetter(ch) {
			t.Fatalf("expected %q not to be a letter", ch)
		}
	}
	if ToLower('Q') != 'q' || ToLower('q') != 'q' || ToLower('1') != '1' {
		t.Fatalf("unexpected ToLower result")
	}
}
