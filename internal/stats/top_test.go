package stats

import (
	"testing"

	"github.com/verte-zerg/wordstat/internal/model"
)

func TestTopLetters(t *testing.T) {
	d := model.Dictionary{Letters: map[byte]int{'b': 4, 'a': 4, 'c': 1}}
	top := TopLetters(d, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 letters, got %d", len(top))
	}
	if top[0].Letter != 'a' || top[1].Letter != 'b' {
		t.Fatalf("unexpected order: %v", top)
	}
	if got := TopLetters(d, 10); len(got) != 3 {
		t.Fatalf("expected all 3 letters, got %d", len(got))
	}
	if got := TopLetters(d, 0); got != nil {
		t.Fatalf("expected nil for n=0, got %v", got)
	}
}

func TestTopWords(t *testing.T) {
	d := Accumulate([]byte(catText))
	top := TopWords(d, 3)
	expected := []model.WordCount{
		{Word: "the", Count: 3},
		{Word: "cat", Count: 2},
		{Word: "mat", Count: 1},
	}
	for i, wc := range expected {
		if top[i] != wc {
			t.Fatalf("expected %v at %d, got %v", wc, i, top[i])
		}
	}
	if d.Frequencies[0].Word != "mat" {
		t.Fatalf("TopWords must not reorder the dictionary")
	}
}
