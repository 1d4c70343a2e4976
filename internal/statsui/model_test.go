package statsui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordstat/internal/stats"
)

const sampleText = "The cat sat on the mat.\nThe cat ran.\n"

func TestParseTab(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"", tabOverview},
		{"overview", tabOverview},
		{" Letters ", tabLetters},
		{"WORDS", tabWords},
		{"histogram", tabHistogram},
	}
	for _, tt := range tests {
		got, err := ParseTab(tt.name)
		if err != nil {
			t.Fatalf("ParseTab(%q) failed: %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("ParseTab(%q): expected %d, got %d", tt.name, tt.want, got)
		}
	}
	if _, err := ParseTab("plots"); err == nil {
		t.Fatalf("expected error for unknown tab")
	}
}

func TestModelViewAndNavigation(t *testing.T) {
	m := NewModel(stats.Accumulate([]byte(sampleText)), "word.txt", tabOverview, 100)
	if out := m.View(); out != "" {
		t.Fatalf("expected empty view before a window size is known")
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	out := m.View()
	if !containsAll(out, []string{"Overview", "Histogram", "File: word.txt", "words=9", "lines=2", "Quit: q"}) {
		t.Fatalf("view missing expected segments:\n%s", out)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabHistogram {
		t.Fatalf("expected left from overview to wrap to histogram, got %d", m.activeTab)
	}
	if !strings.Contains(m.View(), "the ***") {
		t.Fatalf("expected histogram content:\n%s", m.View())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabLetters {
		t.Fatalf("expected letters tab, got %d", m.activeTab)
	}
	if !containsAll(m.View(), []string{"Letter", "Share", "*******"}) {
		t.Fatalf("expected letter table:\n%s", m.View())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestRenderOverview(t *testing.T) {
	out := renderOverview(stats.Accumulate([]byte(sampleText)), 100)
	if !containsAll(out, []string{"Longest word", "Vocabulary", "Top letters", "Top words", "the        3"}) {
		t.Fatalf("overview missing expected segments:\n%s", out)
	}

	empty := renderOverview(stats.Accumulate(nil), 40)
	if !containsAll(empty, []string{"No letters found.", "No words found."}) {
		t.Fatalf("expected empty-state messages:\n%s", empty)
	}
}

func TestFitAndTruncateLines(t *testing.T) {
	got := fitLines("a\nb\nc", 3, 2)
	if got != "a  \nb  " {
		t.Fatalf("unexpected fitLines output: %q", got)
	}
	got = fitLines("a", 2, 3)
	if got != "a \n  \n  " {
		t.Fatalf("unexpected fitLines padding: %q", got)
	}
	if got := truncateLine("abcdefgh", 6); got != "abc..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncateLine("abcdefgh", 2); got != "ab" {
		t.Fatalf("unexpected short truncation: %q", got)
	}
	if got := truncateLine("abc", 10); got != "abc" {
		t.Fatalf("expected untouched line, got %q", got)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
