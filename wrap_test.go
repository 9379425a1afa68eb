package pdfgen

// Notes:
// - wrapText is measured with a synthetic fixed-width metric (10pt per
//   rune) so these tests run without building a PDF document.
// - The oversized-word case documents intentional behavior: a single
//   word wider than the limit is kept whole on its own line.

import (
	"strings"
	"testing"
)

// charWidth is a synthetic measurer: 10 points per rune.
func charWidth(s string) float64 {
	return float64(len([]rune(s))) * 10
}

// ---------------------------------------------------------------------------
// TestWrapText - greedy wrapping
// ---------------------------------------------------------------------------

func TestWrapText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{
			name:     "empty input yields no lines",
			text:     "",
			maxWidth: 100,
			want:     nil,
		},
		{
			name:     "whitespace only yields no lines",
			text:     "   \t  ",
			maxWidth: 100,
			want:     nil,
		},
		{
			name:     "single word fits",
			text:     "hello",
			maxWidth: 100,
			want:     []string{"hello"},
		},
		{
			name:     "two words fit on one line",
			text:     "hi there",
			maxWidth: 100,
			want:     []string{"hi there"},
		},
		{
			name:     "exact fit is kept",
			text:     "abcde fghij",
			maxWidth: 110, // "abcde fghij" is 11 runes
			want:     []string{"abcde fghij"},
		},
		{
			name:     "one over the limit wraps",
			text:     "abcde fghij",
			maxWidth: 109,
			want:     []string{"abcde", "fghij"},
		},
		{
			name:     "multiple wraps",
			text:     "aa bb cc dd ee",
			maxWidth: 50, // five runes per line
			want:     []string{"aa bb", "cc dd", "ee"},
		},
		{
			name:     "oversized word kept on its own line",
			text:     "tiny extraordinarily tiny",
			maxWidth: 60,
			want:     []string{"tiny", "extraordinarily", "tiny"},
		},
		{
			name:     "oversized first word",
			text:     "incomprehensible",
			maxWidth: 40,
			want:     []string{"incomprehensible"},
		},
		{
			name:     "runs of whitespace collapse",
			text:     "a   b \t c",
			maxWidth: 100,
			want:     []string{"a b c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := wrapText(tt.text, tt.maxWidth, charWidth)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapText() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWrapText_Properties - width bound and word preservation
// ---------------------------------------------------------------------------

func TestWrapText_Properties(t *testing.T) {
	t.Parallel()

	texts := []string{
		"To get you off to the best possible start, please register now for your Online Account",
		"a bb ccc dddd eeeee ffffff ggggggg",
		"one",
		"pneumonoultramicroscopicsilicovolcanoconiosis and then some short words",
	}
	const maxWidth = 120.0

	for _, text := range texts {
		lines := wrapText(text, maxWidth, charWidth)

		// Every line fits, except a single oversized word.
		for _, line := range lines {
			if charWidth(line) > maxWidth && strings.Contains(line, " ") {
				t.Errorf("line %q exceeds width %v and is not a single word", line, maxWidth)
			}
		}

		// Rejoining reproduces the original words in order.
		gotWords := strings.Fields(strings.Join(lines, " "))
		wantWords := strings.Fields(text)
		if len(gotWords) != len(wantWords) {
			t.Fatalf("word count changed: got %d, want %d", len(gotWords), len(wantWords))
		}
		for i := range gotWords {
			if gotWords[i] != wantWords[i] {
				t.Errorf("word %d = %q, want %q", i, gotWords[i], wantWords[i])
			}
		}
	}
}
