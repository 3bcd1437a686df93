package ai

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "Whitespace only",
			input:    "   \n\t ",
			expected: nil,
		},
		{
			name:     "Single sentence",
			input:    "Hello world.",
			expected: []string{"Hello world."},
		},
		{
			name:     "Multiple sentences",
			input:    "First one. Second one! Third one?",
			expected: []string{"First one.", "Second one!", "Third one?"},
		},
		{
			name:     "Terminator run stays with sentence",
			input:    "Really?! Yes... maybe.",
			expected: []string{"Really?!", "Yes... maybe."},
		},
		{
			name:     "Period inside token does not split",
			input:    "Pi is 3.14 roughly. Next sentence.",
			expected: []string{"Pi is 3.14 roughly.", "Next sentence."},
		},
		{
			name:     "Trailing text without terminator",
			input:    "Done here. And this trails off",
			expected: []string{"Done here.", "And this trails off"},
		},
		{
			name:     "No punctuation at all",
			input:    "just a stream of words with no end",
			expected: []string{"just a stream of words with no end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitSentences(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitSentenceOverlap(t *testing.T) {
	// Four two-word sentences, a budget of two sentences and one
	// sentence of overlap.
	transcript := "Sentence one. Sentence two. Sentence three. Sentence four."
	c := NewChunkerWithOptions(ChunkOptions{MaxWords: 4, Overlap: 2})

	chunks := c.Split(transcript)

	expected := []string{
		"Sentence one. Sentence two.",
		"Sentence two. Sentence three.",
		"Sentence three. Sentence four.",
	}

	if len(chunks) != len(expected) {
		t.Fatalf("got %d chunks; want %d: %v", len(chunks), len(expected), chunks)
	}
	for i, want := range expected {
		if chunks[i].Text != want {
			t.Errorf("chunk %d = %q; want %q", i, chunks[i].Text, want)
		}
		if chunks[i].Index != i {
			t.Errorf("chunk %d carries index %d", i, chunks[i].Index)
		}
	}
}

func TestSplitEmptyTranscript(t *testing.T) {
	c := NewChunker()

	if got := c.Split(""); got != nil {
		t.Errorf("Split(\"\") = %v; want nil", got)
	}
	if got := c.Split("  \n "); got != nil {
		t.Errorf("Split(whitespace) = %v; want nil", got)
	}
}

func TestSplitOversizedSentence(t *testing.T) {
	// A single 500-word sentence with a 100-word budget must come back
	// as one oversized chunk, never cut mid-sentence.
	words := make([]string, 500)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	sentence := strings.Join(words, " ") + "."

	c := NewChunkerWithOptions(ChunkOptions{MaxWords: 100, Overlap: 10})
	chunks := c.Split(sentence)

	if len(chunks) != 1 {
		t.Fatalf("got %d chunks; want 1", len(chunks))
	}
	if chunks[0].Words != 500 {
		t.Errorf("chunk words = %d; want 500", chunks[0].Words)
	}
	if chunks[0].Text != sentence {
		t.Errorf("oversized sentence was altered")
	}
}

func TestSplitOversizedSentenceAmongOthers(t *testing.T) {
	big := strings.Repeat("word ", 30)
	transcript := "A short opener here now. " + strings.TrimSpace(big) + ". And a short closer too."

	c := NewChunkerWithOptions(ChunkOptions{MaxWords: 10, Overlap: 3})
	chunks := c.Split(transcript)

	if len(chunks) < 3 {
		t.Fatalf("got %d chunks; want at least 3", len(chunks))
	}
	for _, ch := range chunks {
		if ch.Words > 10 && !strings.Contains(ch.Text, strings.TrimSpace(big)) {
			t.Errorf("chunk %d overflows the budget without containing the oversized sentence: %q", ch.Index, ch.Text)
		}
	}
}

func TestSplitBudgetRespected(t *testing.T) {
	transcript := buildTranscript(60, 8) // 60 sentences, 8 words each
	c := NewChunkerWithOptions(ChunkOptions{MaxWords: 50, Overlap: 10})

	for _, ch := range c.Split(transcript) {
		if ch.Words > 50 {
			t.Errorf("chunk %d has %d words; budget is 50", ch.Index, ch.Words)
		}
		if got := countWords(ch.Text); got != ch.Words {
			t.Errorf("chunk %d reports %d words but contains %d", ch.Index, ch.Words, got)
		}
	}
}

func TestSplitBoundariesEndSentences(t *testing.T) {
	transcript := buildTranscript(40, 6)
	c := NewChunkerWithOptions(ChunkOptions{MaxWords: 30, Overlap: 6})

	chunks := c.Split(transcript)
	for i, ch := range chunks {
		if i == len(chunks)-1 {
			continue // the final chunk may end however the transcript ends
		}
		if !endsWithTerminator(ch.Text) {
			t.Errorf("chunk %d does not end on a sentence boundary: %q", i, ch.Text)
		}
	}
}

func TestSplitCoverage(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		opts       ChunkOptions
	}{
		{
			name:       "Regular sentences",
			transcript: buildTranscript(50, 7),
			opts:       ChunkOptions{MaxWords: 40, Overlap: 8},
		},
		{
			name:       "No overlap",
			transcript: buildTranscript(30, 5),
			opts:       ChunkOptions{MaxWords: 25, Overlap: 0},
		},
		{
			name:       "No punctuation fallback",
			transcript: distinctWords(200),
			opts:       ChunkOptions{MaxWords: 50, Overlap: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChunkerWithOptions(tt.opts)
			chunks := c.Split(tt.transcript)
			if len(chunks) == 0 {
				t.Fatal("no chunks produced")
			}

			got := reconstruct(chunks)
			want := strings.Join(strings.Fields(tt.transcript), " ")
			if got != want {
				t.Errorf("reconstructed transcript differs\ngot:  %q\nwant: %q", got, want)
			}
		})
	}
}

func TestSplitIdempotent(t *testing.T) {
	transcript := buildTranscript(45, 9)
	c := NewChunkerWithOptions(ChunkOptions{MaxWords: 60, Overlap: 12})

	first := c.Split(transcript)
	second := c.Split(transcript)

	if !reflect.DeepEqual(first, second) {
		t.Error("re-chunking the same transcript produced a different sequence")
	}
}

func TestOverlapCappedForProgress(t *testing.T) {
	// Overlap >= budget would never advance; the chunker caps it.
	c := NewChunkerWithOptions(ChunkOptions{MaxWords: 10, Overlap: 10})
	if c.overlapWords >= c.maxWords {
		t.Fatalf("overlap %d not capped below budget %d", c.overlapWords, c.maxWords)
	}

	transcript := buildTranscript(100, 4)
	chunks := c.Split(transcript)
	if len(chunks) == 0 {
		t.Fatal("no chunks produced")
	}

	got := reconstruct(chunks)
	want := strings.Join(strings.Fields(transcript), " ")
	if got != want {
		t.Error("capped overlap lost transcript content")
	}
}

// distinctWords produces n distinct words with no punctuation.
func distinctWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(words, " ")
}

// buildTranscript produces n sentences of w words each.
func buildTranscript(n, w int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < w; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "s%dw%d", i, j)
		}
		b.WriteString(". ")
	}
	return strings.TrimSpace(b.String())
}

// reconstruct joins chunks back together, dropping the duplicated overlap
// prefix of each chunk.
func reconstruct(chunks []Chunk) string {
	acc := strings.Fields(chunks[0].Text)
	for _, ch := range chunks[1:] {
		words := strings.Fields(ch.Text)
		// Longest prefix of this chunk that is a suffix of what we
		// have so far is the overlap; skip it.
		skip := 0
		for n := len(words); n > 0; n-- {
			if n > len(acc) {
				continue
			}
			if equalWords(acc[len(acc)-n:], words[:n]) {
				skip = n
				break
			}
		}
		acc = append(acc, words[skip:]...)
	}
	return strings.Join(acc, " ")
}

func equalWords(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
