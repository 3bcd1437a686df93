package ai

import (
	"strings"
	"unicode"
)

const (
	// MaxChunkWords is the default chunk budget in words, a rough proxy
	// for the chat model's token budget.
	MaxChunkWords = 750

	// OverlapWords is the default number of trailing words repeated at
	// the head of the next chunk to preserve context across the split.
	OverlapWords = 75
)

// Chunk is a sentence-aligned, word-bounded window of a transcript.
type Chunk struct {
	Index int
	Text  string
	Words int
}

// ChunkOptions configures a Chunker.
// Zero values for MaxWords or Overlap will use defaults.
type ChunkOptions struct {
	MaxWords int
	Overlap  int
}

// Chunker splits a transcript into overlapping, sentence-respecting chunks.
type Chunker struct {
	maxWords     int
	overlapWords int
}

// NewChunker creates a new Chunker with default settings.
func NewChunker() *Chunker {
	return &Chunker{
		maxWords:     MaxChunkWords,
		overlapWords: OverlapWords,
	}
}

// NewChunkerWithOptions creates a new Chunker with custom settings.
func NewChunkerWithOptions(opts ChunkOptions) *Chunker {
	c := NewChunker()
	if opts.MaxWords > 0 {
		c.maxWords = opts.MaxWords
	}
	if opts.Overlap >= 0 {
		c.overlapWords = opts.Overlap
	}
	// An overlap as large as the chunk itself would stall forward
	// progress; cap it at half the budget.
	if c.overlapWords >= c.maxWords {
		c.overlapWords = c.maxWords / 2
	}
	return c
}

// Split produces the ordered chunk sequence for a transcript. Chunks end on
// sentence boundaries and never exceed the word budget, with one exception:
// a single sentence longer than the budget is emitted whole rather than cut
// mid-sentence. An empty transcript yields no chunks.
func (c *Chunker) Split(text string) []Chunk {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	// No recognized sentence boundary anywhere: fall back to plain
	// word windows, since there is no boundary left to respect.
	if len(sentences) == 1 && !endsWithTerminator(sentences[0]) && countWords(sentences[0]) > c.maxWords {
		return c.splitWords(sentences[0])
	}

	var chunks []Chunk
	var cur []string
	curWords := 0

	for _, sentence := range sentences {
		sw := countWords(sentence)

		if curWords > 0 && curWords+sw > c.maxWords {
			closed := strings.Join(cur, " ")
			chunks = append(chunks, Chunk{
				Index: len(chunks),
				Text:  closed,
				Words: curWords,
			})

			// Seed the next chunk with the tail of the one just
			// closed. The tail is trimmed so that tail plus the
			// pending sentence still fits the budget; only a
			// sentence that is oversized on its own may overflow.
			allowed := c.overlapWords
			if room := c.maxWords - sw; room < allowed {
				allowed = room
			}
			tail := tailWords(closed, allowed)

			cur = cur[:0]
			curWords = 0
			if tail != "" {
				cur = append(cur, tail)
				curWords = countWords(tail)
			}
		}

		cur = append(cur, sentence)
		curWords += sw
	}

	if len(cur) > 0 {
		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Text:  strings.Join(cur, " "),
			Words: curWords,
		})
	}

	return chunks
}

// splitWords is the punctuation-free fallback: fixed word windows with
// overlap and a forward-progress guard.
func (c *Chunker) splitWords(text string) []Chunk {
	words := strings.Fields(text)

	var chunks []Chunk
	for start := 0; start < len(words); {
		end := start + c.maxWords
		if end > len(words) {
			end = len(words)
		}

		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Text:  strings.Join(words[start:end], " "),
			Words: end - start,
		})

		if end == len(words) {
			break
		}

		next := end - c.overlapWords
		if next <= start {
			next = end
		}
		start = next
	}

	return chunks
}

// SplitSentences splits text on sentence-terminal punctuation followed by
// whitespace (or end of input). Abbreviation-free heuristic, same rule the
// transcript producers use: '.', '!' and '?' end a sentence; a terminator
// inside a token ("3.14", "e.g.x") does not.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)

		if !isTerminator(r) {
			continue
		}

		// Swallow terminator runs like "?!" and "..."
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
			b.WriteRune(runes[i])
		}

		if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
		}
	}

	// Trailing text without a terminator is still a sentence.
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func endsWithTerminator(s string) bool {
	trimmed := strings.TrimRightFunc(s, unicode.IsSpace)
	if trimmed == "" {
		return false
	}
	return isTerminator([]rune(trimmed)[len([]rune(trimmed))-1])
}

func countWords(s string) int {
	return len(strings.Fields(s))
}

// tailWords returns the last n words of s joined by single spaces.
func tailWords(s string, n int) string {
	if n <= 0 {
		return ""
	}
	words := strings.Fields(s)
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return strings.Join(words, " ")
}
