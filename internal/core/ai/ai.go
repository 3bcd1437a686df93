// Package ai composes transcript chunking and per-chunk summarization into
// the summarization stage of the pipeline.
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/nurmister/ytsum/internal/core/ai/summarizer"
	"github.com/nurmister/ytsum/internal/core/config"
)

// Progress receives human-readable status lines during processing.
type Progress func(format string, args ...interface{})

// Pipeline turns a transcript into a final summary: split into
// sentence-aligned chunks, summarize each chunk independently, reassemble
// in transcript order, optionally compress once more.
type Pipeline struct {
	chunker    *Chunker
	summarizer summarizer.Summarizer
	mode       summarizer.Mode

	parallel         int
	limiter          *rate.Limiter
	callTimeout      time.Duration
	combineThreshold int

	progress Progress
}

// Result contains the output of a summarization run.
type Result struct {
	ChunkCount     int
	ChunkSummaries []string // indexed by chunk position; empty entry = not completed
	Final          string
	CombinePassed  bool
}

// NewPipeline creates a summarization pipeline. The summarizer is injected
// so tests can run against a fake provider.
func NewPipeline(s summarizer.Summarizer, mode summarizer.Mode, cfg config.SummarizeConfig, progress Progress) *Pipeline {
	parallel := cfg.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	rpm := cfg.RequestsPerMin
	if rpm <= 0 {
		rpm = 60
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	threshold := cfg.CombineThresholdWords
	if threshold <= 0 {
		threshold = 2 * MaxChunkWords
	}

	return &Pipeline{
		chunker: NewChunkerWithOptions(ChunkOptions{
			MaxWords: cfg.MaxChunkWords,
			Overlap:  cfg.OverlapWords,
		}),
		summarizer:       s,
		mode:             mode,
		parallel:         parallel,
		limiter:          rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		callTimeout:      timeout,
		combineThreshold: threshold,
		progress:         progress,
	}
}

// Summarize runs the full summarization stage over one transcript. An empty
// transcript yields an empty final summary without any service call. On a
// per-chunk failure the error names the failed chunk and the Result still
// carries the summaries that completed.
func (p *Pipeline) Summarize(ctx context.Context, transcript string) (*Result, error) {
	chunks := p.chunker.Split(transcript)
	result := &Result{
		ChunkCount:     len(chunks),
		ChunkSummaries: make([]string, len(chunks)),
	}

	if len(chunks) == 0 {
		return result, nil
	}

	p.logf("transcript split into %d chunk(s)", len(chunks))

	system := summarizer.SystemPrompt(p.mode)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.parallel)

	for _, chunk := range chunks {
		chunk := chunk
		g.Go(func() error {
			if err := p.limiter.Wait(gctx); err != nil {
				return fmt.Errorf("chunk %d/%d: %w", chunk.Index+1, len(chunks), err)
			}

			p.logf("summarizing chunk %d/%d (%d words)", chunk.Index+1, len(chunks), chunk.Words)

			callCtx, cancel := context.WithTimeout(gctx, p.callTimeout)
			defer cancel()

			summary, err := p.summarizer.Complete(callCtx, summarizer.Prompt{
				System: system,
				User:   summarizer.ChunkPrompt(chunk.Text),
			})
			if err != nil {
				return fmt.Errorf("chunk %d/%d: %w", chunk.Index+1, len(chunks), err)
			}

			// Each goroutine writes only its own slot; reassembly
			// order is the chunk order, not completion order.
			result.ChunkSummaries[chunk.Index] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	combined := strings.Join(result.ChunkSummaries, "\n\n")
	result.Final = combined

	// One bounded extra pass if the combined summary is still too long to
	// be usable. Never recursive.
	if len(chunks) > 1 && countWords(combined) > p.combineThreshold {
		p.logf("combined summary is %d words, running combine pass", countWords(combined))

		callCtx, cancel := context.WithTimeout(ctx, p.callTimeout)
		defer cancel()

		if err := p.limiter.Wait(callCtx); err != nil {
			return result, fmt.Errorf("combine pass: %w", err)
		}

		final, err := p.summarizer.Complete(callCtx, summarizer.Prompt{
			System:    summarizer.CombineSystemPrompt(),
			User:      summarizer.CombinePrompt(combined),
			MaxTokens: 2 * summarizer.DefaultMaxTokens,
		})
		if err != nil {
			return result, fmt.Errorf("combine pass: %w", err)
		}

		result.Final = final
		result.CombinePassed = true
	}

	return result, nil
}

func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.progress != nil {
		p.progress(format, args...)
	}
}
