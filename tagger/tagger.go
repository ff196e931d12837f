// Package tagger produces Storage-form documents from raw text by delegating
// sentence splitting and part-of-speech tagging to external collaborators.
package tagger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/iw2rmb/tagpad/internal/logging"
	"github.com/iw2rmb/tagpad/tagtext"
)

var (
	// ErrSentenceCount is returned when a tagger answers with a different
	// number of sentences than it was given.
	ErrSentenceCount = errors.New("tagger: sentence count mismatch")
	// ErrNoTagger is returned by a Pipeline without a Tagger.
	ErrNoTagger = errors.New("tagger: no tagger configured")
)

// Splitter breaks raw text into sentences.
type Splitter interface {
	Split(ctx context.Context, text string) ([]string, error)
}

// Tagger tags each sentence, returning one Storage-form sentence per input in
// the same order.
type Tagger interface {
	Tag(ctx context.Context, sentences []string) ([]string, error)
}

// SplitterFunc adapts a function to Splitter.
type SplitterFunc func(ctx context.Context, text string) ([]string, error)

func (f SplitterFunc) Split(ctx context.Context, text string) ([]string, error) { return f(ctx, text) }

// TaggerFunc adapts a function to Tagger.
type TaggerFunc func(ctx context.Context, sentences []string) ([]string, error)

func (f TaggerFunc) Tag(ctx context.Context, sentences []string) ([]string, error) {
	return f(ctx, sentences)
}

// LineSplitter treats every non-blank line as one sentence.
type LineSplitter struct{}

func (LineSplitter) Split(_ context.Context, text string) ([]string, error) {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// Pipeline splits then tags.
type Pipeline struct {
	// Splitter defaults to LineSplitter.
	Splitter Splitter
	Tagger   Tagger
	// BatchSize caps the sentences sent per Tag call. Zero sends everything
	// in one call.
	BatchSize int
	// Jobs caps concurrent Tag calls. Values below one mean one.
	Jobs int
}

// AutoTag returns text as a Storage document, one tagged sentence per line.
// Empty input yields an empty document without calling the tagger.
func (p Pipeline) AutoTag(ctx context.Context, text string) (string, error) {
	if p.Tagger == nil {
		return "", ErrNoTagger
	}
	splitter := p.Splitter
	if splitter == nil {
		splitter = LineSplitter{}
	}

	sentences, err := splitter.Split(ctx, text)
	if err != nil {
		return "", err
	}
	if len(sentences) == 0 {
		return "", nil
	}

	batches := batch(sentences, p.BatchSize)
	results := make([][]string, len(batches))
	jobs := max(p.Jobs, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(batches)))
	for i, b := range batches {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := p.Tagger.Tag(gctx, b)
			if err != nil {
				return err
			}
			if len(out) != len(b) {
				return fmt.Errorf("%w: sent %d, got %d", ErrSentenceCount, len(b), len(out))
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	lines := make([]string, 0, len(sentences))
	for _, out := range results {
		for _, s := range out {
			s = strings.TrimSpace(s)
			if strings.Contains(s, "\n") {
				return "", fmt.Errorf("%w: tagged sentence %d spans several lines", ErrSentenceCount, len(lines))
			}
			lines = append(lines, s)
		}
	}
	doc := strings.Join(lines, "\n")
	if err := tagtext.Validate(doc, tagtext.Storage); err != nil {
		logging.Warn("tagger output is not well-formed", "error", err)
	}
	return doc, nil
}

func batch(items []string, size int) [][]string {
	if size <= 0 || size >= len(items) {
		return [][]string{items}
	}
	out := make([][]string, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end:end])
	}
	return out
}
