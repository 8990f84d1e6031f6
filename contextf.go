// Package contextf assembles token-budgeted context from a directory of
// documents. It searches files for literal patterns, extracts token-bounded
// windows around matches, merges overlapping windows, and greedily packs
// per-file context into a global token budget for downstream LLM calls.
package contextf

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mvp-joe/contextf/internal/config"
	"github.com/mvp-joe/contextf/internal/llm"
	"github.com/mvp-joe/contextf/internal/search"
	"github.com/mvp-joe/contextf/internal/text"
	"github.com/mvp-joe/contextf/internal/token"
)

var (
	// ErrNoQueryOrPatterns indicates BuildContext was called with neither a
	// query nor an explicit pattern list.
	ErrNoQueryOrPatterns = errors.New("either a query or patterns must be provided")

	// ErrTokenLimit indicates the assembled context exceeded the configured
	// ceiling. The budget is enforced during assembly, so hitting this is
	// an accounting bug, not expected behavior.
	ErrTokenLimit = errors.New("context tokens exceed maximum limit")
)

// Request describes a single context assembly call. Either Query or
// Patterns must be set; when both are set, Patterns wins and no pattern
// generation happens. DocsPath and FilePatterns override the configured
// defaults when non-empty.
type Request struct {
	Query        string
	Patterns     []string
	DocsPath     string
	FilePatterns []string
}

// ContextBuilder is the top-level orchestrator: search, per-file context
// building, and token-budgeted aggregation.
type ContextBuilder struct {
	cfg       *config.Config
	counter   token.Counter
	searcher  *search.Searcher
	fileCtx   *text.FileContext
	chunker   *text.Chunker
	generator llm.PatternGenerator
	reporter  Reporter
}

// Option configures a ContextBuilder.
type Option func(*ContextBuilder)

// WithReporter installs a progress reporter. The default reporter is
// silent.
func WithReporter(r Reporter) Option {
	return func(cb *ContextBuilder) {
		cb.reporter = r
	}
}

// WithPatternGenerator installs a pattern generator, replacing the default
// OpenAI-backed one.
func WithPatternGenerator(g llm.PatternGenerator) Option {
	return func(cb *ContextBuilder) {
		cb.generator = g
	}
}

// WithCounter installs a token counter, replacing the tiktoken-backed one
// selected by tokens.encoding.
func WithCounter(c token.Counter) Option {
	return func(cb *ContextBuilder) {
		cb.counter = c
	}
}

// New creates a ContextBuilder from a validated configuration.
//
// The tokenizer is initialized from tokens.encoding and fronted by a
// size-bounded cache. When llm.enabled is set and OPENAI_API_KEY is
// present, pattern generation uses the OpenAI API; otherwise queries
// degrade to literal patterns.
func New(cfg *config.Config, opts ...Option) (*ContextBuilder, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	cb := &ContextBuilder{
		cfg:      cfg,
		reporter: NoopReporter{},
	}
	for _, opt := range opts {
		opt(cb)
	}

	if cb.counter == nil {
		base, err := token.NewCounter(cfg.Tokens.Encoding)
		if err != nil {
			return nil, err
		}
		cached, err := token.NewCachedCounter(base, 0)
		if err != nil {
			return nil, err
		}
		cb.counter = cached
	}

	if cb.generator == nil && cfg.LLM.Enabled {
		gen, err := llm.NewOpenAIGenerator(cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.PatternPrompt)
		if err == nil {
			cb.generator = gen
		}
		// No API key means pattern generation degrades to the raw query;
		// it is not a construction error.
		if err != nil && !errors.Is(err, llm.ErrNoAPIKey) {
			return nil, err
		}
	}

	cb.searcher = search.NewSearcher(cfg.Search.CaseSensitive, cfg.Search.MaxMatchesPerFile)
	cb.fileCtx = text.NewFileContext(
		cb.counter,
		cfg.Tokens.MaxFileTokens,
		cfg.Tokens.ContextWindowTokens,
		cfg.TextProcessing.MergeOverlappingWindows,
	)
	cb.chunker = text.NewChunker(cb.counter, cfg.TextProcessing.ChunkSize, cfg.TextProcessing.ChunkOverlap)

	return cb, nil
}

// Config returns the builder's configuration.
func (cb *ContextBuilder) Config() *config.Config {
	return cb.cfg
}

// CountTokens counts tokens in text using the configured tokenizer.
func (cb *ContextBuilder) CountTokens(text string) int {
	return cb.counter.Count(text)
}

// ChunkText splits text into token-budgeted line chunks using the
// configured chunk size and overlap.
func (cb *ContextBuilder) ChunkText(content string) []text.Chunk {
	return cb.chunker.ChunkText(content)
}

// GenerateSearchPatterns resolves a query into literal search patterns.
// When pattern generation is disabled, unavailable, or fails in any way,
// it returns the trimmed query as the single pattern; it never fails.
func (cb *ContextBuilder) GenerateSearchPatterns(ctx context.Context, query string) []string {
	fallback := []string{strings.TrimSpace(query)}

	if cb.generator == nil {
		cb.reporter.OnPatternFallback(query, nil)
		return fallback
	}

	patterns, err := cb.generator.GeneratePatterns(ctx, query, cb.cfg.Search.MaxPatternsPerQuery)
	if err != nil || len(patterns) == 0 {
		cb.reporter.OnPatternFallback(query, err)
		return fallback
	}
	return patterns
}

// BuildContext runs the full pipeline: resolve patterns, search files,
// build per-file context for files sorted by match count descending, and
// greedily pack contributions into the configured token budget.
//
// Zero matches across all files is a successful empty result. Budget
// policy: the first file whose contribution would overflow the remaining
// budget stops assembly entirely; later, smaller files are not considered.
func (cb *ContextBuilder) BuildContext(ctx context.Context, req Request) (*ContextResult, error) {
	if req.Query == "" && len(req.Patterns) == 0 {
		return nil, ErrNoQueryOrPatterns
	}

	var patterns []string
	if len(req.Patterns) > 0 {
		patterns = req.Patterns
		if len(patterns) > cb.cfg.Search.MaxPatternsPerQuery {
			patterns = patterns[:cb.cfg.Search.MaxPatternsPerQuery]
		}
	} else {
		patterns = cb.GenerateSearchPatterns(ctx, req.Query)
	}

	docsPath := req.DocsPath
	if docsPath == "" {
		docsPath = cb.cfg.Search.DocsPath
	}
	filePatterns := req.FilePatterns
	if len(filePatterns) == 0 {
		filePatterns = cb.cfg.Search.FilePatterns
	}

	cb.reporter.OnSearchStart(patterns, docsPath, filePatterns)

	fileMatches, err := cb.searcher.Search(patterns, docsPath, filePatterns)
	if err != nil {
		return nil, err
	}
	cb.reporter.OnSearchComplete(len(fileMatches))

	if len(fileMatches) == 0 {
		return emptyResult(), nil
	}

	// Prioritize files with more matches; ties keep enumeration order.
	sorted := make([]search.FileMatches, len(fileMatches))
	copy(sorted, fileMatches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].Matches) > len(sorted[j].Matches)
	})

	maxContextTokens := cb.cfg.Tokens.MaxContextTokens

	var contextParts []string
	totalTokens := 0
	filesUsed := make(map[string]FileUsage)

	for _, fm := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if totalTokens >= maxContextTokens {
			cb.reporter.OnBudgetExhausted(totalTokens, maxContextTokens)
			break
		}

		cb.reporter.OnFileProcessing(fm.Path, len(fm.Matches))

		unique := search.Dedupe(fm.Matches, cb.cfg.Search.MaxMatchesPerFile)

		fileContext, fileTokens, err := cb.fileCtx.Build(fm.Path, unique)
		if err != nil {
			return nil, err
		}
		if fileContext == "" {
			continue
		}

		if totalTokens+fileTokens > maxContextTokens {
			cb.reporter.OnFileSkipped(fm.Path, fileTokens)
			break
		}

		contextParts = append(contextParts, fmt.Sprintf("--- File: %s ---\n%s", fm.Path, fileContext))
		totalTokens += fileTokens
		filesUsed[fm.Path] = FileUsage{
			Matches:       len(unique),
			Tokens:        fileTokens,
			PatternsFound: search.Patterns(unique),
		}
		cb.reporter.OnFileIncluded(fm.Path, fileTokens)
	}

	if totalTokens > maxContextTokens {
		return nil, fmt.Errorf("%w: %d > %d", ErrTokenLimit, totalTokens, maxContextTokens)
	}

	return &ContextResult{
		Context:       strings.Join(contextParts, "\n\n"),
		ContextTokens: totalTokens,
		FilesUsed:     filesUsed,
		Matches:       search.ToMap(fileMatches),
	}, nil
}
