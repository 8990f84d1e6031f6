package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyDocsPath indicates a missing documents root
	ErrEmptyDocsPath = errors.New("empty docs_path")

	// ErrEmptyFilePatterns indicates no file glob patterns were configured
	ErrEmptyFilePatterns = errors.New("empty file_patterns")

	// ErrInvalidPatternLimit indicates a non-positive max_patterns_per_query
	ErrInvalidPatternLimit = errors.New("invalid max_patterns_per_query")

	// ErrInvalidMatchLimit indicates a non-positive max_matches_per_file
	ErrInvalidMatchLimit = errors.New("invalid max_matches_per_file")

	// ErrEmptyEncoding indicates a missing tokenizer encoding name
	ErrEmptyEncoding = errors.New("empty tokenizer encoding")

	// ErrInvalidTokenLimit indicates a non-positive token budget
	ErrInvalidTokenLimit = errors.New("invalid token limit")

	// ErrInvalidChunkSize indicates invalid chunk size configuration
	ErrInvalidChunkSize = errors.New("invalid chunk size")

	// ErrInvalidChunkOverlap indicates invalid chunk overlap configuration
	ErrInvalidChunkOverlap = errors.New("invalid chunk overlap")

	// ErrEmptyModel indicates LLM pattern generation is enabled without a model
	ErrEmptyModel = errors.New("empty llm model")

	// ErrInvalidTemperature indicates an out-of-range sampling temperature
	ErrInvalidTemperature = errors.New("invalid llm temperature")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validateSearch(&cfg.Search); err != nil {
		errs = append(errs, err)
	}
	if err := validateTokens(&cfg.Tokens); err != nil {
		errs = append(errs, err)
	}
	if err := validateTextProcessing(&cfg.TextProcessing); err != nil {
		errs = append(errs, err)
	}
	if err := validateLLM(&cfg.LLM); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return fmt.Errorf("configuration validation failed: %s: %w", strings.Join(msgs, "; "), errs[0])
	}

	return nil
}

func validateSearch(s *SearchConfig) error {
	if strings.TrimSpace(s.DocsPath) == "" {
		return ErrEmptyDocsPath
	}
	if len(s.FilePatterns) == 0 {
		return ErrEmptyFilePatterns
	}
	for _, p := range s.FilePatterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: blank pattern", ErrEmptyFilePatterns)
		}
	}
	if s.MaxPatternsPerQuery <= 0 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidPatternLimit, s.MaxPatternsPerQuery)
	}
	if s.MaxMatchesPerFile <= 0 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidMatchLimit, s.MaxMatchesPerFile)
	}
	return nil
}

func validateTokens(t *TokenConfig) error {
	if strings.TrimSpace(t.Encoding) == "" {
		return ErrEmptyEncoding
	}
	if t.ContextWindowTokens <= 0 {
		return fmt.Errorf("%w: context_window_tokens must be positive, got %d", ErrInvalidTokenLimit, t.ContextWindowTokens)
	}
	if t.MaxContextTokens <= 0 {
		return fmt.Errorf("%w: max_context_tokens must be positive, got %d", ErrInvalidTokenLimit, t.MaxContextTokens)
	}
	if t.MaxFileTokens <= 0 {
		return fmt.Errorf("%w: max_file_tokens must be positive, got %d", ErrInvalidTokenLimit, t.MaxFileTokens)
	}
	return nil
}

func validateTextProcessing(tp *TextProcessingConfig) error {
	if tp.ChunkSize <= 0 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidChunkSize, tp.ChunkSize)
	}
	if tp.ChunkOverlap < 0 {
		return fmt.Errorf("%w: must be non-negative, got %d", ErrInvalidChunkOverlap, tp.ChunkOverlap)
	}
	if tp.ChunkOverlap >= tp.ChunkSize {
		return fmt.Errorf("%w: overlap (%d) must be smaller than chunk size (%d)",
			ErrInvalidChunkOverlap, tp.ChunkOverlap, tp.ChunkSize)
	}
	return nil
}

func validateLLM(l *LLMConfig) error {
	if !l.Enabled {
		return nil
	}
	if strings.TrimSpace(l.Model) == "" {
		return ErrEmptyModel
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("%w: must be in [0, 2], got %g", ErrInvalidTemperature, l.Temperature)
	}
	return nil
}
