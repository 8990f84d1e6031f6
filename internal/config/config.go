package config

// Config represents the complete contextf configuration.
// It can be loaded from .contextf/config.yml with environment variable overrides.
type Config struct {
	Search         SearchConfig         `yaml:"search" mapstructure:"search"`
	Tokens         TokenConfig          `yaml:"tokens" mapstructure:"tokens"`
	TextProcessing TextProcessingConfig `yaml:"text_processing" mapstructure:"text_processing"`
	LLM            LLMConfig            `yaml:"llm" mapstructure:"llm"`
}

// SearchConfig defines where and how pattern search runs.
type SearchConfig struct {
	DocsPath            string   `yaml:"docs_path" mapstructure:"docs_path"`                           // root directory to search
	FilePatterns        []string `yaml:"file_patterns" mapstructure:"file_patterns"`                   // glob patterns for files to scan
	MaxPatternsPerQuery int      `yaml:"max_patterns_per_query" mapstructure:"max_patterns_per_query"` // cap on generated/supplied patterns
	MaxMatchesPerFile   int      `yaml:"max_matches_per_file" mapstructure:"max_matches_per_file"`     // per-file match cap (scan and dedup)
	CaseSensitive       bool     `yaml:"case_sensitive" mapstructure:"case_sensitive"`
}

// TokenConfig defines tokenizer selection and token budgets.
type TokenConfig struct {
	Encoding            string `yaml:"encoding" mapstructure:"encoding"`                           // tiktoken encoding name, e.g. "cl100k_base"
	ContextWindowTokens int    `yaml:"context_window_tokens" mapstructure:"context_window_tokens"` // per-match window target
	MaxContextTokens    int    `yaml:"max_context_tokens" mapstructure:"max_context_tokens"`       // global budget for the assembled context
	MaxFileTokens       int    `yaml:"max_file_tokens" mapstructure:"max_file_tokens"`             // whole-file inclusion ceiling
}

// TextProcessingConfig defines chunking and window-merge behavior.
type TextProcessingConfig struct {
	ChunkSize               int  `yaml:"chunk_size" mapstructure:"chunk_size"`       // tokens per chunk for the line chunker
	ChunkOverlap            int  `yaml:"chunk_overlap" mapstructure:"chunk_overlap"` // token overlap between chunks
	MergeOverlappingWindows bool `yaml:"merge_overlapping_windows" mapstructure:"merge_overlapping_windows"`
}

// LLMConfig configures optional LLM-backed search pattern generation.
// When disabled (or when the call fails), the raw query is used as the
// single search pattern.
type LLMConfig struct {
	Enabled     bool    `yaml:"enabled" mapstructure:"enabled"`
	Model       string  `yaml:"model" mapstructure:"model"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
	// PatternPrompt is the prompt template. The placeholders {query} and
	// {max_patterns} are substituted before the request is sent.
	PatternPrompt string `yaml:"pattern_generation_prompt" mapstructure:"pattern_generation_prompt"`
}

// DefaultPatternPrompt is used when no prompt template is configured.
const DefaultPatternPrompt = "Generate up to {max_patterns} short literal search patterns, " +
	"one per line, for finding documentation relevant to this query: {query}"

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			DocsPath:            "./docs",
			FilePatterns:        []string{"*.md", "*.txt"},
			MaxPatternsPerQuery: 3,
			MaxMatchesPerFile:   3,
			CaseSensitive:       false,
		},
		Tokens: TokenConfig{
			Encoding:            "cl100k_base",
			ContextWindowTokens: 10000,
			MaxContextTokens:    500000,
			MaxFileTokens:       200000,
		},
		TextProcessing: TextProcessingConfig{
			ChunkSize:               1000,
			ChunkOverlap:            200,
			MergeOverlappingWindows: true,
		},
		LLM: LLMConfig{
			Enabled:       true,
			Model:         "gpt-4.1-mini",
			Temperature:   0.3,
			PatternPrompt: DefaultPatternPrompt,
		},
	}
}
