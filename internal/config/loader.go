package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (CONTEXTF_*)
// 2. Config file (.contextf/config.yml or .contextf/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".contextf")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Enable environment variable overrides, e.g. CONTEXTF_TOKENS_MAX_CONTEXT_TOKENS
	v.SetEnvPrefix("CONTEXTF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("search.docs_path")
	v.BindEnv("search.max_patterns_per_query")
	v.BindEnv("search.max_matches_per_file")
	v.BindEnv("search.case_sensitive")

	v.BindEnv("tokens.encoding")
	v.BindEnv("tokens.context_window_tokens")
	v.BindEnv("tokens.max_context_tokens")
	v.BindEnv("tokens.max_file_tokens")

	v.BindEnv("text_processing.chunk_size")
	v.BindEnv("text_processing.chunk_overlap")
	v.BindEnv("text_processing.merge_overlapping_windows")

	v.BindEnv("llm.enabled")
	v.BindEnv("llm.model")
	v.BindEnv("llm.temperature")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Strict unmarshal: keys that don't map to a known section/field are a
	// load error, never silently routed to a best-guess section.
	cfg := &Config{}
	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("search.docs_path", defaults.Search.DocsPath)
	v.SetDefault("search.file_patterns", defaults.Search.FilePatterns)
	v.SetDefault("search.max_patterns_per_query", defaults.Search.MaxPatternsPerQuery)
	v.SetDefault("search.max_matches_per_file", defaults.Search.MaxMatchesPerFile)
	v.SetDefault("search.case_sensitive", defaults.Search.CaseSensitive)

	v.SetDefault("tokens.encoding", defaults.Tokens.Encoding)
	v.SetDefault("tokens.context_window_tokens", defaults.Tokens.ContextWindowTokens)
	v.SetDefault("tokens.max_context_tokens", defaults.Tokens.MaxContextTokens)
	v.SetDefault("tokens.max_file_tokens", defaults.Tokens.MaxFileTokens)

	v.SetDefault("text_processing.chunk_size", defaults.TextProcessing.ChunkSize)
	v.SetDefault("text_processing.chunk_overlap", defaults.TextProcessing.ChunkOverlap)
	v.SetDefault("text_processing.merge_overlapping_windows", defaults.TextProcessing.MergeOverlappingWindows)

	v.SetDefault("llm.enabled", defaults.LLM.Enabled)
	v.SetDefault("llm.model", defaults.LLM.Model)
	v.SetDefault("llm.temperature", defaults.LLM.Temperature)
	v.SetDefault("llm.pattern_generation_prompt", defaults.LLM.PatternPrompt)
}

// LoadConfig is a convenience function that creates a loader and loads config.
// It uses the current working directory as the root.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
