package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the OpenAI API base URL.
const DefaultBaseURL = "https://api.openai.com/v1"

// ErrNoAPIKey indicates no API key was supplied or found in the environment.
var ErrNoAPIKey = errors.New("no OpenAI API key available")

// OpenAIGenerator generates search patterns via the OpenAI chat completions
// API. The model replies with one pattern per line.
type OpenAIGenerator struct {
	model       string
	temperature float64
	prompt      string
	apiKey      string
	baseURL     string
	client      *http.Client
}

// Option configures an OpenAIGenerator.
type Option func(*OpenAIGenerator)

// WithBaseURL overrides the API base URL. Useful for proxies and tests.
func WithBaseURL(baseURL string) Option {
	return func(g *OpenAIGenerator) {
		g.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithAPIKey supplies the API key directly instead of reading
// OPENAI_API_KEY from the environment.
func WithAPIKey(apiKey string) Option {
	return func(g *OpenAIGenerator) {
		g.apiKey = apiKey
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(g *OpenAIGenerator) {
		g.client = client
	}
}

// NewOpenAIGenerator creates a generator for the given model, sampling
// temperature, and prompt template. The template's {query} and
// {max_patterns} placeholders are substituted per call.
func NewOpenAIGenerator(model string, temperature float64, prompt string, opts ...Option) (*OpenAIGenerator, error) {
	g := &OpenAIGenerator{
		model:       model,
		temperature: temperature,
		prompt:      prompt,
		apiKey:      os.Getenv("OPENAI_API_KEY"),
		baseURL:     DefaultBaseURL,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return g, nil
}

// chatRequest represents the JSON request body for /chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse represents the JSON response from /chat/completions.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GeneratePatterns asks the model for search patterns and parses its reply
// as one pattern per line, capped at maxPatterns.
func (g *OpenAIGenerator) GeneratePatterns(ctx context.Context, query string, maxPatterns int) ([]string, error) {
	prompt := strings.NewReplacer(
		"{query}", query,
		"{max_patterns}", strconv.Itoa(maxPatterns),
	).Replace(g.prompt)

	reqBody := chatRequest{
		Model:       g.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: g.temperature,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := g.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pattern generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("pattern generation returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode pattern generation response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("pattern generation returned no choices")
	}

	patterns := ParsePatterns(chatResp.Choices[0].Message.Content, maxPatterns)
	if len(patterns) == 0 {
		return nil, fmt.Errorf("pattern generation returned no patterns")
	}
	return patterns, nil
}

// ParsePatterns splits a model reply into patterns, one per line, dropping
// blank lines and capping at maxPatterns.
func ParsePatterns(content string, maxPatterns int) []string {
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		patterns = append(patterns, line)
		if len(patterns) >= maxPatterns {
			break
		}
	}
	return patterns
}
