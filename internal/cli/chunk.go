package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvp-joe/contextf/internal/text"
	"github.com/mvp-joe/contextf/internal/token"
)

var chunkJSON bool

// chunkCmd represents the chunk command
var chunkCmd = &cobra.Command{
	Use:   "chunk <file>",
	Short: "Split a file into token-budgeted line chunks",
	Long: `Chunk splits a file into chunks of approximately
text_processing.chunk_size tokens with text_processing.chunk_overlap tokens
of overlap, tracking the line range of every chunk.

Examples:
  contextf chunk README.md
  contextf chunk docs/guide.md --json
`,
	Args: cobra.ExactArgs(1),
	RunE: runChunk,
}

func init() {
	rootCmd.AddCommand(chunkCmd)
	chunkCmd.Flags().BoolVar(&chunkJSON, "json", false, "emit chunks as JSON")
}

func runChunk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	content := strings.ToValidUTF8(string(data), "�")

	counter, err := token.NewCounter(cfg.Tokens.Encoding)
	if err != nil {
		return err
	}

	chunker := text.NewChunker(counter, cfg.TextProcessing.ChunkSize, cfg.TextProcessing.ChunkOverlap)
	chunks := chunker.ChunkText(content)

	if chunkJSON {
		out, err := json.MarshalIndent(chunks, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal chunks: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for i, c := range chunks {
		fmt.Printf("--- chunk %d (lines %d-%d, %d tokens) ---\n%s\n\n", i+1, c.StartLine, c.EndLine, c.Tokens, c.Text)
	}
	return nil
}
