package embed

import (
	"fmt"
	"os"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/saddle-tools/indexgen/internal/index"
)

// Chunk is a bounded unit of source text prepared for embedding, typically
// one function.
type Chunk struct {
	ID           string
	Text         string
	FilePath     string
	ChunkType    string // "function" or "file"
	FunctionName string
	StartLine    int
	EndLine      int
}

const (
	// functionWindowLines is the heuristic chunk size per function.
	functionWindowLines = 50
	// fileChunkMaxBytes bounds the whole-file fallback chunk.
	fileChunkMaxBytes = 10000
)

// ChunkFile splits one file into function-level chunks. When the index entry
// carries no structural facts the whole file becomes a single truncated
// chunk. Unreadable files yield nothing.
func ChunkFile(path string, fi *index.FileIndex) []Chunk {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	content := string(data)
	lines := strings.Split(content, "\n")

	if len(fi.Functions) == 0 && len(fi.Classes) == 0 {
		text := content
		if len(text) > fileChunkMaxBytes {
			text = text[:fileChunkMaxBytes]
		}
		return []Chunk{{
			ID:        chunkID(fi.Path) + "_file",
			Text:      text,
			FilePath:  fi.Path,
			ChunkType: "file",
			StartLine: 1,
			EndLine:   len(lines),
		}}
	}

	var chunks []Chunk
	for _, funcName := range fi.Functions {
		start, ok := findFunctionLine(lines, funcName)
		if !ok {
			continue
		}
		end := start + functionWindowLines
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, Chunk{
			ID:           chunkID(fi.Path + ":" + funcName),
			Text:         strings.Join(lines[start:end], "\n"),
			FilePath:     fi.Path,
			ChunkType:    "function",
			FunctionName: funcName,
			StartLine:    start + 1,
			EndLine:      end,
		})
	}
	return chunks
}

// findFunctionLine locates the declaration line for a function name using
// the same cross-language heuristic the chunk window uses.
func findFunctionLine(lines []string, funcName string) (int, bool) {
	defMarker := "def " + funcName
	fnMarker := "function " + funcName
	for i, line := range lines {
		if strings.Contains(line, defMarker) || strings.Contains(line, fnMarker) {
			return i, true
		}
	}
	return 0, false
}

// chunkID derives a stable 12-hex-char identifier from chunk content keys.
func chunkID(key string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(key))[:12]
}
