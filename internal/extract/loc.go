package extract

import (
	"os"
	"strings"

	"github.com/saddle-tools/indexgen/internal/lang"
)

// CountLinesOfCode counts non-empty, non-comment lines using the language's
// comment style. It does not require structural parsing to have succeeded.
func CountLinesOfCode(path string, style lang.CommentStyle) int {
	source, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return countLines(string(source), style)
}

func countLines(source string, style lang.CommentStyle) int {
	if style.TrackTripleQuotes {
		return countTripleQuoted(source, style)
	}
	return countDelimited(source, style)
}

// countTripleQuoted implements the Python heuristic: lines inside
// triple-quoted strings are treated as documentation, not code.
func countTripleQuoted(source string, style lang.CommentStyle) int {
	count := 0
	inString := false

	for _, line := range strings.Split(source, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if strings.Contains(stripped, `"""`) || strings.Contains(stripped, "'''") {
			quotes := `"""`
			if !strings.Contains(stripped, quotes) {
				quotes = "'''"
			}
			if strings.Count(stripped, quotes) == 1 {
				inString = !inString
			}
			if stripped != quotes {
				count++
			}
			continue
		}

		if inString {
			continue
		}
		if hasLinePrefix(stripped, style.LinePrefixes) {
			continue
		}
		count++
	}
	return count
}

// countDelimited implements the block-comment heuristic shared by C-style,
// SQL-style, and Lisp-style languages.
func countDelimited(source string, style lang.CommentStyle) int {
	count := 0
	inBlock := false
	start, end := style.BlockStart, style.BlockEnd

	for _, line := range strings.Split(source, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		if start != "" && strings.Contains(stripped, start) && strings.Contains(stripped, end) {
			// Block comment opened and closed on one line; count it only if
			// there is code outside the comment.
			before := strings.TrimSpace(strings.SplitN(stripped, start, 2)[0])
			afterParts := strings.Split(stripped, end)
			after := strings.TrimSpace(afterParts[len(afterParts)-1])
			if before != "" || after != "" {
				count++
			}
			continue
		}

		if start != "" && strings.Contains(stripped, start) {
			if before := strings.TrimSpace(strings.SplitN(stripped, start, 2)[0]); before != "" {
				count++
			}
			inBlock = true
			continue
		}

		if end != "" && strings.Contains(stripped, end) {
			inBlock = false
			parts := strings.Split(stripped, end)
			if after := strings.TrimSpace(parts[len(parts)-1]); after != "" {
				count++
			}
			continue
		}

		if inBlock {
			continue
		}
		if hasLinePrefix(stripped, style.LinePrefixes) {
			continue
		}
		count++
	}
	return count
}

func hasLinePrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}
