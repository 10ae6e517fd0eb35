package analysis

import (
	"fmt"
	"strings"
)

// maxFragmentSize caps the byte size of one content fragment sent to the
// model in a single message.
const maxFragmentSize = 500_000

// ChunkContent splits content into fragments no larger than maxSize bytes,
// cutting only at line boundaries. A single line larger than maxSize is kept
// whole in its own fragment rather than truncated.
func ChunkContent(content string, maxSize int) []string {
	if len(content) <= maxSize {
		return []string{content}
	}

	var chunks []string
	var current strings.Builder

	for _, line := range splitLines(content) {
		if current.Len()+len(line) > maxSize {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
		}
		current.WriteString(line)
		if current.Len() > maxSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// PartName labels a fragment of a chunked file. Unchunked files keep their
// plain name.
func PartName(filename string, index, total int) string {
	if total == 1 {
		return filename
	}

	return fmt.Sprintf("%s (Part %d/%d)", filename, index+1, total)
}

// splitLines splits content keeping the trailing newline on each line, so
// rejoining the fragments reproduces the input byte for byte.
func splitLines(content string) []string {
	var lines []string
	for len(content) > 0 {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}

	return lines
}
