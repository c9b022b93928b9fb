package synthesizer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// contextChunk 文档切分出的一个上下文块
type contextChunk struct {
	ID    string
	Index int
	Text  string
}

// chunkText 按词数滑动窗口切分文本，相邻窗口带重叠
func chunkText(text string, chunkSize, chunkOverlap int) []contextChunk {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	step := chunkSize - chunkOverlap
	if step <= 0 {
		step = 1
	}

	chunks := make([]contextChunk, 0)
	index := 0
	for i := 0; i < len(words); i += step {
		end := i + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, contextChunk{
			ID:    fmt.Sprintf("chunk_%s", uuid.New().String()[:8]),
			Index: index,
			Text:  strings.Join(words[i:end], " "),
		})
		index++
		if end >= len(words) {
			break
		}
	}
	return chunks
}
