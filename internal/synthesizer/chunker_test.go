package synthesizer

import (
	"strings"
	"testing"
)

func TestChunkTextEmpty(t *testing.T) {
	if chunks := chunkText("   \n\t ", 10, 2); chunks != nil {
		t.Fatalf("expected nil chunks, got %d", len(chunks))
	}
}

func TestChunkTextSingleChunk(t *testing.T) {
	chunks := chunkText("one two three", 10, 2)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "one two three" || chunks[0].Index != 0 {
		t.Fatalf("unexpected chunk: %+v", chunks[0])
	}
}

func TestChunkTextOverlap(t *testing.T) {
	words := make([]string, 10)
	for i := range words {
		words[i] = string(rune('a' + i))
	}
	chunks := chunkText(strings.Join(words, " "), 4, 2)

	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	// 步长为 size-overlap=2，相邻块尾部与头部应有两个词重叠
	if chunks[0].Text != "a b c d" || chunks[1].Text != "c d e f" {
		t.Fatalf("unexpected overlap: %q / %q", chunks[0].Text, chunks[1].Text)
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Fatalf("chunk %d has index %d", i, c.Index)
		}
		if c.ID == "" {
			t.Fatalf("chunk %d missing id", i)
		}
	}
}

func TestChunkTextOverlapGEQSize(t *testing.T) {
	// overlap >= size 时步长钳制为 1，不得死循环
	chunks := chunkText("a b c", 2, 5)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
}
