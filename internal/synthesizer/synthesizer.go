// Package synthesizer 基于 LLM 的合成样例生成器
// 支持两种方式：按风格配置从零生成，或基于文档内容生成
package synthesizer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cloudwego/eino/schema"
	"k8s.io/klog/v2"

	"github.com/goldengen/backend/internal/model"
	"github.com/goldengen/backend/internal/pkg/llm"
	"github.com/goldengen/backend/internal/synthesizer/extract"
)

// Synthesizer 合成器
type Synthesizer struct {
	chat      llm.ChatModel
	extractor *extract.Extractor
	opts      Options
}

// New 创建合成器
func New(chat llm.ChatModel, opts Options) *Synthesizer {
	return &Synthesizer{
		chat:      chat,
		extractor: extract.NewExtractor(),
		opts:      opts.withDefaults(),
	}
}

// GenerateFromScratch 按风格配置生成 numGoldens 条样例
// 返回的样例只填充 Input 字段，条数不超过 numGoldens
func (s *Synthesizer) GenerateFromScratch(ctx context.Context, styling StylingConfig, numGoldens int) ([]model.Golden, error) {
	if numGoldens <= 0 {
		return nil, fmt.Errorf("num goldens must be positive, got %d", numGoldens)
	}
	klog.V(6).Infof("[Synthesizer] 从零生成: numGoldens=%d, task=%q", numGoldens, styling.Task)

	payloads, err := s.requestGoldens(ctx, scratchSystemPrompt, buildScratchPrompt(styling, numGoldens))
	if err != nil {
		return nil, err
	}

	if len(payloads) > numGoldens {
		payloads = payloads[:numGoldens]
	}
	goldens := make([]model.Golden, 0, len(payloads))
	for _, p := range payloads {
		goldens = append(goldens, model.Golden{Input: p.Input})
	}

	klog.V(6).Infof("[Synthesizer] 从零生成完成: goldens=%d", len(goldens))
	return goldens, nil
}

// GenerateFromDocs 基于文档生成样例
// 每个文档提取文本后按滑动窗口切块，逐块请求生成
// 所有块都未产出样例时返回空切片，不视为错误
func (s *Synthesizer) GenerateFromDocs(ctx context.Context, documentPaths []string) ([]model.Golden, error) {
	if len(documentPaths) == 0 {
		return nil, ErrNoDocuments
	}
	klog.V(6).Infof("[Synthesizer] 文档生成: documents=%d", len(documentPaths))

	goldens := make([]model.Golden, 0)
	for _, path := range documentPaths {
		text, err := s.extractor.Extract(path)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", filepath.Base(path), err)
		}

		chunks := chunkText(text, s.opts.ChunkSize, s.opts.ChunkOverlap)
		if len(chunks) == 0 {
			klog.V(6).Infof("[Synthesizer] 文档无有效文本，跳过: %s", filepath.Base(path))
			continue
		}

		sourceFile := filepath.Base(path)
		for _, chunk := range chunks {
			payloads, err := s.requestGoldens(ctx, docsSystemPrompt, buildDocsPrompt(chunk.Text, s.opts.GoldensPerContext))
			if err != nil {
				return nil, fmt.Errorf("generate from %s: %w", sourceFile, err)
			}
			for _, p := range payloads {
				goldens = append(goldens, model.Golden{
					Input:          p.Input,
					ExpectedOutput: p.ExpectedOutput,
					Context:        chunk.Text,
					SourceFile:     sourceFile,
					AdditionalMetadata: map[string]any{
						"chunk_id":    chunk.ID,
						"chunk_index": chunk.Index,
					},
				})
			}
		}
	}

	klog.V(6).Infof("[Synthesizer] 文档生成完成: goldens=%d", len(goldens))
	return goldens, nil
}

// requestGoldens 发送一轮生成请求并解析输出
// 输出无法解析时在 MaxRepairAttempts 轮内把解析错误回给模型要求重新输出
func (s *Synthesizer) requestGoldens(ctx context.Context, systemPrompt, userPrompt string) ([]goldenPayload, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: userPrompt},
	}

	var lastErr error
	for attempt := 0; attempt <= s.opts.MaxRepairAttempts; attempt++ {
		raw, err := s.chat.Chat(ctx, messages)
		if err != nil {
			return nil, fmt.Errorf("chat failed: %w", err)
		}

		payloads, parseErr := parseGoldens(raw)
		if parseErr == nil {
			return payloads, nil
		}
		lastErr = parseErr

		klog.V(6).Infof("[Synthesizer] 输出解析失败，请求修复: attempt=%d, err=%v", attempt+1, parseErr)
		messages = append(messages,
			&schema.Message{Role: schema.Assistant, Content: raw},
			&schema.Message{Role: schema.User, Content: buildRepairPrompt(parseErr)},
		)
	}
	return nil, lastErr
}
