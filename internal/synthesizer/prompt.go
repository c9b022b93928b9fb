package synthesizer

import (
	"fmt"
	"strings"
)

const scratchSystemPrompt = `You are a synthetic data generator for evaluating language model applications.
You produce realistic example inputs ("goldens") that match a user-supplied styling configuration.
Always respond with a JSON array and nothing else: no prose, no markdown fences.
Each element must be an object with a single non-empty string field "input".`

const docsSystemPrompt = `You are a synthetic data generator for evaluating language model applications.
You are given a passage from a source document. Produce question/answer style examples ("goldens")
that are fully answerable from the passage alone.
Always respond with a JSON array and nothing else: no prose, no markdown fences.
Each element must be an object with two non-empty string fields: "input" and "expected_output".`

// buildScratchPrompt 组装从零生成的用户提示词
func buildScratchPrompt(styling StylingConfig, numGoldens int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly %d synthetic examples.\n\n", numGoldens)
	if styling.Task != "" {
		fmt.Fprintf(&b, "Task: %s\n", styling.Task)
	}
	if styling.Scenario != "" {
		fmt.Fprintf(&b, "Scenario: %s\n", styling.Scenario)
	}
	if styling.InputFormat != "" {
		fmt.Fprintf(&b, "Input format: %s\n", styling.InputFormat)
	}
	if styling.ExpectedOutputFormat != "" {
		fmt.Fprintf(&b, "Expected output format (for context only, do not generate outputs): %s\n", styling.ExpectedOutputFormat)
	}
	b.WriteString("\nReturn a JSON array of objects, each with a single field \"input\".")
	return b.String()
}

// buildDocsPrompt 组装基于文档上下文的用户提示词
func buildDocsPrompt(contextText string, numGoldens int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly %d examples grounded in the passage below.\n\n", numGoldens)
	b.WriteString("Passage:\n\"\"\"\n")
	b.WriteString(contextText)
	b.WriteString("\n\"\"\"\n\n")
	b.WriteString("Return a JSON array of objects, each with fields \"input\" and \"expected_output\".")
	return b.String()
}

// buildRepairPrompt 模型输出无法解析时的修复提示词
func buildRepairPrompt(parseErr error) string {
	return fmt.Sprintf("Your previous response could not be parsed as JSON (%v). "+
		"Respond again with only the JSON array, no other text.", parseErr)
}
