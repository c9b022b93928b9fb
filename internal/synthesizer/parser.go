package synthesizer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// goldenPayload 模型返回的单条样例
type goldenPayload struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// stripCodeFence 去掉模型输出外层的 markdown 代码围栏
// 兼容 ```json ... ``` 与 ``` ... ``` 两种写法
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// 丢弃围栏行上的语言标记（如 json）
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseGoldens 解析模型输出为样例列表
// input 为空的条目直接丢弃；整体不是 JSON 数组时返回错误
func parseGoldens(raw string) ([]goldenPayload, error) {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedOutput)
	}

	// 模型偶尔会在数组前后带说明文字，截取最外层的数组部分
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: no JSON array found", ErrMalformedOutput)
	}

	var payloads []goldenPayload
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payloads); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	valid := payloads[:0]
	for _, p := range payloads {
		if strings.TrimSpace(p.Input) == "" {
			continue
		}
		valid = append(valid, p)
	}
	return valid, nil
}
