package synthesizer

import "errors"

var (
	// ErrMalformedOutput 模型输出在允许的修复轮数内仍无法解析为合法 JSON
	ErrMalformedOutput = errors.New("malformed model output")
	// ErrNoDocuments 文档生成模式下未提供任何文档路径
	ErrNoDocuments = errors.New("no documents provided")
	// ErrEmptyDocument 文档无法提取出任何文本内容
	ErrEmptyDocument = errors.New("document contains no extractable text")
)
