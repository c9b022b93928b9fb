package extract

import (
	"strings"
	"unicode/utf8"
)

// extractPlain 纯文本直接返回，非法 UTF-8 序列替换为占位符
func extractPlain(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return strings.ToValidUTF8(string(content), "�"), nil
	}
	return string(content), nil
}
