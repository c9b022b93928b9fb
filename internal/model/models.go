package model

import (
	"time"
)

// Golden 一条合成样例
// 由合成器生成后即视为只读，导出时仅序列化非空字段
type Golden struct {
	Input              string         `json:"input"`
	ExpectedOutput     string         `json:"expected_output,omitempty"`
	Context            string         `json:"context,omitempty"`
	AdditionalMetadata map[string]any `json:"additional_metadata,omitempty"`
	SourceFile         string         `json:"source_file,omitempty"`
}

// 生成模式
const (
	ModeStyling   = "styling"
	ModeDocuments = "documents"
)

// GenerationRecord 一次生成动作的落库记录
// 只保存完成后的导出产物，请求本身不持久化
type GenerationRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Mode        string    `json:"mode" gorm:"size:20;not null"` // styling, documents
	Summary     string    `json:"summary" gorm:"size:500"`
	GoldenCount int       `json:"golden_count"`
	Filename    string    `json:"filename" gorm:"size:100"`
	Export      string    `json:"-" gorm:"type:text"` // 导出的 JSON 数组
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
