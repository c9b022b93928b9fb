package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"k8s.io/klog/v2"

	"github.com/goldengen/backend/config"
	"github.com/goldengen/backend/internal/model"
	"github.com/goldengen/backend/internal/repository"
	"github.com/goldengen/backend/internal/synthesizer"
)

// 导出文件名，与生成模式一一对应
const (
	StylingExportFilename   = "synthetic_data.json"
	DocumentsExportFilename = "synthetic_data_from_docs.json"
)

// ErrInvalidNumGoldens 样例数量超出 [1,50] 范围
var ErrInvalidNumGoldens = errors.New("num_goldens must be between 1 and 50")

// MaxNumGoldens 单次生成的样例数量上限
const MaxNumGoldens = 50

// Generator 合成器接口，便于在测试中替换
type Generator interface {
	GenerateFromScratch(ctx context.Context, styling synthesizer.StylingConfig, numGoldens int) ([]model.Golden, error)
	GenerateFromDocs(ctx context.Context, documentPaths []string) ([]model.Golden, error)
}

// UploadedFile 一个上传文件的名称与内容
type UploadedFile struct {
	Name    string
	Content []byte
}

// GenerationResult 一次生成动作的结果
// Empty 表示文档模式下合成器正常返回但没有产出任何样例
type GenerationResult struct {
	Goldens  []model.Golden `json:"goldens"`
	Export   []byte         `json:"-"`
	Filename string         `json:"filename,omitempty"`
	RecordID uint           `json:"record_id,omitempty"`
	Empty    bool           `json:"-"`
}

// GenerationService 生成服务
// 负责请求校验、上传文件的临时落盘与清理、导出序列化和历史记录落库
type GenerationService struct {
	cfg       *config.Config
	generator Generator
	records   repository.GenerationRecordRepository
}

// NewGenerationService 创建生成服务
func NewGenerationService(cfg *config.Config, generator Generator, records repository.GenerationRecordRepository) *GenerationService {
	return &GenerationService{
		cfg:       cfg,
		generator: generator,
		records:   records,
	}
}

// GenerateFromStyling 按风格配置生成
func (s *GenerationService) GenerateFromStyling(ctx context.Context, styling synthesizer.StylingConfig, numGoldens int) (*GenerationResult, error) {
	if numGoldens < 1 || numGoldens > MaxNumGoldens {
		return nil, ErrInvalidNumGoldens
	}

	goldens, err := s.generator.GenerateFromScratch(ctx, styling, numGoldens)
	if err != nil {
		return nil, err
	}

	result, err := s.buildResult(goldens, model.ModeStyling, summarizeStyling(styling), StylingExportFilename)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GenerateFromDocuments 基于上传文档生成
// 每个文件写入独立临时目录后交给合成器，目录在返回前（无论成败）删除
func (s *GenerationService) GenerateFromDocuments(ctx context.Context, files []UploadedFile) (*GenerationResult, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files uploaded")
	}

	tempDir, err := os.MkdirTemp(s.uploadRoot(), "golden-docs-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tempDir); err != nil {
			klog.Errorf("[Generation] 清理临时目录失败: dir=%s, err=%v", tempDir, err)
		}
	}()

	paths := make([]string, 0, len(files))
	for _, f := range files {
		name := filepath.Base(f.Name)
		if name == "." || name == string(filepath.Separator) || name == "" {
			return nil, fmt.Errorf("invalid file name: %q", f.Name)
		}
		path := filepath.Join(tempDir, name)
		if err := os.WriteFile(path, f.Content, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		klog.V(6).Infof("[Generation] 已落盘上传文件: %s (%d bytes)", name, len(f.Content))
		paths = append(paths, path)
	}

	goldens, err := s.generator.GenerateFromDocs(ctx, paths)
	if err != nil {
		return nil, err
	}

	// 空结果是合法结果：不报错，不落库，不提供下载
	if len(goldens) == 0 {
		return &GenerationResult{Goldens: []model.Golden{}, Empty: true}, nil
	}

	result, err := s.buildResult(goldens, model.ModeDocuments, summarizeFiles(files), DocumentsExportFilename)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// buildResult 序列化导出 JSON 并写入历史记录
// 导出保持合成器返回的顺序，空字段不出现在 JSON 中
func (s *GenerationService) buildResult(goldens []model.Golden, mode, summary, filename string) (*GenerationResult, error) {
	export, err := json.MarshalIndent(goldens, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}

	result := &GenerationResult{
		Goldens:  goldens,
		Export:   export,
		Filename: filename,
	}

	record := &model.GenerationRecord{
		Mode:        mode,
		Summary:     summary,
		GoldenCount: len(goldens),
		Filename:    filename,
		Export:      string(export),
	}
	if err := s.records.Create(record); err != nil {
		// 落库失败不影响本次生成结果
		klog.Errorf("[Generation] 保存生成记录失败: %v", err)
		return result, nil
	}
	result.RecordID = record.ID
	return result, nil
}

// ListRecords 历史记录（不含导出内容）
func (s *GenerationService) ListRecords() ([]model.GenerationRecord, error) {
	return s.records.List()
}

// GetRecord 单条历史记录
func (s *GenerationService) GetRecord(id uint) (*model.GenerationRecord, error) {
	return s.records.Get(id)
}

// DeleteRecord 删除历史记录
func (s *GenerationService) DeleteRecord(id uint) error {
	return s.records.Delete(id)
}

func (s *GenerationService) uploadRoot() string {
	dir := s.cfg.Data.UploadDir
	if dir == "" {
		return os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		klog.Errorf("[Generation] 创建上传目录失败，回退系统临时目录: %v", err)
		return os.TempDir()
	}
	return dir
}

func summarizeStyling(styling synthesizer.StylingConfig) string {
	summary := styling.Task
	if summary == "" {
		summary = styling.Scenario
	}
	return truncate(summary, 500)
}

func summarizeFiles(files []UploadedFile) string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Base(f.Name))
	}
	return truncate(strings.Join(names, ", "), 500)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
