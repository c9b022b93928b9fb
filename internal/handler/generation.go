package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/goldengen/backend/internal/service"
	"github.com/goldengen/backend/internal/synthesizer"
)

// GenerationHandler 生成接口处理器
type GenerationHandler struct {
	service *service.GenerationService
}

// NewGenerationHandler 创建生成处理器
func NewGenerationHandler(service *service.GenerationService) *GenerationHandler {
	return &GenerationHandler{service: service}
}

// StylingRequest 风格配置生成请求
type StylingRequest struct {
	InputFormat          string `json:"input_format" binding:"required"`
	ExpectedOutputFormat string `json:"expected_output_format" binding:"required"`
	Task                 string `json:"task" binding:"required"`
	Scenario             string `json:"scenario" binding:"required"`
	NumGoldens           int    `json:"num_goldens" binding:"required,min=1,max=50"`
}

// GenerateFromStyling 按风格配置生成合成样例
func (h *GenerationHandler) GenerateFromStyling(c *gin.Context) {
	var req StylingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	styling := synthesizer.StylingConfig{
		InputFormat:          req.InputFormat,
		ExpectedOutputFormat: req.ExpectedOutputFormat,
		Task:                 req.Task,
		Scenario:             req.Scenario,
	}

	result, err := h.service.GenerateFromStyling(c.Request.Context(), styling, req.NumGoldens)
	if err != nil {
		if errors.Is(err, service.ErrInvalidNumGoldens) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		klog.Errorf("[Generation] 风格配置生成失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("error generating synthetic data: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goldens":   result.Goldens,
		"count":     len(result.Goldens),
		"filename":  result.Filename,
		"record_id": result.RecordID,
	})
}

// GenerateFromDocuments 基于上传文档生成合成样例
// multipart 表单，字段名 files，可多个
func (h *GenerationHandler) GenerateFromDocuments(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one file is required"})
		return
	}

	files := make([]service.UploadedFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("open upload %s: %v", fh.Filename, err)})
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("read upload %s: %v", fh.Filename, err)})
			return
		}
		files = append(files, service.UploadedFile{Name: fh.Filename, Content: content})
	}

	result, err := h.service.GenerateFromDocuments(c.Request.Context(), files)
	if err != nil {
		klog.Errorf("[Generation] 文档生成失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("error generating synthetic data: %v", err),
			"hint":  "make sure you have the required API key set if needed",
		})
		return
	}

	if result.Empty {
		c.JSON(http.StatusOK, gin.H{
			"goldens": result.Goldens,
			"count":   0,
			"warning": "no synthetic data was generated, the documents may not have been processed properly",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"goldens":   result.Goldens,
		"count":     len(result.Goldens),
		"filename":  result.Filename,
		"record_id": result.RecordID,
	})
}

// List 历史记录列表
func (h *GenerationHandler) List(c *gin.Context) {
	records, err := h.service.ListRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get 单条历史记录
func (h *GenerationHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	record, err := h.service.GetRecord(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// Download 下载历史记录的导出 JSON
func (h *GenerationHandler) Download(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	record, err := h.service.GetRecord(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+record.Filename)
	c.Data(http.StatusOK, "application/json", []byte(record.Export))
}

// Delete 删除历史记录
func (h *GenerationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.DeleteRecord(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
