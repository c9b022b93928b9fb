package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goldengen/backend/config"
	"github.com/goldengen/backend/internal/service"
)

// ConfigHandler 配置信息处理器
type ConfigHandler struct {
	cfg *config.Config
}

// NewConfigHandler 创建配置处理器
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// Get 返回前端需要的运行配置
// 只暴露是否配置了 API Key，绝不返回密钥本身
func (h *ConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"mode":               h.cfg.Server.Mode,
		"model":              h.cfg.LLM.Model,
		"api_key_configured": h.cfg.LLM.APIKey != "",
		"max_num_goldens":    service.MaxNumGoldens,
	})
}
