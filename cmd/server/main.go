package main

import (
	"flag"
	"log"
	"os"

	"k8s.io/klog/v2"

	"github.com/goldengen/backend/config"
	"github.com/goldengen/backend/internal/handler"
	"github.com/goldengen/backend/internal/pkg/database"
	"github.com/goldengen/backend/internal/pkg/llm"
	"github.com/goldengen/backend/internal/repository"
	"github.com/goldengen/backend/internal/router"
	"github.com/goldengen/backend/internal/service"
	"github.com/goldengen/backend/internal/synthesizer"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	if err := os.MkdirAll(cfg.Data.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	if cfg.LLM.APIKey == "" {
		klog.Warning("未配置 OPENAI_API_KEY，生成请求将会失败")
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化 LLM 客户端与合成器
	llmClient, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	synth := synthesizer.New(llmClient, synthesizer.Options{
		ChunkSize:         cfg.Synthesizer.ChunkSize,
		ChunkOverlap:      cfg.Synthesizer.ChunkOverlap,
		GoldensPerContext: cfg.Synthesizer.GoldensPerContext,
		MaxRepairAttempts: cfg.Synthesizer.MaxRepairAttempts,
	})

	// 初始化 Repository / Service / Handler
	recordRepo := repository.NewGenerationRecordRepository(db)
	generationService := service.NewGenerationService(cfg, synth, recordRepo)
	generationHandler := handler.NewGenerationHandler(generationService)
	configHandler := handler.NewConfigHandler(cfg)

	// 设置路由
	r := router.Setup(cfg, generationHandler, configHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
