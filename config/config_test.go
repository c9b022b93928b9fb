package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := loadConfig()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 200, cfg.Synthesizer.ChunkSize)
	assert.Equal(t, 40, cfg.Synthesizer.ChunkOverlap)
	assert.NotEmpty(t, cfg.Data.UploadDir)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "https://llm.example.com/v1")
	t.Setenv("OPENAI_MODEL_NAME", "gpt-4o-mini")
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/goldens")
	t.Setenv("PORT", "9090")

	cfg := loadConfig()
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "https://llm.example.com/v1", cfg.LLM.APIURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "mysql", cfg.Database.Type)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "3000"
  mode: release
llm:
  model: gpt-4.1
synthesizer:
  chunk_size: 120
  goldens_per_context: 3
`)
	require.NoError(t, os.WriteFile(path, content, 0644))
	t.Setenv("CONFIG_PATH", path)

	cfg := loadConfig()
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "gpt-4.1", cfg.LLM.Model)
	assert.Equal(t, 120, cfg.Synthesizer.ChunkSize)
	assert.Equal(t, 3, cfg.Synthesizer.GoldensPerContext)
	// 文件未覆盖的字段保持默认值
	assert.Equal(t, "sqlite", cfg.Database.Type)
}
