package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"k8s.io/klog/v2"

	"github.com/goldengen/backend/config"
)

// ChatModel 对话模型的最小接口，便于在测试中替换
type ChatModel interface {
	Chat(ctx context.Context, messages []*schema.Message) (string, error)
}

// Client 基于 Eino OpenAI ChatModel 的 LLM 客户端
type Client struct {
	chatModel model.ToolCallingChatModel
	modelName string
}

// NewClient 创建 LLM 客户端
// API Key、BaseURL、模型名均来自显式配置，不在调用时读取进程环境
func NewClient(cfg *config.Config) (*Client, error) {
	klog.V(6).Infof("[LLM] 创建 OpenAI ChatModel: model=%s, baseURL=%s", cfg.LLM.Model, cfg.LLM.APIURL)

	modelConfig := &openai.ChatModelConfig{
		APIKey: cfg.LLM.APIKey,
		Model:  cfg.LLM.Model,
	}
	if cfg.LLM.APIURL != "" {
		modelConfig.BaseURL = cfg.LLM.APIURL
	}
	if cfg.LLM.MaxTokens > 0 {
		maxTokens := cfg.LLM.MaxTokens
		modelConfig.MaxTokens = &maxTokens
	}

	chatModel, err := openai.NewChatModel(context.Background(), modelConfig)
	if err != nil {
		klog.Errorf("[LLM] 创建 ChatModel 失败: %v", err)
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	return &Client{
		chatModel: chatModel,
		modelName: cfg.LLM.Model,
	}, nil
}

// Chat 发送一轮对话请求，返回模型文本输出
func (c *Client) Chat(ctx context.Context, messages []*schema.Message) (string, error) {
	klog.V(6).Infof("[LLM] Chat 请求: model=%s, messages=%d", c.modelName, len(messages))

	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		klog.Errorf("[LLM] Generate 失败: %v", err)
		return "", err
	}
	if resp == nil || resp.Content == "" {
		return "", fmt.Errorf("no response from LLM")
	}

	klog.V(6).Infof("[LLM] Chat 完成: responseLength=%d", len(resp.Content))
	return resp.Content, nil
}

// ModelName 当前使用的模型名称
func (c *Client) ModelName() string {
	return c.modelName
}
