package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"eduforum_backend/internal/config"
	"eduforum_backend/internal/util"
	"eduforum_backend/pkg/monitoring"
)

// AIService 封装外部补全服务（OpenAI 兼容协议）。
// 聊天、审核、推荐三个功能走同一个端点，只是 system prompt 和解析方式不同。
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// UpdateConfig 配置热更新入口，用于密钥轮换
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

func (s *AIService) snapshot() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete 单次补全调用，purpose 仅用于指标标签
func (s *AIService) Complete(purpose, model string, messages []AIChatMessage) (string, error) {
	cfg := s.snapshot()

	reqBody := ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	monitoring.CompletionDuration.WithLabelValues(purpose).Observe(time.Since(start).Seconds())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", util.ErrAINoChoices
}

// Chat 走聊天模型
func (s *AIService) Chat(messages []AIChatMessage) (string, error) {
	return s.Complete("chat", s.snapshot().ChatModel, messages)
}

// Classify 走审核/推荐共用的分类模型
func (s *AIService) Classify(purpose string, messages []AIChatMessage) (string, error) {
	return s.Complete(purpose, s.snapshot().ModerationModel, messages)
}
