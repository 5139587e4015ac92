package service

import (
	"eduforum_backend/internal/model"
	"eduforum_backend/internal/repository"
	"eduforum_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 对话历史最多带多少轮进 prompt
const chatHistoryWindow = 10

const chatSystemPrompt = "You are EduBot, a friendly study assistant for school students. " +
	"Answer academic questions clearly and encourage the student to think. " +
	"Politely refuse anything unrelated to studying."

// 补全服务挂掉时的兜底回复，保证聊天界面永远有响应
const chatFallbackReply = "Sorry, an error occurred. Please try again."

type ChatService struct {
	ChatRepo *repository.ChatRepository
	AI       *AIService
}

func NewChatService(chatRepo *repository.ChatRepository, ai *AIService) *ChatService {
	return &ChatService{ChatRepo: chatRepo, AI: ai}
}

type ChatReply struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// Chat 带上会话内近期历史调用补全服务，成功的问答落库。
// 失败只记日志并返回兜底回复，不持久化。
func (s *ChatService) Chat(userID uint, sessionID, message string) (*ChatReply, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	history, err := s.ChatRepo.RecentExchanges(userID, sessionID, chatHistoryWindow)
	if err != nil {
		logger.Log.Error("Failed to load chat history", zap.Error(err))
		history = nil
	}

	messages := make([]AIChatMessage, 0, 2*len(history)+2)
	messages = append(messages, AIChatMessage{Role: "system", Content: chatSystemPrompt})
	for _, h := range history {
		messages = append(messages, AIChatMessage{Role: "user", Content: h.Question})
		messages = append(messages, AIChatMessage{Role: "assistant", Content: h.Answer})
	}
	messages = append(messages, AIChatMessage{Role: "user", Content: message})

	reply, err := s.AI.Chat(messages)
	if err != nil {
		logger.Log.Error("Chat completion failed", zap.Uint("userID", userID), zap.Error(err))
		return &ChatReply{SessionID: sessionID, Reply: chatFallbackReply}, nil
	}

	exchange := &model.ChatExchange{
		UserID:    userID,
		SessionID: sessionID,
		Question:  message,
		Answer:    reply,
	}
	if err := s.ChatRepo.CreateExchange(exchange); err != nil {
		logger.Log.Error("Failed to persist chat exchange", zap.Error(err))
	}

	return &ChatReply{SessionID: sessionID, Reply: reply}, nil
}

func (s *ChatService) History(userID uint, sessionID string) ([]model.ChatExchange, error) {
	return s.ChatRepo.RecentExchanges(userID, sessionID, chatHistoryWindow)
}

func (s *ChatService) Sessions(userID uint) ([]string, error) {
	return s.ChatRepo.SessionsByUser(userID)
}
