package service

import (
	"strings"

	"eduforum_backend/pkg/logger"
	"eduforum_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// ModerationStatus 审核标签，固定词表，解析不出来一律归为 error
type ModerationStatus string

const (
	ModerationValid       ModerationStatus = "valid"
	ModerationValidSimple ModerationStatus = "valid-simple"
	ModerationUnclear     ModerationStatus = "unclear"
	ModerationOffTopic    ModerationStatus = "off-topic"
	ModerationSpam        ModerationStatus = "spam"
	ModerationError       ModerationStatus = "error"
)

// Blocks 仅 unclear/off-topic/spam 拦截提交；error 放行（fail-open）
func (s ModerationStatus) Blocks() bool {
	switch s {
	case ModerationUnclear, ModerationOffTopic, ModerationSpam:
		return true
	}
	return false
}

const moderationPrompt = `Analyze the question and classify it into one of these:
1. 'valid' - A properly structured academic question, even if it's simple.
2. 'valid-simple' - A short or easy academic question, but still valid.
3. 'unclear' - The question lacks clarity or makes no sense.
4. 'off-topic' - Not related to academic topics.
5. 'spam' - Contains inappropriate content or nonsense.

Only reject the question if it is unclear, off-topic, or spam. Simple questions should be allowed!`

type ModerationService struct {
	AI *AIService
}

func NewModerationService(ai *AIService) *ModerationService {
	return &ModerationService{AI: ai}
}

// ModerateQuestion 调用补全服务给问题打标签。
// 空白输入不走网络，直接判 unclear。
func (s *ModerationService) ModerateQuestion(text string) ModerationStatus {
	status := s.moderate(text)
	monitoring.ModerationResults.WithLabelValues(string(status)).Inc()
	return status
}

func (s *ModerationService) moderate(text string) ModerationStatus {
	if strings.TrimSpace(text) == "" {
		return ModerationUnclear
	}

	reply, err := s.AI.Classify("moderation", []AIChatMessage{
		{Role: "system", Content: moderationPrompt},
		{Role: "user", Content: text},
	})
	if err != nil {
		logger.Log.Error("Moderation service failed", zap.Error(err))
		return ModerationError
	}

	return parseModerationLabel(reply)
}

// parseModerationLabel 整条回复必须精确等于固定词表里的标签，
// 只容忍大小写、首尾空白和包裹的引号/句号，其余一律归为 error。
// 子串匹配会把 "invalid"、"not valid" 认成 valid，这里不允许。
func parseModerationLabel(reply string) ModerationStatus {
	normalized := strings.ToLower(strings.TrimSpace(reply))
	normalized = strings.Trim(normalized, "\"'`.")

	switch status := ModerationStatus(normalized); status {
	case ModerationValid, ModerationValidSimple, ModerationUnclear, ModerationOffTopic, ModerationSpam:
		return status
	}

	logger.Log.Warn("Unrecognized moderation label", zap.String("reply", reply))
	return ModerationError
}
