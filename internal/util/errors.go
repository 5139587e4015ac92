package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrPermissionDenied = errors.New("permission denied")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
	ErrQuestionRejected = errors.New("question rejected by moderation")
	ErrAlreadyVerified  = errors.New("answer already verified")
	ErrInvalidVoteType  = errors.New("invalid vote type")
	ErrInvalidGrade     = errors.New("invalid grade")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrAINoChoices      = errors.New("AI returned no choices")
)
