package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"eduforum_backend/internal/model"
	"eduforum_backend/internal/repository"
	"eduforum_backend/internal/util"
	"eduforum_backend/pkg/logger"
	"eduforum_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type AnswerService struct {
	AnswerRepo   *repository.AnswerRepository
	QuestionRepo *repository.QuestionRepository
	AI           *AIService
}

func NewAnswerService(answerRepo *repository.AnswerRepository, questionRepo *repository.QuestionRepository, ai *AIService) *AnswerService {
	return &AnswerService{
		AnswerRepo:   answerRepo,
		QuestionRepo: questionRepo,
		AI:           ai,
	}
}

type AnswerRequest struct {
	AnswerText string `json:"answer_text" binding:"required"`
}

type AnswerResponse struct {
	ID           uint      `json:"id"`
	QuestionID   uint      `json:"question_id"`
	AnswerText   string    `json:"answer_text"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	IsVerified   bool      `json:"is_verified"`
	Author       string    `json:"author"`
	AuthorID     uint      `json:"author_id"`
	MyVote       int       `json:"my_vote"` // +1/-1/0
	CreatedAt    time.Time `json:"created_at"`
}

func (s *AnswerService) toResponse(a *model.Answer, myVote int) AnswerResponse {
	return AnswerResponse{
		ID:           a.ID,
		QuestionID:   a.QuestionID,
		AnswerText:   a.AnswerText,
		LikeCount:    a.LikeCount,
		DislikeCount: a.DislikeCount,
		IsVerified:   a.IsVerified,
		Author:       a.User.FullName,
		AuthorID:     a.UserID,
		MyVote:       myVote,
		CreatedAt:    a.CreatedAt,
	}
}

// ListByQuestion 按 like_count 降序返回问题下的全部回答
func (s *AnswerService) ListByQuestion(questionID, viewerID uint) ([]AnswerResponse, error) {
	answers, err := s.AnswerRepo.FindByQuestionID(questionID)
	if err != nil {
		return nil, err
	}

	responses := make([]AnswerResponse, 0, len(answers))
	for i := range answers {
		myVote := 0
		if viewerID != 0 {
			if vote, err := s.AnswerRepo.FindVote(viewerID, answers[i].ID); err == nil {
				myVote = vote.VoteType
			}
		}
		responses = append(responses, s.toResponse(&answers[i], myVote))
	}
	return responses, nil
}

func (s *AnswerService) SubmitAnswer(userID, questionID uint, req AnswerRequest) (*model.Answer, error) {
	if strings.TrimSpace(req.AnswerText) == "" {
		return nil, FieldErrors{"answer_text": "Answer cannot be empty"}
	}

	if _, err := s.QuestionRepo.FindByID(questionID); err != nil {
		return nil, util.ErrQuestionNotFound
	}

	answer := &model.Answer{
		QuestionID: questionID,
		UserID:     userID,
		AnswerText: req.AnswerText,
	}
	if err := s.AnswerRepo.Create(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *AnswerService) UpdateAnswer(userID, answerID uint, req AnswerRequest) (*model.Answer, error) {
	answer, err := s.AnswerRepo.FindByID(answerID)
	if err != nil {
		return nil, util.ErrAnswerNotFound
	}
	if answer.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	if strings.TrimSpace(req.AnswerText) == "" {
		return nil, FieldErrors{"answer_text": "Answer cannot be empty"}
	}

	answer.AnswerText = req.AnswerText
	if err := s.AnswerRepo.Update(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

func (s *AnswerService) DeleteAnswer(userID, answerID uint) error {
	answer, err := s.AnswerRepo.FindByID(answerID)
	if err != nil {
		return util.ErrAnswerNotFound
	}
	if answer.UserID != userID {
		return util.ErrPermissionDenied
	}
	return s.AnswerRepo.Delete(answerID)
}

// ToggleVote 赞/踩三态切换，返回对账后的两个计数和重新排序的回答列表
func (s *AnswerService) ToggleVote(answerID, userID uint, voteType int) (int64, int64, []AnswerResponse, error) {
	if voteType != model.VoteLike && voteType != model.VoteDislike {
		return 0, 0, nil, util.ErrInvalidVoteType
	}

	answer, err := s.AnswerRepo.FindByID(answerID)
	if err != nil {
		return 0, 0, nil, util.ErrAnswerNotFound
	}

	likes, dislikes, err := s.AnswerRepo.ToggleVote(userID, answerID, voteType)
	if err != nil {
		logger.Log.Error("Answer vote reconciliation failed",
			zap.Uint("answerID", answerID), zap.Uint("userID", userID), zap.Error(err))
		return 0, 0, nil, err
	}
	monitoring.VoteReconciliations.WithLabelValues("answer", "toggled").Inc()

	// 计数变了可能影响排序，重拉整个回答列表
	responses, err := s.ListByQuestion(answer.QuestionID, userID)
	if err != nil {
		return likes, dislikes, nil, err
	}
	return likes, dislikes, responses, nil
}

// VerifyAnswer 教师标记优质回答。只能置位，不能撤销。
func (s *AnswerService) VerifyAnswer(answerID uint, role model.UserRole) (*model.Answer, error) {
	if role != model.Teacher {
		return nil, util.ErrPermissionDenied
	}

	answer, err := s.AnswerRepo.FindByID(answerID)
	if err != nil {
		return nil, util.ErrAnswerNotFound
	}
	if answer.IsVerified {
		return nil, util.ErrAlreadyVerified
	}

	if err := s.AnswerRepo.Verify(answerID); err != nil {
		return nil, err
	}
	answer.IsVerified = true
	return answer, nil
}

const recommendPrompt = "Evaluate the given answers for the question. Consider clarity, completeness, upvotes, and teacher verification. Reply with the answer number that is the best."

// RecommendBest 让大模型在回答列表里选一个最佳，返回其 ID。
// 纯建议性：失败或解析不出序号返回 0，绝不影响回答展示。
func (s *AnswerService) RecommendBest(questionID uint) (uint, error) {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		return 0, util.ErrQuestionNotFound
	}

	answers, err := s.AnswerRepo.FindByQuestionID(questionID)
	if err != nil {
		return 0, err
	}
	if len(answers) == 0 {
		return 0, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\nAnswers:\n", question.Title)
	for i, a := range answers {
		verified := "No"
		if a.IsVerified {
			verified = "Yes"
		}
		fmt.Fprintf(&b, "%d. %s (Likes: %d, Verified: %s)\n", i+1, a.AnswerText, a.LikeCount, verified)
	}
	b.WriteString("\nWhich answer is the best? Reply with the number only.")

	reply, err := s.AI.Classify("recommendation", []AIChatMessage{
		{Role: "system", Content: recommendPrompt},
		{Role: "user", Content: b.String()},
	})
	if err != nil {
		logger.Log.Error("Best answer recommendation failed", zap.Uint("questionID", questionID), zap.Error(err))
		return 0, nil
	}

	ordinal := parseOrdinal(reply)
	if ordinal < 1 || ordinal > len(answers) {
		logger.Log.Warn("Recommendation ordinal out of range",
			zap.String("reply", reply), zap.Int("answers", len(answers)))
		return 0, nil
	}

	return answers[ordinal-1].ID, nil
}

// parseOrdinal 取回复开头的数字串，类似 JS parseInt 对尾部噪声的容忍
func parseOrdinal(reply string) int {
	trimmed := strings.TrimSpace(reply)
	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return 0
	}
	return n
}
