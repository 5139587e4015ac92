package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"eduforum_backend/internal/model"
	"eduforum_backend/internal/repository"
	"eduforum_backend/internal/util"
	"eduforum_backend/pkg/logger"
	"eduforum_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const maxQuestionTags = 5

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
	Moderation   *ModerationService
}

func NewQuestionService(questionRepo *repository.QuestionRepository, answerRepo *repository.AnswerRepository, moderation *ModerationService) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
		Moderation:   moderation,
	}
}

type QuestionRequest struct {
	Title   string   `json:"title" binding:"required"`
	Details string   `json:"details" binding:"required"`
	Subject string   `json:"subject" binding:"required"`
	Grade   string   `json:"grade" binding:"required"`
	Tags    []string `json:"tags"`
}

type QuestionResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	Subject   string    `json:"subject"`
	Grade     string    `json:"grade"`
	Tags      []string  `json:"tags"`
	LikeCount int       `json:"like_count"`
	Author    string    `json:"author"`
	AuthorID  uint      `json:"author_id"`
	LikedByMe bool      `json:"liked_by_me"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FieldErrors 表单校验错误，按字段返回给前端内联展示
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// validate 与前端提问表单的校验规则保持一致
func (req *QuestionRequest) validate() error {
	errs := FieldErrors{}

	if strings.TrimSpace(req.Title) == "" {
		errs["title"] = "Title is required"
	} else if utf8.RuneCountInString(req.Title) < 15 {
		errs["title"] = "Title should be at least 15 characters"
	}

	if strings.TrimSpace(req.Details) == "" {
		errs["details"] = "Question details are required"
	} else if utf8.RuneCountInString(req.Details) < 30 {
		errs["details"] = "Please provide more details (at least 30 characters)"
	}

	if !model.ValidSubject(req.Subject) {
		errs["subject"] = "Subject is required"
	}
	if !model.ValidGrade(req.Grade) {
		errs["grade"] = "Grade is required"
	}
	if len(req.Tags) > maxQuestionTags {
		errs["tags"] = "Add up to 5 tags"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func joinTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	return strings.Join(cleaned, ",")
}

func splitTags(tags string) []string {
	if tags == "" {
		return []string{}
	}
	return strings.Split(tags, ",")
}

func (s *QuestionService) toResponse(q *model.Question, likedByMe bool) *QuestionResponse {
	return &QuestionResponse{
		ID:        q.ID,
		Title:     q.Title,
		Details:   q.Details,
		Subject:   q.Subject,
		Grade:     q.Grade,
		Tags:      splitTags(q.Tags),
		LikeCount: q.LikeCount,
		Author:    q.User.FullName,
		AuthorID:  q.UserID,
		LikedByMe: likedByMe,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// CreateQuestion 先过表单校验，再过审核门。
// 审核服务故障 fail-open：记日志放行，不挡学生提问。
func (s *QuestionService) CreateQuestion(userID uint, req QuestionRequest) (*model.Question, ModerationStatus, error) {
	if err := req.validate(); err != nil {
		return nil, "", err
	}

	status := s.Moderation.ModerateQuestion(req.Title + "\n" + req.Details)
	if status.Blocks() {
		return nil, status, util.ErrQuestionRejected
	}
	if status == ModerationError {
		logger.Log.Warn("Moderation unavailable, accepting question",
			zap.Uint("userID", userID))
	}

	question := &model.Question{
		UserID:  userID,
		Title:   req.Title,
		Details: req.Details,
		Subject: req.Subject,
		Grade:   req.Grade,
		Tags:    joinTags(req.Tags),
	}

	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, status, err
	}
	return question, status, nil
}

func (s *QuestionService) GetQuestions(page, limit int, subject, grade, search, sort string, viewerID uint) ([]QuestionResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	questions, total, err := s.QuestionRepo.FindWithFilters((page-1)*limit, limit, subject, grade, search, sort)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		likedByMe := false
		if viewerID != 0 {
			likedByMe, _ = s.QuestionRepo.HasLiked(viewerID, questions[i].ID)
		}
		responses = append(responses, *s.toResponse(&questions[i], likedByMe))
	}
	return responses, total, nil
}

func (s *QuestionService) GetQuestionDetail(questionID, viewerID uint) (*QuestionResponse, error) {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		return nil, util.ErrQuestionNotFound
	}

	likedByMe := false
	if viewerID != 0 {
		likedByMe, _ = s.QuestionRepo.HasLiked(viewerID, questionID)
	}
	return s.toResponse(question, likedByMe), nil
}

// UpdateQuestion 仅作者本人可编辑
func (s *QuestionService) UpdateQuestion(userID, questionID uint, req QuestionRequest) (*model.Question, error) {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		return nil, util.ErrQuestionNotFound
	}
	if question.UserID != userID {
		return nil, util.ErrPermissionDenied
	}

	if err := req.validate(); err != nil {
		return nil, err
	}

	question.Title = req.Title
	question.Details = req.Details
	question.Subject = req.Subject
	question.Grade = req.Grade
	question.Tags = joinTags(req.Tags)

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) DeleteQuestion(userID, questionID uint) error {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		return util.ErrQuestionNotFound
	}
	if question.UserID != userID {
		return util.ErrPermissionDenied
	}
	return s.QuestionRepo.Delete(questionID)
}

// ToggleLike 切换点赞并返回对账后的最新计数
func (s *QuestionService) ToggleLike(questionID, userID uint) (bool, int64, error) {
	if _, err := s.QuestionRepo.FindByID(questionID); err != nil {
		return false, 0, util.ErrQuestionNotFound
	}

	liked, count, err := s.QuestionRepo.ToggleLike(userID, questionID)
	if err != nil {
		logger.Log.Error("Question like reconciliation failed",
			zap.Uint("questionID", questionID), zap.Uint("userID", userID), zap.Error(err))
		return false, 0, err
	}

	result := "unliked"
	if liked {
		result = "liked"
	}
	monitoring.VoteReconciliations.WithLabelValues("question", result).Inc()

	return liked, count, nil
}
