package service

import (
	"eduforum_backend/internal/model"
	"eduforum_backend/internal/repository"
)

type DashboardService struct {
	UserRepo     *repository.UserRepository
	QuestionRepo *repository.QuestionRepository
	AnswerRepo   *repository.AnswerRepository
}

func NewDashboardService(userRepo *repository.UserRepository, questionRepo *repository.QuestionRepository, answerRepo *repository.AnswerRepository) *DashboardService {
	return &DashboardService{
		UserRepo:     userRepo,
		QuestionRepo: questionRepo,
		AnswerRepo:   answerRepo,
	}
}

type Dashboard struct {
	FullName       string             `json:"full_name"`
	QuestionsAsked int64              `json:"questions_asked"`
	AnswersGiven   int64              `json:"answers_given"`
	LikesReceived  int64              `json:"likes_received"`
	MyQuestions    []QuestionResponse `json:"my_questions"`
	LikedQuestions []QuestionResponse `json:"liked_questions"`
}

func (s *DashboardService) GetUserDashboard(userID uint) (*Dashboard, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	questionsAsked, err := s.QuestionRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	answersGiven, err := s.AnswerRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	// 收到的赞 = 本人问题的赞 + 本人回答的赞
	questionLikes, err := s.QuestionRepo.CountLikesReceived(userID)
	if err != nil {
		return nil, err
	}
	answerLikes, err := s.AnswerRepo.CountLikesReceived(userID)
	if err != nil {
		return nil, err
	}

	myQuestions, err := s.QuestionRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	likedQuestions, err := s.QuestionRepo.FindLikedByUser(userID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		FullName:       user.FullName,
		QuestionsAsked: questionsAsked,
		AnswersGiven:   answersGiven,
		LikesReceived:  questionLikes + answerLikes,
		MyQuestions:    make([]QuestionResponse, 0, len(myQuestions)),
		LikedQuestions: make([]QuestionResponse, 0, len(likedQuestions)),
	}

	for i := range myQuestions {
		dashboard.MyQuestions = append(dashboard.MyQuestions, questionSummary(&myQuestions[i]))
	}
	for i := range likedQuestions {
		dashboard.LikedQuestions = append(dashboard.LikedQuestions, questionSummary(&likedQuestions[i]))
	}

	return dashboard, nil
}

// questionSummary 列表用的精简响应（不带作者 Preload）
func questionSummary(q *model.Question) QuestionResponse {
	return QuestionResponse{
		ID:        q.ID,
		Title:     q.Title,
		Subject:   q.Subject,
		Grade:     q.Grade,
		Tags:      splitTags(q.Tags),
		LikeCount: q.LikeCount,
		AuthorID:  q.UserID,
		CreatedAt: q.CreatedAt,
	}
}
