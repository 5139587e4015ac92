package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"eduforum_backend/internal/config"
	"eduforum_backend/internal/model"
	"eduforum_backend/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.StudentProfile{},
		&model.TeacherProfile{},
		&model.Question{},
		&model.Answer{},
		&model.QuestionVote{},
		&model.AnswerVote{},
		&model.ChatExchange{},
	))

	return db
}

// aiStub 起一个假补全服务，固定返回 reply，calls 记录请求次数
type aiStub struct {
	Service *AIService
	calls   int64
}

func (s *aiStub) Calls() int64 {
	return atomic.LoadInt64(&s.calls)
}

func newAIStub(t *testing.T, reply string) *aiStub {
	t.Helper()
	stub := &aiStub{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&stub.calls, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": reply}},
			},
		})
	}))
	t.Cleanup(srv.Close)

	stub.Service = NewAIService(config.AIConfig{
		BaseURL:         srv.URL,
		APIKey:          "test-key",
		ModerationModel: "test-model",
		ChatModel:       "test-model",
	})
	return stub
}

// newFailingAIStub 模拟补全服务故障（固定 500）
func newFailingAIStub(t *testing.T) *aiStub {
	t.Helper()
	stub := &aiStub{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&stub.calls, 1)
		http.Error(w, "upstream unavailable", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	stub.Service = NewAIService(config.AIConfig{
		BaseURL:         srv.URL,
		APIKey:          "test-key",
		ModerationModel: "test-model",
		ChatModel:       "test-model",
	})
	return stub
}

func seedUser(t *testing.T, db *gorm.DB, name string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		FullName: name,
		Email:    name + "@test.local",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedQuestion(t *testing.T, db *gorm.DB, userID uint, title string) *model.Question {
	t.Helper()
	question := &model.Question{
		UserID:  userID,
		Title:   title,
		Details: "details for " + title,
		Subject: "Mathematics",
		Grade:   "Grade 10",
	}
	require.NoError(t, db.Create(question).Error)
	return question
}

func seedAnswer(t *testing.T, db *gorm.DB, questionID, userID uint, text string) *model.Answer {
	t.Helper()
	answer := &model.Answer{
		QuestionID: questionID,
		UserID:     userID,
		AnswerText: text,
	}
	require.NoError(t, db.Create(answer).Error)
	return answer
}
