package repository

import (
	"fmt"
	"testing"

	"eduforum_backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{
		FullName: name,
		Email:    fmt.Sprintf("%s@test.local", name),
		Password: "hashed",
		Role:     model.Student,
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
