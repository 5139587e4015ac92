package service

import (
	"testing"
	"time"

	"eduforum_backend/internal/config"
	"eduforum_backend/internal/model"
	"eduforum_backend/internal/repository"
	"eduforum_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterStudentCreatesProfile(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(t, db)

	user := &model.User{
		FullName: "Alice",
		Email:    "alice@test.local",
		Password: "plain-password",
		Role:     model.Teacher, // 请求里伪造角色也会被覆盖
	}
	profile := &model.StudentProfile{Grade: "Grade 10", SchoolName: "Central High"}

	require.NoError(t, svc.RegisterStudent(user, profile))
	assert.Equal(t, model.Student, user.Role)
	assert.NotEqual(t, "plain-password", user.Password)

	stored, err := svc.UserRepo.FindStudentProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grade 10", stored.Grade)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plain-password")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(t, db)

	first := &model.User{FullName: "Alice", Email: "alice@test.local", Password: "password-1"}
	require.NoError(t, svc.RegisterStudent(first, &model.StudentProfile{Grade: "Grade 10", SchoolName: "Central High"}))

	second := &model.User{FullName: "Other Alice", Email: "alice@test.local", Password: "password-2"}
	err := svc.RegisterTeacher(second, &model.TeacherProfile{SchoolName: "North High"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginIssuesParsableToken(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(t, db)

	user := &model.User{FullName: "Teach", Email: "teach@test.local", Password: "secret-password"}
	require.NoError(t, svc.RegisterTeacher(user, &model.TeacherProfile{SchoolName: "Central High"}))

	token, err := svc.Login("teach@test.local", "secret-password")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.Teacher, claims.Role)

	stored, err := svc.UserRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.False(t, stored.LastLogin.IsZero())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupDB(t)
	svc := newAuthService(t, db)

	user := &model.User{FullName: "Alice", Email: "alice@test.local", Password: "secret-password"}
	require.NoError(t, svc.RegisterStudent(user, &model.StudentProfile{Grade: "Grade 10", SchoolName: "Central High"}))

	_, err := svc.Login("alice@test.local", "wrong-password")
	assert.Error(t, err)

	_, err = svc.Login("nobody@test.local", "secret-password")
	assert.Error(t, err)
}
