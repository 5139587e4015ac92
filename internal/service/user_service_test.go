package service

import (
	"testing"

	"eduforum_backend/internal/config"
	"eduforum_backend/internal/model"
	"eduforum_backend/internal/repository"
	"eduforum_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T, db *gorm.DB) *UserService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()
	return NewUserService(repository.NewUserRepository(db), NewStorageService(cfg))
}

func seedStudentWithProfile(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := seedUser(t, db, "alice", model.Student)
	profile := &model.StudentProfile{UserID: user.ID, Grade: "Grade 10", SchoolName: "Central High"}
	require.NoError(t, db.Create(profile).Error)
	return user
}

func TestGetProfileStudentVariant(t *testing.T) {
	db := setupDB(t)
	svc := newUserService(t, db)
	user := seedStudentWithProfile(t, db)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Student, profile.Role)
	assert.Equal(t, "Grade 10", profile.Grade)
	assert.Equal(t, "Central High", profile.SchoolName)
}

func TestGetProfileTeacherVariant(t *testing.T) {
	db := setupDB(t)
	svc := newUserService(t, db)

	user := seedUser(t, db, "teach", model.Teacher)
	require.NoError(t, db.Create(&model.TeacherProfile{UserID: user.ID, SchoolName: "North High"}).Error)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Teacher, profile.Role)
	assert.Empty(t, profile.Grade)
	assert.Equal(t, "North High", profile.SchoolName)
}

func TestGetProfileMissingUser(t *testing.T) {
	db := setupDB(t)
	svc := newUserService(t, db)

	_, err := svc.GetProfile(9999)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUpdateProfilePartialFields(t *testing.T) {
	db := setupDB(t)
	svc := newUserService(t, db)
	user := seedStudentWithProfile(t, db)

	// 只改年级，其余字段保持不变
	profile, err := svc.UpdateProfile(user.ID, ProfileUpdateRequest{Grade: "Grade 11"})
	require.NoError(t, err)
	assert.Equal(t, "Grade 11", profile.Grade)
	assert.Equal(t, "Central High", profile.SchoolName)
	assert.Equal(t, "alice", profile.FullName)

	profile, err = svc.UpdateProfile(user.ID, ProfileUpdateRequest{FullName: "Alice Zhang", SchoolName: "South High"})
	require.NoError(t, err)
	assert.Equal(t, "Alice Zhang", profile.FullName)
	assert.Equal(t, "South High", profile.SchoolName)
	assert.Equal(t, "Grade 11", profile.Grade)
}

func TestUpdateProfileRejectsUnknownGrade(t *testing.T) {
	db := setupDB(t)
	svc := newUserService(t, db)
	user := seedStudentWithProfile(t, db)

	_, err := svc.UpdateProfile(user.ID, ProfileUpdateRequest{Grade: "Grade 13"})
	assert.ErrorIs(t, err, util.ErrInvalidGrade)
}
