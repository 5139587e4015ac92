package service

import (
	"errors"

	"eduforum_backend/internal/config"
	"eduforum_backend/internal/model"
	"eduforum_backend/internal/repository"
	"eduforum_backend/internal/util"
	"eduforum_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

func (s *AuthService) hashPassword(user *model.User) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return nil
}

func (s *AuthService) checkEmailFree(email string) error {
	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// RegisterStudent 注册学生账号，用户与学生档案一起落库
func (s *AuthService) RegisterStudent(user *model.User, profile *model.StudentProfile) error {
	if err := s.checkEmailFree(user.Email); err != nil {
		return err
	}
	if err := s.hashPassword(user); err != nil {
		return err
	}
	user.Role = model.Student
	return s.UserRepo.CreateStudent(user, profile)
}

func (s *AuthService) RegisterTeacher(user *model.User, profile *model.TeacherProfile) error {
	if err := s.checkEmailFree(user.Email); err != nil {
		return err
	}
	if err := s.hashPassword(user); err != nil {
		return err
	}
	user.Role = model.Teacher
	return s.UserRepo.CreateTeacher(user, profile)
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	// 最近登录时间更新失败不影响登录
	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("Failed to update last login time", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
