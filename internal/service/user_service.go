package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"eduforum_backend/internal/model"
	"eduforum_backend/internal/repository"
	"eduforum_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxAvatarSize = 2 << 20 // 2MB

// Profile 用户档案，按角色附带不同字段
// swagger:model Profile
type Profile struct {
	ID         uint           `json:"id"`
	FullName   string         `json:"full_name"`
	Email      string         `json:"email"`
	Role       model.UserRole `json:"role"`
	Avatar     string         `json:"avatar"`
	Grade      string         `json:"grade,omitempty"`
	SchoolName string         `json:"school_name,omitempty"`
	LastLogin  time.Time      `json:"last_login"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ProfileUpdateRequest 档案更新请求，空字段保持不变
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	FullName   string `json:"full_name"`
	Grade      string `json:"grade"`
	SchoolName string `json:"school_name"`
}

// UserService 处理用户档案相关的业务逻辑
type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, Storage: storage}
}

// GetProfile 获取用户档案，学生附带年级与学校，教师附带学校
func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	profile := &Profile{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}

	switch user.Role {
	case model.Student:
		sp, err := s.UserRepo.FindStudentProfile(userID)
		if err != nil {
			return nil, util.ErrProfileNotFound
		}
		profile.Grade = sp.Grade
		profile.SchoolName = sp.SchoolName
	case model.Teacher:
		tp, err := s.UserRepo.FindTeacherProfile(userID)
		if err != nil {
			return nil, util.ErrProfileNotFound
		}
		profile.SchoolName = tp.SchoolName
	}

	return profile, nil
}

// UpdateProfile 更新用户档案，邮箱与角色不可变更
func (s *UserService) UpdateProfile(userID uint, req ProfileUpdateRequest) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	if name := strings.TrimSpace(req.FullName); name != "" {
		user.FullName = name
		if err := s.UserRepo.Update(user); err != nil {
			return nil, err
		}
	}

	switch user.Role {
	case model.Student:
		sp, err := s.UserRepo.FindStudentProfile(userID)
		if err != nil {
			return nil, util.ErrProfileNotFound
		}
		changed := false
		if req.Grade != "" {
			if !model.ValidGrade(req.Grade) {
				return nil, util.ErrInvalidGrade
			}
			sp.Grade = req.Grade
			changed = true
		}
		if school := strings.TrimSpace(req.SchoolName); school != "" {
			sp.SchoolName = school
			changed = true
		}
		if changed {
			if err := s.UserRepo.UpdateStudentProfile(sp); err != nil {
				return nil, err
			}
		}
	case model.Teacher:
		tp, err := s.UserRepo.FindTeacherProfile(userID)
		if err != nil {
			return nil, util.ErrProfileNotFound
		}
		if school := strings.TrimSpace(req.SchoolName); school != "" {
			tp.SchoolName = school
			if err := s.UserRepo.UpdateTeacherProfile(tp); err != nil {
				return nil, err
			}
		}
	}

	return s.GetProfile(userID)
}

// UploadAvatar 上传头像并更新用户记录
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrUserNotFound
		}
		return "", err
	}

	if file.Size > maxAvatarSize {
		return "", errors.New("头像文件不能超过2MB")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return "", errors.New("不支持的图片格式")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := fmt.Sprintf("avatars/%d/%s%s", userID, uuid.New().String(), ext)
	url, err := s.Storage.Upload(ctx, filename, io.LimitReader(src, maxAvatarSize), file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}

	return url, nil
}
