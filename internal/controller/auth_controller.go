package controller

import (
	"errors"

	"eduforum_backend/internal/model"
	"eduforum_backend/internal/service"
	"eduforum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// StudentRegisterRequest 学生注册请求
// swagger:model StudentRegisterRequest
type StudentRegisterRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
	Grade           string `json:"grade" binding:"required"`
	SchoolName      string `json:"school_name" binding:"required"`
}

// TeacherRegisterRequest 教师注册请求
// swagger:model TeacherRegisterRequest
type TeacherRegisterRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
	SchoolName      string `json:"school_name" binding:"required"`
}

// RegisterStudent godoc
// @Summary 学生注册
// @Description 注册学生账号并创建学生档案
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body StudentRegisterRequest true "学生注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/register/student [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req StudentRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if !model.ValidGrade(req.Grade) {
		util.BadRequest(ctx, "无效的年级")
		return
	}

	user := &model.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}
	profile := &model.StudentProfile{
		Grade:      req.Grade,
		SchoolName: req.SchoolName,
	}

	if err := c.AuthService.RegisterStudent(user, profile); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, 409, "该邮箱已被注册")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// RegisterTeacher godoc
// @Summary 教师注册
// @Description 注册教师账号并创建教师档案
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body TeacherRegisterRequest true "教师注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/register/teacher [post]
func (c *AuthController) RegisterTeacher(ctx *gin.Context) {
	var req TeacherRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}
	profile := &model.TeacherProfile{
		SchoolName: req.SchoolName,
	}

	if err := c.AuthService.RegisterTeacher(user, profile); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, 409, "该邮箱已被注册")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 验证用户身份并返回JWT令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "用户登录凭据"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}
