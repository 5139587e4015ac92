package controller

import (
	"errors"
	"net/http"
	"strconv"

	"eduforum_backend/internal/service"
	"eduforum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
	AnswerService   *service.AnswerService
}

func NewQuestionController(questionService *service.QuestionService, answerService *service.AnswerService) *QuestionController {
	return &QuestionController{
		QuestionService: questionService,
		AnswerService:   answerService,
	}
}

func viewerID(ctx *gin.Context) uint {
	if claims := util.GetUserFromContext(ctx); claims != nil {
		return claims.UserID
	}
	return 0
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "无效的ID")
		return 0, false
	}
	return uint(id), true
}

// List godoc
// @Summary 问题列表
// @Description 分页获取问题列表，支持学科、年级、关键词筛选与排序
// @Tags 问题
// @Produce  json
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页数量" default(20)
// @Param   subject query string false "学科"
// @Param   grade query string false "年级"
// @Param   search query string false "搜索关键词"
// @Param   sort query string false "排序方式 new|top" default(new)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	questions, total, err := c.QuestionService.GetQuestions(
		page, limit,
		ctx.Query("subject"), ctx.Query("grade"),
		ctx.Query("search"), ctx.DefaultQuery("sort", "new"),
		viewerID(ctx),
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  questions,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Detail godoc
// @Summary 问题详情
// @Description 获取单个问题的详细内容
// @Tags 问题
// @Produce  json
// @Param   id path int true "问题ID"
// @Success 200 {object} util.Response{data=service.QuestionResponse} "成功"
// @Failure 404 {object} util.Response "问题不存在"
// @Router /api/questions/{id} [get]
func (c *QuestionController) Detail(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	question, err := c.QuestionService.GetQuestionDetail(id, viewerID(ctx))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, question)
}

// Create godoc
// @Summary 发布问题
// @Description 发布新问题，内容需通过AI审核
// @Tags 问题
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.QuestionRequest true "问题内容"
// @Success 201 {object} util.Response{data=service.QuestionResponse} "创建成功"
// @Failure 400 {object} util.Response "校验失败"
// @Failure 422 {object} util.Response "未通过内容审核"
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, status, err := c.QuestionService.CreateQuestion(claims.UserID, req)
	if err != nil {
		var fieldErrs service.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			ctx.JSON(http.StatusBadRequest, util.Response{
				Code:    http.StatusBadRequest,
				Message: "校验失败",
				Data:    fieldErrs,
			})
		case errors.Is(err, util.ErrQuestionRejected):
			util.Error(ctx, http.StatusUnprocessableEntity, "问题未通过审核: "+string(status))
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": question.ID, "moderation": status})
}

// Update godoc
// @Summary 编辑问题
// @Description 仅作者本人可编辑
// @Tags 问题
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "问题ID"
// @Param   body body service.QuestionRequest true "问题内容"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "问题不存在"
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.UpdateQuestion(claims.UserID, id, req)
	if err != nil {
		var fieldErrs service.FieldErrors
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.As(err, &fieldErrs):
			ctx.JSON(http.StatusBadRequest, util.Response{
				Code:    http.StatusBadRequest,
				Message: "校验失败",
				Data:    fieldErrs,
			})
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"id": question.ID})
}

// Delete godoc
// @Summary 删除问题
// @Description 仅作者本人可删除，关联回答与投票一并清理
// @Tags 问题
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "问题ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "问题不存在"
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.QuestionService.DeleteQuestion(claims.UserID, id); err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// ToggleLike godoc
// @Summary 点赞/取消点赞问题
// @Description 再次请求取消点赞，返回对账后的最新计数
// @Tags 问题
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "问题ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "问题不存在"
// @Router /api/questions/{id}/like [post]
func (c *QuestionController) ToggleLike(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	liked, count, err := c.QuestionService.ToggleLike(id, claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"liked": liked, "like_count": count})
}
