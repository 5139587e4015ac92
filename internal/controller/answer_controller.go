package controller

import (
	"errors"

	"eduforum_backend/internal/service"
	"eduforum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	AnswerService *service.AnswerService
}

func NewAnswerController(answerService *service.AnswerService) *AnswerController {
	return &AnswerController{AnswerService: answerService}
}

// VoteRequest 回答投票请求，vote_type 取 1 或 -1
// swagger:model VoteRequest
type VoteRequest struct {
	VoteType int `json:"vote_type" binding:"required,oneof=1 -1"`
}

// ListByQuestion godoc
// @Summary 问题下的回答列表
// @Description 按点赞数降序返回问题的全部回答
// @Tags 回答
// @Produce  json
// @Param   id path int true "问题ID"
// @Success 200 {object} util.Response{data=[]service.AnswerResponse} "成功"
// @Failure 404 {object} util.Response "问题不存在"
// @Router /api/questions/{id}/answers [get]
func (c *AnswerController) ListByQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	answers, err := c.AnswerService.ListByQuestion(id, viewerID(ctx))
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, answers)
}

// Create godoc
// @Summary 提交回答
// @Description 为指定问题提交新回答
// @Tags 回答
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "问题ID"
// @Param   body body service.AnswerRequest true "回答内容"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 404 {object} util.Response "问题不存在"
// @Router /api/questions/{id}/answers [post]
func (c *AnswerController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.AnswerService.SubmitAnswer(claims.UserID, id, req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": answer.ID})
}

// Update godoc
// @Summary 编辑回答
// @Description 仅作者本人可编辑
// @Tags 回答
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "回答ID"
// @Param   body body service.AnswerRequest true "回答内容"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "回答不存在"
// @Router /api/answers/{id} [put]
func (c *AnswerController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.AnswerService.UpdateAnswer(claims.UserID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAnswerNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"id": answer.ID})
}

// Delete godoc
// @Summary 删除回答
// @Description 仅作者本人可删除，关联投票一并清理
// @Tags 回答
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "回答ID"
// @Success 200 {object} util.Response "成功"
// @Failure 403 {object} util.Response "无权限"
// @Failure 404 {object} util.Response "回答不存在"
// @Router /api/answers/{id} [delete]
func (c *AnswerController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.AnswerService.DeleteAnswer(claims.UserID, id); err != nil {
		switch {
		case errors.Is(err, util.ErrAnswerNotFound):
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

// Vote godoc
// @Summary 回答投票
// @Description 赞同或反对回答：同类型再投为取消，不同类型为改票。返回对账后的全部回答。
// @Tags 回答
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "回答ID"
// @Param   body body VoteRequest true "投票类型"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "回答不存在"
// @Router /api/answers/{id}/vote [post]
func (c *AnswerController) Vote(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	likes, dislikes, answers, err := c.AnswerService.ToggleVote(id, claims.UserID, req.VoteType)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAnswerNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidVoteType):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"like_count":    likes,
		"dislike_count": dislikes,
		"answers":       answers,
	})
}

// Verify godoc
// @Summary 标记优质回答
// @Description 教师认证回答质量，只能置位不能撤销
// @Tags 回答
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "回答ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 403 {object} util.Response "仅教师可操作"
// @Failure 404 {object} util.Response "回答不存在"
// @Failure 409 {object} util.Response "已认证过"
// @Router /api/answers/{id}/verify [post]
func (c *AnswerController) Verify(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	answer, err := c.AnswerService.VerifyAnswer(id, claims.Role)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAnswerNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrAlreadyVerified):
			util.Error(ctx, 409, "该回答已被认证")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"id": answer.ID, "is_verified": answer.IsVerified})
}

// Recommend godoc
// @Summary 最佳回答推荐
// @Description AI在回答列表里推荐一个最佳回答，推荐不出时返回0
// @Tags 回答
// @Produce  json
// @Param   id path int true "问题ID"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 404 {object} util.Response "问题不存在"
// @Router /api/questions/{id}/recommend [get]
func (c *AnswerController) Recommend(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	answerID, err := c.AnswerService.RecommendBest(id)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"answer_id": answerID})
}
