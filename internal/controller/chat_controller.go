package controller

import (
	"strings"

	"eduforum_backend/internal/service"
	"eduforum_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// ChatRequest 学习助手对话请求，session_id 为空时开启新会话
// swagger:model ChatRequest
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// Chat godoc
// @Summary 学习助手对话
// @Description 向AI学习助手提问，带最近会话上下文
// @Tags 学习助手
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ChatRequest true "对话内容"
// @Success 200 {object} util.Response{data=service.ChatReply} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		util.BadRequest(ctx, "消息不能为空")
		return
	}

	reply, err := c.ChatService.Chat(claims.UserID, req.SessionID, req.Message)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, reply)
}

// History godoc
// @Summary 会话历史
// @Description 获取指定会话的全部历史问答
// @Tags 学习助手
// @Produce  json
// @Security ApiKeyAuth
// @Param   session_id path string true "会话ID"
// @Success 200 {object} util.Response{data=[]model.ChatExchange} "成功"
// @Router /api/chat/history/{session_id} [get]
func (c *ChatController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessionID := ctx.Param("session_id")
	if sessionID == "" {
		util.BadRequest(ctx, "无效的会话ID")
		return
	}

	history, err := c.ChatService.History(claims.UserID, sessionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, history)
}

// Sessions godoc
// @Summary 会话列表
// @Description 获取当前用户的全部会话ID
// @Tags 学习助手
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]string} "成功"
// @Router /api/chat/sessions [get]
func (c *ChatController) Sessions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.ChatService.Sessions(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}
