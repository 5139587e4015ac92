package app

import (
	"eduforum_backend/docs"
	"eduforum_backend/internal/config"
	"eduforum_backend/internal/middleware"
	"eduforum_backend/internal/model"
	"eduforum_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register/student", c.auth.RegisterStudent)
		public.POST("/register/teacher", c.auth.RegisterTeacher)
		public.POST("/login", c.auth.Login)
	}

	// 浏览类：可选认证，游客照常访问，登录用户看到自己的点赞与投票
	browse := router.Group("/api")
	browse.Use(middleware.TryAuthMiddleware(cfg))
	{
		browse.GET("/questions", c.question.List)
		browse.GET("/questions/:id", c.question.Detail)
		browse.GET("/questions/:id/answers", c.answer.ListByQuestion)
		browse.GET("/questions/:id/recommend", c.answer.Recommend)
	}

	// 交互类：强制认证
	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.POST("/questions", c.question.Create)
		authorized.PUT("/questions/:id", c.question.Update)
		authorized.DELETE("/questions/:id", c.question.Delete)
		authorized.POST("/questions/:id/like", c.question.ToggleLike)

		authorized.POST("/questions/:id/answers", c.answer.Create)
		authorized.PUT("/answers/:id", c.answer.Update)
		authorized.DELETE("/answers/:id", c.answer.Delete)
		authorized.POST("/answers/:id/vote", c.answer.Vote)

		authorized.POST("/chat", c.chat.Chat)
		authorized.GET("/chat/sessions", c.chat.Sessions)
		authorized.GET("/chat/history/:session_id", c.chat.History)

		authorized.GET("/profile", c.user.GetProfile)
		authorized.PUT("/profile", c.user.UpdateProfile)
		authorized.POST("/profile/avatar", c.user.UploadAvatar)
		authorized.GET("/dashboard", c.user.Dashboard)

		// 教师相关接口
		teacher := authorized.Group("/")
		teacher.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacher.POST("/answers/:id/verify", c.answer.Verify)
		}
	}
}
