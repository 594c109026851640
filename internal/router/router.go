package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/marafik-io/greenspace/docs"
	"github.com/marafik-io/greenspace/internal/config"
	"github.com/marafik-io/greenspace/internal/middleware"
	"github.com/marafik-io/greenspace/internal/modules/handler"
	"github.com/marafik-io/greenspace/internal/modules/repo"
	"github.com/marafik-io/greenspace/internal/modules/serializer"
	"github.com/marafik-io/greenspace/internal/modules/service"
	"github.com/marafik-io/greenspace/internal/pkg/role"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config           *config.Config
	Log              *zap.Logger
	Sessions         service.SessionService
	Identities       repo.IdentityRepo
	AuthHandler      *handler.AuthHandler
	TaskHandler      *handler.TaskHandler
	AdminTaskHandler *handler.AdminTaskHandler
	HistoryHandler   *handler.HistoryHandler
	TaskTypeHandler  *handler.TaskTypeHandler
	UserHandler      *handler.UserHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		// Add trace ID to response header
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.AuthHandler.Register)
			auth.POST("/login", d.AuthHandler.Login)
			auth.POST("/logout",
				middleware.SessionAuth(d.Sessions, d.Identities),
				d.AuthHandler.Logout)
		}

		authed := v1.Group("")
		authed.Use(middleware.SessionAuth(d.Sessions, d.Identities))

		task := authed.Group("/tasks")
		{
			task.Use(middleware.RequireRole(role.Employee, d.Sessions, d.Log))

			task.GET("", d.TaskHandler.ListTasks)
			task.POST("", d.TaskHandler.CreateTask)
			task.PUT("/:task_id", d.TaskHandler.UpdateTask)
			task.DELETE("/:task_id", d.TaskHandler.DeleteTask)
			task.POST("/hide", d.TaskHandler.HideTasks)
		}

		admin := authed.Group("/admin")
		{
			admin.Use(middleware.RequireRole(role.Admin, d.Sessions, d.Log))

			admin.GET("/tasks", d.AdminTaskHandler.ListTasks)
			admin.POST("/tasks", d.AdminTaskHandler.CreateTask)
			admin.PUT("/tasks/:task_id", d.AdminTaskHandler.UpdateTask)
			admin.DELETE("/tasks/:task_id", d.AdminTaskHandler.DeleteTask)

			admin.GET("/history", d.HistoryHandler.ListHistory)
			admin.POST("/history/:task_id/restore", d.HistoryHandler.RestoreTask)
			admin.POST("/history/:task_id/hide", d.HistoryHandler.HideTask)
			admin.DELETE("/history/:task_id", d.HistoryHandler.PurgeTask)

			admin.GET("/task-types", d.TaskTypeHandler.ListTaskTypes)
			admin.POST("/task-types", d.TaskTypeHandler.CreateTaskType)
			admin.PUT("/task-types/:type_id", d.TaskTypeHandler.UpdateTaskType)
			admin.DELETE("/task-types/:type_id", d.TaskTypeHandler.DeleteTaskType)

			users := admin.Group("/users")
			{
				users.Use(middleware.RequireRole(role.SuperAdmin, d.Sessions, d.Log))

				users.GET("", d.UserHandler.ListUsers)
				users.POST("/:identity_id/toggle-status", d.UserHandler.ToggleStatus)
				users.PUT("/:identity_id/role", d.UserHandler.ChangeRole)
				users.PUT("/:identity_id/profile", d.UserHandler.EditProfile)
				users.DELETE("/:identity_id", d.UserHandler.DeleteUser)
			}
		}
	}
	return r
}
