package routes

import (
	_ "yadtamar_backend/docs"
	"yadtamar_backend/internal/handlers"
	"yadtamar_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options toggles the optional surfaces of the router.
type Options struct {
	StaticPrefix string // served from StaticDir when both are set
	StaticDir    string
	Swagger      bool
}

// RegisterRoutes mounts every handler under /api/v1 plus the operational
// endpoints at the root.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, opts Options) {
	appHandlers.HealthHandler.RegisterRoutes(ginRouter)

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.LookupHandler.RegisterRoutes(api)
		appHandlers.ApprovalHandler.RegisterRoutes(api)
		appHandlers.RequestHandler.RegisterRoutes(api)
		appHandlers.MatchingHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
	}

	if opts.StaticPrefix != "" && opts.StaticDir != "" {
		ginRouter.Static(opts.StaticPrefix, opts.StaticDir)
	}

	if opts.Swagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		logger.Info("Swagger UI registered", "path", "/swagger/index.html")
	}
}
