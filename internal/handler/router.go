package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"event-portal/internal/handler/api"
	"event-portal/internal/handler/middleware"
	"event-portal/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	sessionMiddleware *middleware.SessionMiddleware,
	publicHandler *api.PublicHandler,
	adminHandler *api.AdminHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, sessionMiddleware, publicHandler, adminHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	sessionMiddleware *middleware.SessionMiddleware,
	publicHandler *api.PublicHandler,
	adminHandler *api.AdminHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(sessionMiddleware.Attach())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/events", Handler: publicHandler.Events},
			{Method: http.MethodPost, Path: "/events/:uuid/registrations", Handler: publicHandler.Register},
		})

		calendar := apiGroup.Group("/calendar")
		{
			addRoutes(calendar, []route{
				{Method: http.MethodPost, Path: "/day", Handler: publicHandler.DayClicked},
				{Method: http.MethodDelete, Path: "/day", Handler: publicHandler.CloseDay},
				{Method: http.MethodPut, Path: "/view", Handler: publicHandler.SetView},
				{Method: http.MethodPost, Path: "/navigate", Handler: publicHandler.Navigate},
			})
		}

		requireAdmin := []gin.HandlerFunc{sessionMiddleware.RequireAdmin()}
		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: adminHandler.Logout},
				{Method: http.MethodGet, Path: "/dashboard", Handler: adminHandler.Dashboard, Mw: requireAdmin},
				{Method: http.MethodGet, Path: "/events/draft", Handler: adminHandler.Draft, Mw: requireAdmin},
				{Method: http.MethodPost, Path: "/events", Handler: adminHandler.CreateEvent, Mw: requireAdmin},
				{Method: http.MethodPut, Path: "/events/:uuid", Handler: adminHandler.UpdateEvent, Mw: requireAdmin},
				{Method: http.MethodDelete, Path: "/events/:uuid", Handler: adminHandler.DeleteEvent, Mw: requireAdmin},
				{Method: http.MethodDelete, Path: "/registrations/:uuid", Handler: adminHandler.DeleteRegistration, Mw: requireAdmin},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
