package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/internmatch/backend/agent"
	"github.com/internmatch/backend/auth"
	"github.com/internmatch/backend/mcp"
	"github.com/internmatch/backend/storage"
	"github.com/internmatch/backend/tools"
)

// Dependencies are the services the HTTP surface is built from
type Dependencies struct {
	Version       string
	Catalog       *storage.Catalog
	Recommender   *agent.Recommender
	Assistant     *agent.Assistant
	Registry      *tools.ToolRegistry
	MCP           *mcp.Server
	JWTService    *auth.JWTService
	Authenticator *auth.AdminAuthenticator
}

// NewRouter creates the gin engine with every route registered
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestID())

	// Configure CORS for the web frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthHandler := NewHealthHandler(deps.Catalog, deps.Version)
	recommendHandler := NewRecommendHandler(deps.Recommender, deps.Registry)
	chatHandler := NewChatHandler(deps.Assistant)
	internshipHandler := NewInternshipHandler(deps.Catalog)
	adminHandler := NewAdminHandler(deps.Authenticator, deps.JWTService, deps.Catalog)

	router.GET("/health", healthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.HealthCheck)
		api.POST("/recommend", recommendHandler.Recommend)
		api.POST("/chat", chatHandler.Chat)
		api.GET("/internships", internshipHandler.List)
		api.GET("/internships/:id", internshipHandler.Get)

		api.POST("/auth/login", adminHandler.Login)

		admin := api.Group("/admin")
		admin.Use(auth.AuthMiddleware(deps.JWTService), auth.RequireRole(auth.RoleAdmin))
		{
			admin.POST("/catalog/reload", adminHandler.ReloadCatalog)
		}

		// Tools introspection endpoint
		api.GET("/tools", recommendHandler.GetTools)

		// MCP endpoints for external AI agents
		if deps.MCP != nil {
			deps.MCP.RegisterRoutes(api)
		}
	}

	return router
}
