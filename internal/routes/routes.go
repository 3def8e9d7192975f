package routes

import (
	"github.com/gin-gonic/gin"

	"crmlite/internal/handlers"
	"crmlite/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	clientHandler *handlers.ClientHandler,
	leadHandler *handlers.LeadHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ---- protected
	api := r.Group("/api", middleware.AuthMiddleware(jwtSecret))

	clients := api.Group("/clients")
	{
		clients.GET("/", clientHandler.List)
		clients.POST("/", clientHandler.Create)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	leads := api.Group("/leads")
	{
		leads.GET("/", leadHandler.List)
		leads.POST("/", leadHandler.Create)
		leads.DELETE("/:id", leadHandler.Delete)
		leads.POST("/convert/:id", leadHandler.Convert)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/clients.pdf", reportHandler.ClientsPDF)
	}

	return r
}
