package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/huelladelcaminante/huella-api/config"
	"github.com/huelladelcaminante/huella-api/internal/handlers"
	"github.com/huelladelcaminante/huella-api/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	logger := config.NewLogger()

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("listening", "port", port)
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		artistPublic := public.Group("/artists")
		{
			artistPublic.GET("", handlers.ListArtists)
			artistPublic.GET("/:slug", handlers.GetArtist)
		}

		eventPublic := public.Group("/events")
		{
			eventPublic.GET("", handlers.ListEvents)
			eventPublic.GET("/:slug", handlers.GetEvent)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware(), middleware.ApprovedRequired())
	{
		protected.GET("/profile", handlers.GetProfile)

		artistProtected := protected.Group("/artists")
		{
			artistProtected.POST("", handlers.CreateArtist)
			artistProtected.PUT("/:id", handlers.UpdateArtist)
			artistProtected.DELETE("/:id", handlers.DeleteArtist)
		}

		eventProtected := protected.Group("/events")
		{
			eventProtected.POST("", handlers.CreateEvent)
			eventProtected.PUT("/:id", handlers.UpdateEvent)
			eventProtected.DELETE("/:id", handlers.DeleteEvent)
		}
	}

	admin := r.Group("/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminRequired())
	{
		admin.GET("/users", handlers.ListUsers)
		admin.PUT("/users/:id/approve", handlers.ApproveUser)
		admin.PUT("/users/:id/block", handlers.BlockUser)
		admin.PUT("/users/:id/unblock", handlers.UnblockUser)
		admin.DELETE("/users/:id", handlers.DeleteUser)
	}
}
