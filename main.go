package main

import (
	"log"
	"net/http"

	"wikicms/config"
	"wikicms/handlers"
	"wikicms/middleware"
	"wikicms/models"
	"wikicms/repositories"
	"wikicms/services"
	"wikicms/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	logger := config.InitLogger()
	defer logger.Sync()

	// Initialize database
	db := config.InitDB()

	blobStore, err := storage.NewLocalStore(config.UploadDir)
	if err != nil {
		log.Fatal("Failed to initialize upload storage:", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	pendingRepo := repositories.NewPendingEditRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	imageRepo := repositories.NewImageRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, ratingRepo, commentRepo, logger)
	editService := services.NewEditService(articleRepo, pendingRepo, logger)
	moderationService := services.NewModerationService(pendingRepo, articleRepo, logger)
	ratingService := services.NewRatingService(ratingRepo, articleRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo)
	statsService := services.NewStatsService(articleRepo, userRepo)
	imageService := services.NewImageService(imageRepo, articleRepo, blobStore, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	articleHandler := handlers.NewArticleHandler(articleService)
	editHandler := handlers.NewEditHandler(editService)
	moderationHandler := handlers.NewModerationHandler(moderationService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	commentHandler := handlers.NewCommentHandler(commentService)
	adminHandler := handlers.NewAdminHandler(statsService)
	imageHandler := handlers.NewImageHandler(imageService)

	// Setup router
	router := gin.Default()
	router.Use(cors.Default())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public article routes
		public := v1.Group("/articles")
		public.Use(middleware.OptionalAuthMiddleware())
		{
			public.GET("", articleHandler.GetArticles)
			public.GET("/:id", articleHandler.GetArticle)
			public.GET("/:id/edits", editHandler.GetEditHistory)
			public.GET("/:id/comments", commentHandler.GetComments)
			public.GET("/:id/images", imageHandler.ListImages)

			// Anonymous users may create and edit unprotected articles;
			// the edit workflow decides per article what applies.
			public.POST("", articleHandler.CreateArticle)
			public.PUT("/:id", editHandler.SubmitEdit)
		}

		v1.GET("/search", articleHandler.SearchArticles)
		v1.GET("/domains", articleHandler.GetDomains)

		// Authenticated routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)

			protected.POST("/articles/:id/rating", ratingHandler.RateArticle)
			protected.GET("/articles/:id/rating", ratingHandler.GetRating)
			protected.POST("/articles/:id/comments", commentHandler.PostComment)
			protected.POST("/articles/:id/comments/reply", commentHandler.ReplyToComment)
			protected.PUT("/comments/:comment_id", commentHandler.EditComment)
			protected.DELETE("/comments/:comment_id", commentHandler.DeleteComment)
			protected.POST("/articles/:id/images", imageHandler.UploadImage)

			// Moderation
			moderation := protected.Group("/moderation")
			moderation.Use(middleware.RequireRole(models.RoleModerator, models.RoleAdmin))
			{
				moderation.GET("/pending", moderationHandler.ListPendingEdits)
				moderation.POST("/pending/:id/approve", moderationHandler.ApproveEdit)
				moderation.POST("/pending/:id/reject", moderationHandler.RejectEdit)
				moderation.POST("/edits/:edit_id/revert", editHandler.RevertEdit)
				moderation.POST("/comments/:comment_id/moderate", commentHandler.ModerateComment)
				moderation.DELETE("/articles/:id", articleHandler.DeleteArticle)
			}

			// Admin
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/statistics", adminHandler.GetStatistics)
			}
		}
	}

	logger.Info("server starting", zap.String("port", config.Port))
	log.Fatal(http.ListenAndServe(":"+config.Port, router))
}
