package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mcarvalho/portfolio-api/internal/config"
	"github.com/mcarvalho/portfolio-api/internal/database"
	"github.com/mcarvalho/portfolio-api/internal/handlers"
	"github.com/mcarvalho/portfolio-api/internal/metrics"
	"github.com/mcarvalho/portfolio-api/internal/middleware"
	"github.com/mcarvalho/portfolio-api/internal/repository"
	"github.com/mcarvalho/portfolio-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.GinMode != "release" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Seed the admin account and default site settings
	if err := database.Seed(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiresIn)
	projectService := services.NewProjectService(projectRepo)
	skillService := services.NewSkillService(skillRepo)
	profileService := services.NewProfileService(profileRepo)
	cvService := services.NewCVService(profileRepo, skillRepo)
	githubService := services.NewGithubService(cfg.GithubToken, cfg.GithubUsername, projectRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, int(cfg.JWTExpiresIn.Seconds()))
	projectHandler := handlers.NewProjectHandler(projectService)
	skillHandler := handlers.NewSkillHandler(skillService)
	profileHandler := handlers.NewProfileHandler(profileService, cvService)
	githubHandler := handlers.NewGithubHandler(githubService)

	// Initialize Gin router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	collector := metrics.NewCollector()
	r.Use(collector.Middleware())

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	// Health check endpoint, outside the rate-limited group
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success":   true,
			"message":   "Portfolio API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Prometheus metrics
	r.GET("/metrics", collector.Handler())

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	requireAdmin := middleware.RequireAdmin()

	// API routes
	api := r.Group("/api")
	api.Use(rateLimiter.Middleware())
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.Me)
			auth.PUT("/change-password", requireAuth, authHandler.ChangePassword)
		}

		// Project routes (public reads, admin writes)
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.GET("/stats", projectHandler.Stats)
			projects.GET("/:slug", projectHandler.GetBySlug)
			projects.POST("/:id/like", projectHandler.Like)
			projects.POST("", requireAuth, requireAdmin, projectHandler.Create)
			projects.PUT("/:id", requireAuth, requireAdmin, projectHandler.Update)
			projects.DELETE("/:id", requireAuth, requireAdmin, projectHandler.Delete)
		}

		// Skill routes
		skills := api.Group("/skills")
		{
			skills.GET("", skillHandler.List)
			skills.POST("", requireAuth, requireAdmin, skillHandler.Create)
			skills.PUT("/reorder", requireAuth, requireAdmin, skillHandler.Reorder)
			skills.PUT("/:id", requireAuth, requireAdmin, skillHandler.Update)
			skills.DELETE("/:id", requireAuth, requireAdmin, skillHandler.Delete)
		}

		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", profileHandler.Get)
			profile.PUT("", requireAuth, requireAdmin, profileHandler.Update)
			profile.GET("/cv/download", profileHandler.DownloadCV)

			profile.GET("/experiences", profileHandler.ListExperiences)
			profile.POST("/experiences", requireAuth, requireAdmin, profileHandler.CreateExperience)
			profile.PUT("/experiences/:id", requireAuth, requireAdmin, profileHandler.UpdateExperience)
			profile.DELETE("/experiences/:id", requireAuth, requireAdmin, profileHandler.DeleteExperience)

			profile.GET("/education", profileHandler.ListEducation)
			profile.POST("/education", requireAuth, requireAdmin, profileHandler.CreateEducation)
			profile.PUT("/education/:id", requireAuth, requireAdmin, profileHandler.UpdateEducation)
			profile.DELETE("/education/:id", requireAuth, requireAdmin, profileHandler.DeleteEducation)

			profile.GET("/certificates", profileHandler.ListCertificates)
			profile.POST("/certificates", requireAuth, requireAdmin, profileHandler.CreateCertificate)
			profile.PUT("/certificates/:id", requireAuth, requireAdmin, profileHandler.UpdateCertificate)
			profile.DELETE("/certificates/:id", requireAuth, requireAdmin, profileHandler.DeleteCertificate)
		}

		// GitHub proxy routes
		github := api.Group("/github")
		{
			github.GET("/profile", githubHandler.Profile)
			github.GET("/repos", githubHandler.Repos)
			github.GET("/stats", githubHandler.Stats)
			github.POST("/sync", requireAuth, requireAdmin, githubHandler.Sync)
		}
	}

	// Start server
	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
