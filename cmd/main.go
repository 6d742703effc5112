package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/apquiz/config"
	"github.com/lshigami/apquiz/database"
	_ "github.com/lshigami/apquiz/docs" // Swagger docs - generated by swag
	adminctrl "github.com/lshigami/apquiz/internal/controller/admin"
	authctrl "github.com/lshigami/apquiz/internal/controller/auth"
	userctrl "github.com/lshigami/apquiz/internal/controller/user"
	"github.com/lshigami/apquiz/internal/logger"
	"github.com/lshigami/apquiz/internal/middleware"
	"github.com/lshigami/apquiz/internal/migration"
	"github.com/lshigami/apquiz/internal/repository"
	"github.com/lshigami/apquiz/internal/seed"
	"github.com/lshigami/apquiz/internal/service"
	"github.com/lshigami/apquiz/internal/session"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Arithmetic Progression Quiz API
// @version 1.0
// @description Register, take ten-question arithmetic progression quizzes and track results. Admins manage the question bank.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply migrations and seed data, then exit")
	rollbackLast := flag.Bool("rollback-last", false, "revert the most recent migration, then exit")
	flag.Parse()

	// Defaults until the config is loaded.
	logger.Init("info", true)

	if *rollbackLast {
		if err := runRollback(); err != nil {
			log.Fatal().Err(err).Msg("Rollback failed")
		}
		return
	}
	if *migrateOnly {
		if err := runMigrations(); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
		return
	}

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			session.NewStore,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewQuizResultRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewQuizService,
			service.NewGeminiQuestionGenerator,
			service.NewQuestionService,
			service.NewResultService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			userctrl.NewQuizController,
			adminctrl.NewAdminController,
		),

		// Migrations must run before the server starts accepting requests.
		fx.Invoke(MigrateAndSeed),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
		os.Exit(1)
	}
}

func runMigrations() error {
	return withDatabase(func(db *gorm.DB, cfg *config.Config) error {
		return MigrateAndSeed(db, repository.NewUserRepository(db), repository.NewQuestionRepository(db), cfg)
	})
}

func runRollback() error {
	return withDatabase(func(db *gorm.DB, _ *config.Config) error {
		return migration.RollbackLast(db)
	})
}

// withDatabase runs fn against a database opened outside the fx graph.
func withDatabase(fn func(db *gorm.DB, cfg *config.Config) error) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	db, err := database.Open(cfg.Database.URL)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	return fn(db, cfg)
}

func MigrateAndSeed(db *gorm.DB, users repository.UserRepository, questions repository.QuestionRepository, cfg *config.Config) error {
	if err := migration.Run(db); err != nil {
		return err
	}
	return seed.Run(context.Background(), users, questions, cfg.Admin)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(middleware.RequestID())

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys[middleware.RequestIDKey].(string)
		event := log.Info()
		if param.StatusCode >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("request_id", requestID).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return "" // zerolog already wrote the line
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *authctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	adminCtrl *adminctrl.AdminController,
) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", middleware.RequireAuth(authService), authCtrl.Logout)
	}

	userGroup := api.Group("", middleware.RequireAuth(authService))
	{
		userGroup.GET("/dashboard", quizCtrl.Dashboard)
		userGroup.GET("/quiz", quizCtrl.StartQuiz)
		userGroup.GET("/quiz/current", quizCtrl.CurrentQuestion)
		userGroup.POST("/quiz/answer", quizCtrl.SubmitAnswer)
		userGroup.GET("/quiz/result", quizCtrl.GetResult)
	}

	adminGroup := api.Group("/admin", middleware.RequireAuth(authService), middleware.RequireAdmin())
	{
		adminGroup.GET("", adminCtrl.Overview)
		adminGroup.GET("/questions", adminCtrl.ListQuestions)
		adminGroup.POST("/questions", adminCtrl.AddQuestion)
		adminGroup.POST("/questions/generate", adminCtrl.GenerateQuestion)
		adminGroup.GET("/results", adminCtrl.ListResults)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("AP Quiz server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
