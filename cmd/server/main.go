package main

import (
	"errors"
	"log"

	"github.com/fadilmartias/job-board/internal/config"
	"github.com/fadilmartias/job-board/internal/domain/fiber/handler"
	"github.com/fadilmartias/job-board/internal/middleware"
	"github.com/fadilmartias/job-board/internal/repository"
	"github.com/fadilmartias/job-board/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	zapLogger, err := newLogger(appConfig.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 0))

	db, err := config.ConnectDB()
	if err != nil {
		zapLogger.Fatal("database connection failed", zap.Error(err))
	}

	companyRepo := repository.NewCompanyRepository(db)
	hmRepo := repository.NewHiringManagerRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	msgRepo := repository.NewMessageRepository(db)

	roleUC := usecase.NewRoleUsecase(roleRepo, companyRepo, hmRepo, zapLogger)
	applicationUC := usecase.NewApplicationUsecase(appRepo, roleRepo, candidateRepo, zapLogger)
	messageUC := usecase.NewMessageUsecase(msgRepo, appRepo, zapLogger)
	companyUC := usecase.NewCompanyUsecase(companyRepo, hmRepo, zapLogger)
	personaUC := usecase.NewPersonaUsecase(hmRepo, candidateRepo, zapLogger)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, zapLogger)

	handler.NewRoleHandler(roleUC).RegisterRoutes(app)
	handler.NewApplicationHandler(applicationUC).RegisterRoutes(app)
	handler.NewMessageHandler(messageUC).RegisterRoutes(app)
	handler.NewCompanyHandler(companyUC).RegisterRoutes(app)
	handler.NewPersonaHandler(personaUC).RegisterRoutes(app)
	handler.NewCandidateHandler(candidateUC).RegisterRoutes(app)

	zapLogger.Info("server running", zap.String("port", appConfig.Port))
	if err := app.Listen(appConfig.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
