// @title DocQuiz API
// @version 1.0
// @description Generates quizzes from uploaded documents and exports them as PDF.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"docquiz/internal/adapter/assistant"
	"docquiz/internal/config"
	"docquiz/internal/export"
	"docquiz/internal/extractor"
	"docquiz/internal/handler"
	"docquiz/internal/logger"
	"docquiz/internal/middleware"
	"docquiz/internal/service"
	"docquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request
		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Initialize the remote assistant service
	openaiClient := openai.NewClient(cfg.OpenAI.APIKey)
	assistantService, err := assistant.NewOpenAIAssistantService(openaiClient, cfg.OpenAI.Model)
	if err != nil {
		appLogger.Fatal("Failed to create assistant service", zap.Error(err))
	}
	appLogger.Info("Assistant service initialized", zap.String("model", cfg.OpenAI.Model))

	// Initialize document adapters
	pdfExtractor := extractor.NewPDFExtractor()
	pdfRenderer := export.NewPDFRenderer()

	// Initialize services
	generationService := service.NewGenerationService(pdfExtractor, assistantService, cfg)
	appLogger.Info("GenerationService initialized",
		zap.Duration("poll_interval", cfg.Generation.PollInterval),
		zap.Duration("run_timeout", cfg.Generation.RunTimeout),
	)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(generationService, pdfRenderer, validation.NewValidator())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// API group
	apiGroup := app.Group("/api")
	apiGroup.Post("/quiz/generate", quizHandler.GenerateQuiz)
	apiGroup.Post("/quiz/export", quizHandler.ExportQuiz)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
