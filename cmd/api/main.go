package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calendar-assistant/config"
	_ "calendar-assistant/docs" // Swagger docs
	assistantUC "calendar-assistant/internal/assistant/usecase"
	calendarRepo "calendar-assistant/internal/calendar/repository/google"
	calendarUC "calendar-assistant/internal/calendar/usecase"
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/gemini"
	"calendar-assistant/pkg/log"
)

// @title       Calendar Assistant API
// @description AI-powered Google Calendar assistant with Gemini LLM, streaming chat, and action execution.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini LLM client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	if cfg.Gemini.APIURL != "" {
		geminiClient.SetAPIURL(cfg.Gemini.APIURL)
	}

	// 4. DateMath calendar
	cal, err := datemath.New(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		cal, _ = datemath.New("UTC")
	}

	// 5. Calendar domain
	backendFactory := calendarRepo.NewFactory(logger, cfg.Calendar.ID)
	calUC := calendarUC.New(logger, backendFactory, cal, cfg.Calendar.Timezone)

	// 6. Assistant domain
	asstUC := assistantUC.New(logger, geminiClient, calUC, cal, cfg.Assistant.MaxHistory)

	// 7. Middleware
	mw, err := middleware.New(logger, middleware.Config{
		TokenInfoURL:  cfg.GoogleAuth.TokenInfoURL,
		Timezone:      cfg.Calendar.Timezone,
		RatePerMinute: cfg.RateLimit.PerMinute,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize middleware: ", err)
		return
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		CalendarUC:  calUC,
		AssistantUC: asstUC,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
