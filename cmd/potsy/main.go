package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/potsy/internal/api"
	"github.com/terraincognita07/potsy/internal/config"
	"github.com/terraincognita07/potsy/internal/db"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}
	port, err := resolvePort(cfg.Port)
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	location := cfg.Location()
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	app, err := newApp(cfg.AppName, database, location)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("%s listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.AppName, port, cfg.DBPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func newApp(appName string, database *gorm.DB, location *time.Location) (*fiber.App, error) {
	handler, err := api.NewHandler(database, location)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, nil
}

func resolvePort(raw string) (string, error) {
	port := strings.TrimSpace(raw)
	if port == "" {
		return "8080", nil
	}
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return port, nil
}
