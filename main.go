package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/events"
	"hotel-booking/logger"
	"hotel-booking/routes"
	"hotel-booking/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env is optional
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "hotel-booking")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	if dotenvErr != nil {
		log.Debug(".env not loaded; using process environment", zap.Error(dotenvErr))
	}

	db, err := config.ConnectDatabase(cfg.Database, log)
	if err != nil {
		log.Error("database connect failed", zap.Error(err))
		return 1
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx := context.Background()

	bookingService := services.NewBookingService(db)
	roomService := services.NewRoomService(db, bookingService, log)

	rooms, err := roomService.LoadRooms(ctx)
	if err != nil {
		log.Error("loading rooms failed", zap.Error(err))
		return 1
	}

	publisher := events.NewPublisher(cfg.RabbitMQURL, log)
	system := controllers.NewRoomBookingSystem(rooms, os.Stdin, os.Stdout, publisher, log)

	if cfg.Mode == config.ModeHTTP {
		return serveHTTP(ctx, cfg, system, log)
	}

	if err := system.Run(ctx); err != nil && !errors.Is(err, io.EOF) {
		log.Error("booking system stopped", zap.Error(err))
		return 1
	}
	return 0
}

func serveHTTP(parent context.Context, cfg *config.Config, system *controllers.RoomBookingSystem, log *zap.Logger) int {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	roomController := controllers.NewRoomController(system, log)
	router := routes.SetupRouter(roomController, cfg.CORSOrigins, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("listen failed", zap.Error(err))
			return 1
		}
		return 0
	case <-ctx.Done():
	}
	log.Info("shutdown signal received, shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return 1
	}

	log.Info("server stopped gracefully")
	return 0
}
