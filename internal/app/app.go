package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "tasklist/docs"
	"tasklist/internal/config"
	"tasklist/internal/database"
	"tasklist/internal/handlers"
	"tasklist/internal/middleware"
	"tasklist/internal/pdf"
	"tasklist/internal/repositories"
	"tasklist/internal/routes"
	"tasklist/internal/services"
)

func Run(cfg *config.Config) error {
	// === DB ===
	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("close database: %v", err)
		}
	}()
	log.Printf("database ready driver=%s", cfg.Database.Driver)

	router := NewRouter(db, buildNotifiers(cfg))

	// === Run ===
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires repositories, services and handlers over db.
func NewRouter(db *sql.DB, notifier services.Notifier) *gin.Engine {
	// === Repos ===
	taskRepo := repositories.NewTaskRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	statusRepo := repositories.NewStatusRepository(db)

	// === Services ===
	taskService := services.NewTaskService(taskRepo, categoryRepo, statusRepo, notifier)

	// === Handlers ===
	taskHandler := handlers.NewTaskHandler(taskService)
	apiHandler := handlers.NewAPIHandler(taskService)
	exportHandler := handlers.NewExportHandler(taskService, pdf.NewTaskListGenerator())

	// === Gin ===
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return routes.SetupRoutes(router, taskHandler, apiHandler, exportHandler)
}

func buildNotifiers(cfg *config.Config) services.Notifier {
	var ns services.Notifiers

	tg, err := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		log.Printf("[tg][init][err] notifications disabled: %v", err)
	} else if tg != nil {
		ns = append(ns, tg)
	}

	if mail := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
		cfg.Email.ToEmail,
	); mail != nil {
		ns = append(ns, mail)
	}

	if len(ns) == 0 {
		return nil
	}
	return ns
}
