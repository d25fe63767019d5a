package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/turnario/turnario-backend-go/internal/config"
	"github.com/turnario/turnario-backend-go/internal/domain/shift"
	appHTTP "github.com/turnario/turnario-backend-go/internal/handler/http"
	"github.com/turnario/turnario-backend-go/internal/pkg/cron"
	"github.com/turnario/turnario-backend-go/internal/pkg/database"
	"github.com/turnario/turnario-backend-go/internal/pkg/email"
	"github.com/turnario/turnario-backend-go/internal/pkg/jwt"
	"github.com/turnario/turnario-backend-go/internal/pkg/sse"
	"github.com/turnario/turnario-backend-go/internal/pkg/storage"
	"github.com/turnario/turnario-backend-go/internal/repository/postgresql"
	attendanceService "github.com/turnario/turnario-backend-go/internal/service/attendance"
	authService "github.com/turnario/turnario-backend-go/internal/service/auth"
	eventService "github.com/turnario/turnario-backend-go/internal/service/event"
	exportService "github.com/turnario/turnario-backend-go/internal/service/export"
	masterService "github.com/turnario/turnario-backend-go/internal/service/master"
	notificationService "github.com/turnario/turnario-backend-go/internal/service/notification"
	operatorService "github.com/turnario/turnario-backend-go/internal/service/operator"
	shiftService "github.com/turnario/turnario-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	shift.SetAllowOvernight(cfg.Planning.AllowOvernight)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	operatorRepo := postgresql.NewOperatorRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	brandRepo := postgresql.NewBrandRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	checkinRepo := postgresql.NewCheckinRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	exportStorage, err := storage.NewLocalStorage(cfg.Export.StoragePath, cfg.Export.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize export storage:", err)
	}

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	defer notificationSvc.Stop()

	authSvc := authService.NewAuthService(operatorRepo, jwtService)
	operatorSvc := operatorService.NewOperatorService(operatorRepo)
	masterSvc := masterService.NewMasterService(clientRepo, brandRepo)
	eventSvc := eventService.NewEventService(eventRepo, shiftRepo, operatorRepo, checkinRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, eventRepo, operatorRepo, checkinRepo, notificationSvc, emailSvc)
	attendanceSvc := attendanceService.NewAttendanceService(checkinRepo, shiftRepo)
	exportSvc := exportService.NewExportService(checkinRepo, operatorRepo, exportStorage)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	eventHandler := appHTTP.NewEventHandler(eventSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, exportSvc)
	operatorHandler := appHTTP.NewOperatorHandler(operatorSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, jwtService)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		jwtService,
		authHandler,
		eventHandler,
		shiftHandler,
		attendanceHandler,
		operatorHandler,
		masterHandler,
		notificationHandler,
	)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(shiftRepo, checkinRepo, operatorRepo, notificationSvc, emailSvc)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "addr", addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
