package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fintrack-backend-go/internal/api"
	"fintrack-backend-go/internal/config"
	"fintrack-backend-go/internal/core"
	"fintrack-backend-go/internal/db"
	"fintrack-backend-go/internal/llm"
	"fintrack-backend-go/internal/middleware"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("failed to load configuration", zap.Error(err))
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	clients, err := db.NewClients(initCtx, appConfig)
	if err != nil {
		zapLogger.Fatal("failed to initialize Firebase clients", zap.Error(err))
	}
	defer clients.Close()
	zapLogger.Info("Firebase Admin SDK initialized", zap.String("project", appConfig.FirebaseProjectID))

	userRepo := db.NewFirestoreUserRepository(clients.Firestore)
	versionRepo := db.NewFirestoreUserVersionRepository(clients.Firestore)
	planRepo := db.NewFirestorePlanRepository(clients.Firestore)
	budgetRepo := db.NewFirestoreBudgetRepository(clients.Firestore)
	assetRepo := db.NewFirestoreAssetRepository(clients.Firestore)
	debtRepo := db.NewFirestoreDebtRepository(clients.Firestore)

	llmClient := llm.NewHTTPClient(appConfig.LLMAPIURL, appConfig.LLMAPIKey, appConfig.LLMModel)

	userService := core.NewUserService(userRepo, versionRepo)
	planService := core.NewPlanService(planRepo)
	budgetService := core.NewBudgetService(budgetRepo)
	assetService := core.NewAssetService(assetRepo)
	debtService := core.NewDebtService(debtRepo)
	feedbackService := core.NewFeedbackService(llmClient)

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.Recovery(zapLogger))
	router.Use(middleware.CORSMiddleware(appConfig))

	authMW := middleware.NewAuthMiddleware(clients.Auth, zapLogger)
	api.SetupRoutes(
		router,
		zapLogger,
		authMW,
		userService,
		planService,
		budgetService,
		assetService,
		debtService,
		feedbackService,
	)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Port),
		Handler: router,
	}

	go func() {
		zapLogger.Info("starting HTTP server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("forced shutdown", zap.Error(err))
	}
	zapLogger.Info("server exited gracefully")
}
