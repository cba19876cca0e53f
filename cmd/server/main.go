package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/elsur/driving-school-api/api/swagger"
	"github.com/elsur/driving-school-api/internal/handler"
	"github.com/elsur/driving-school-api/internal/middleware"
	"github.com/elsur/driving-school-api/internal/repository"
	"github.com/elsur/driving-school-api/internal/service"
	"github.com/elsur/driving-school-api/pkg/config"
	"github.com/elsur/driving-school-api/pkg/logger"
	corsmiddleware "github.com/elsur/driving-school-api/pkg/middleware/cors"
	reqidmiddleware "github.com/elsur/driving-school-api/pkg/middleware/requestid"
	"github.com/elsur/driving-school-api/pkg/pdfform"
)

// @title El Sur Driving School API
// @version 1.0.0
// @description Roster fetch and enrollment PDF generation for the front desk
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	validate := service.NewValidator()
	sheetRepo := repository.NewSheetRepository(cfg.Google)
	rosterSvc := service.NewRosterService(sheetRepo, cfg.Google, logr)
	exportSvc := service.NewExportService(pdfform.New(cfg.Template.Path), validate, logr)

	studentHandler := handler.NewStudentHandler(rosterSvc)
	exportHandler := handler.NewExportHandler(exportSvc, metricsSvc)
	authHandler := handler.NewAuthHandler(cfg.Google, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metricsSvc != nil {
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.GET("/students", studentHandler.List)
	if cfg.Roster.ExportEnabled {
		api.GET("/students/export", studentHandler.Download)
	}
	api.POST("/export", exportHandler.Export)
	api.GET("/auth/google", authHandler.Connect)
	api.GET("/auth/callback", authHandler.Callback)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
