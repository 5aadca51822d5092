package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"fakenews-api/internal/config"
	"fakenews-api/internal/handler"
	"fakenews-api/internal/middleware"
	"fakenews-api/internal/ml"
	"fakenews-api/internal/repository"
	"fakenews-api/internal/service"
)

type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, model *ml.Model, logger *zap.Logger) *Server {
	router := gin.Default()

	s := &Server{
		router: router,
		logger: logger,
	}

	s.setupRoutes(db, cfg, model)

	return s
}

func (s *Server) setupRoutes(db *sqlx.DB, cfg *config.Config, model *ml.Model) {
	// Repositories
	analysisRepo := repository.NewAnalysisRepository(db, cfg.Model.StoredTextLimit, s.logger)
	usageRepo := repository.NewAPIUsageRepository(db, s.logger)
	modelInfoRepo := repository.NewModelInfoRepository(db, s.logger)

	// Services
	analysisService := service.NewAnalysisService(analysisRepo, model, cfg.Model.MaxTextLength, s.logger)
	statsService := service.NewStatsService(analysisRepo, usageRepo, model, s.logger)

	// Handlers
	analysisHandler := handler.NewAnalysisHandler(analysisService, s.logger)
	modelHandler := handler.NewModelHandler(model, modelInfoRepo, db, cfg, s.logger)
	statsHandler := handler.NewStatsHandler(statsService, s.logger)

	// Ping route for liveness probes; not part of the audited API surface
	s.router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Every /api invocation is recorded for audit and stats
	api := s.router.Group("/api")
	api.Use(middleware.UsageRecorder(usageRepo, s.logger))
	{
		api.POST("/analyze", analysisHandler.Analyze)
		api.GET("/analysis/:id", analysisHandler.GetByID)
		api.GET("/model/info", modelHandler.Info)
		api.GET("/health", modelHandler.Health)
		api.GET("/stats", statsHandler.GetStats)
	}
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("port", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
