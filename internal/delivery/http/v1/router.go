package v1

import (
	"net/http"

	"candidate-registry-backend/config"
	"candidate-registry-backend/internal/delivery/http/middleware"
	"candidate-registry-backend/internal/delivery/http/response"
	"candidate-registry-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	StatsUC     domain.StatsUsecase
	ExportUC    domain.ExportUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewCandidateHandler(v1, deps.CandidateUC, deps.Config.DefaultPageSize)
	NewStatsHandler(v1, deps.StatsUC)
	NewExportHandler(v1, deps.ExportUC)

	return r
}
