package v1

import (
	"net/http"
	"time"

	"candidate-registry-backend/internal/delivery/http/response"
	"candidate-registry-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsUC domain.StatsUsecase
}

func NewStatsHandler(r *gin.RouterGroup, statsUC domain.StatsUsecase) {
	handler := &StatsHandler{statsUC: statsUC}
	r.GET("/candidates/stats", handler.Registration)
}

func (h *StatsHandler) Registration(c *gin.Context) {
	stats, err := h.statsUC.Registration(c, time.Now())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Statistiques d'inscription", stats)
}
