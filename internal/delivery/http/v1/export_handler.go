package v1

import (
	"fmt"

	"candidate-registry-backend/internal/domain"
	"candidate-registry-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportUC domain.ExportUsecase
}

func NewExportHandler(r *gin.RouterGroup, exportUC domain.ExportUsecase) {
	handler := &ExportHandler{exportUC: exportUC}
	r.GET("/candidates/export", handler.Export)
}

// Export streams the serialized record set. It accepts the same filter
// params as the list endpoint plus format and an optional filename stem.
func (h *ExportHandler) Export(c *gin.Context) {
	var filter domain.CandidateFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest("Paramètres de filtre invalides"))
		return
	}

	format := domain.ExportFormat(c.Query("format"))
	stem := c.Query("filename")

	payload, err := h.exportUC.Export(c, filter, format, stem)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payload.Filename))
	c.Data(200, payload.ContentType, payload.Data)
}
