package v1

import (
	"net/http"

	"candidate-registry-backend/internal/delivery/http/response"
	"candidate-registry-backend/internal/domain"
	"candidate-registry-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC     domain.CandidateUsecase
	defaultPageSize int
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, defaultPageSize int) {
	handler := &CandidateHandler{candidateUC: candidateUC, defaultPageSize: defaultPageSize}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", handler.Create)
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.PATCH("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}

	candidate, err := h.candidateUC.Create(c, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Candidat créé", candidate)
}

// List returns one page of the filtered record set. The UI resets page to 1
// whenever a filter input changes; the server clamps whatever page it gets,
// so a stale page number yields an empty page, never an error.
func (h *CandidateHandler) List(c *gin.Context) {
	var filter domain.CandidateFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest("Paramètres de filtre invalides"))
		return
	}

	if filter.PageSize == 0 {
		filter.PageSize = h.defaultPageSize
	}

	result, err := h.candidateUC.List(c, filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Liste des candidats", result)
}

func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.Get(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidat", candidate)
}

func (h *CandidateHandler) Update(c *gin.Context) {
	var patch domain.CandidateUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest("Corps de requête invalide"))
		return
	}

	candidate, err := h.candidateUC.Update(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidat mis à jour", candidate)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.Delete(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidat supprimé", nil)
}
