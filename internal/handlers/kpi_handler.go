package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kpi_platform/internal/repositories"
	"kpi_platform/internal/responses"
)

type KPIHandler struct {
	kpiRepo *repositories.KPIRepository
}

func NewKPIHandler(kpiRepo *repositories.KPIRepository) *KPIHandler {
	return &KPIHandler{kpiRepo: kpiRepo}
}

// List handles GET /kpis: the static KPI catalog.
func (h *KPIHandler) List(c *gin.Context) {
	kpis, err := h.kpiRepo.List(c.Request.Context())
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to load KPI catalog")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"kpis": kpis, "count": len(kpis)}, "")
}
