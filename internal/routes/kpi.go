package routes

import (
	"github.com/gin-gonic/gin"

	"kpi_platform/internal/handlers"
)

type KPIRoutes struct {
	handler *handlers.KPIHandler
}

func NewKPIRoutes(handler *handlers.KPIHandler) *KPIRoutes {
	return &KPIRoutes{handler: handler}
}

func (r *KPIRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/kpis", r.handler.List)
}
