package handler

import (
	"net/http"

	"pulseauto/internal/service"
	"pulseauto/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/admin/stats", h.GetAdminStats)
}

// @Summary      Get dashboard statistics
// @Description  Inventory, lead and deal counts with the average listed price, optionally for one dealer. Cached briefly.
// @Tags         admin
// @Produce      json
// @Param        dealer_id  query     string  false  "Dealer ID"
// @Success      200        {object}  response.Response{data=model.AdminStats}
// @Failure      500        {object}  response.Response
// @Router       /api/admin/stats [get]
func (h *StatisticsHandler) GetAdminStats(c *gin.Context) {
	stats, err := h.statisticsService.GetAdminStats(c.Request.Context(), c.Query("dealer_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
