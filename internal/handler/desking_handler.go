package handler

import (
	"net/http"

	"pulseauto/internal/service"

	"github.com/gin-gonic/gin"
)

type DeskingHandler struct {
	deskingService service.DeskingService
}

func NewDeskingHandler(deskingService service.DeskingService) *DeskingHandler {
	return &DeskingHandler{deskingService: deskingService}
}

func (h *DeskingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/desking/calculate", h.Calculate)
}

// Calculate structures a deal and returns the itemized payment breakdown
// @Summary      Calculate desking
// @Description  Computes taxes, fees, amount financed and the monthly payment. Omitted fields take dealership defaults. The result is returned without the response envelope.
// @Tags         desking
// @Accept       json
// @Produce      json
// @Param        payload  body      service.DeskingCalculateRequest  true  "Deal structure"
// @Success      200      {object}  service.DeskingResponse
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/desking/calculate [post]
func (h *DeskingHandler) Calculate(c *gin.Context) {
	var req service.DeskingCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.deskingService.Calculate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
