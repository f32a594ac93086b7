package handler

import (
	"net/http"

	"pulseauto/internal/middleware"
	"pulseauto/internal/model"
	"pulseauto/internal/service"
	"pulseauto/pkg/response"

	"github.com/gin-gonic/gin"
)

type RepairShopHandler struct {
	repairShopService service.RepairShopService
}

func NewRepairShopHandler(repairShopService service.RepairShopService) *RepairShopHandler {
	return &RepairShopHandler{repairShopService: repairShopService}
}

func (h *RepairShopHandler) RegisterRoutes(router *gin.RouterGroup) {
	shops := router.Group("/api/repair-shops")
	{
		shops.GET("", h.ListRepairShops)
		shops.POST("", h.CreateRepairShop)
	}
}

// ListRepairShops searches the partner directory
// @Summary      List repair shops
// @Tags         repair-shops
// @Produce      json
// @Param        city      query     string  false  "City (case-insensitive substring)"
// @Param        state     query     string  false  "State (case-insensitive substring)"
// @Param        zip_code  query     string  false  "Exact zip code"
// @Param        service   query     string  false  "Offered service"
// @Success      200       {object}  response.Response{data=[]model.RepairShop}
// @Router       /api/repair-shops [get]
func (h *RepairShopHandler) ListRepairShops(c *gin.Context) {
	shops, err := h.repairShopService.ListRepairShops(c.Request.Context(), model.RepairShopFilter{
		City:    c.Query("city"),
		State:   c.Query("state"),
		ZipCode: c.Query("zip_code"),
		Service: c.Query("service"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, shops))
}

// CreateRepairShop lists a new service partner
// @Summary      Create repair shop
// @Tags         repair-shops
// @Accept       json
// @Produce      json
// @Param        X-Actor  header    string                           false  "Operator name recorded in the audit log"
// @Param        payload  body      service.CreateRepairShopRequest  true   "Repair shop"
// @Success      201      {object}  response.Response{data=model.RepairShop}
// @Failure      400      {object}  response.Response
// @Router       /api/repair-shops [post]
func (h *RepairShopHandler) CreateRepairShop(c *gin.Context) {
	var req service.CreateRepairShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	shop, err := h.repairShopService.CreateRepairShop(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, shop))
}
