package handler

import (
	"net/http"
	"strconv"

	"pulseauto/internal/middleware"
	"pulseauto/internal/model"
	"pulseauto/internal/service"
	"pulseauto/pkg/pagination"
	"pulseauto/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type VehicleHandler struct {
	vehicleService service.VehicleService
}

func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

func (h *VehicleHandler) RegisterRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/api/vehicles")
	{
		vehicles.GET("", h.ListVehicles)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.POST("", h.CreateVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
	}
}

// ListVehicles handles filtered inventory listings
// @Summary      List vehicles
// @Description  Retrieves vehicles filtered by make, year, price range, status and dealer
// @Tags         vehicles
// @Produce      json
// @Param        make       query     string  false  "Make (case-insensitive substring)"
// @Param        year       query     int     false  "Model year"
// @Param        min_price  query     number  false  "Minimum price"
// @Param        max_price  query     number  false  "Maximum price"
// @Param        status     query     string  false  "Available, Sold, Pending or Hold"
// @Param        dealer_id  query     string  false  "Dealer ID"
// @Param        skip       query     int     false  "Records to skip (default 0)"
// @Param        limit      query     int     false  "Page size, 1-1000 (default 100)"
// @Success      200        {object}  response.Response{data=[]model.Vehicle}
// @Failure      400        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Router       /api/vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	window, ok := pagination.ParseWindow(c)
	if !ok {
		respondBadWindow(c)
		return
	}

	filter := model.VehicleFilter{
		Make:     c.Query("make"),
		Status:   c.Query("status"),
		DealerID: c.Query("dealer_id"),
		Skip:     window.Skip,
		Limit:    window.Limit,
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "year must be an integer"))
			return
		}
		filter.Year = year
	}
	for param, dst := range map[string]**decimal.Decimal{"min_price": &filter.MinPrice, "max_price": &filter.MaxPrice} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, param+" must be a number"))
			return
		}
		*dst = &value
	}

	vehicles, total, err := h.vehicleService.ListVehicles(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, vehicles, total, window.Skip, window.Limit))
}

// GetVehicle fetches one vehicle
// @Summary      Get vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id   path      string  true  "Vehicle ID"
// @Success      200  {object}  response.Response{data=model.Vehicle}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, vehicle))
}

// CreateVehicle adds a vehicle to inventory
// @Summary      Create vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        X-Actor  header    string                  false  "Operator name recorded in the audit log"
// @Param        payload  body      service.VehicleRequest  true   "Vehicle"
// @Success      201      {object}  response.Response{data=model.Vehicle}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var req service.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, vehicle))
}

// UpdateVehicle replaces a vehicle's details
// @Summary      Update vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true   "Vehicle ID"
// @Param        X-Actor  header    string                  false  "Operator name recorded in the audit log"
// @Param        payload  body      service.VehicleRequest  true   "Vehicle"
// @Success      200      {object}  response.Response{data=model.Vehicle}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var req service.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), middleware.Actor(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, vehicle))
}

// DeleteVehicle removes a vehicle from inventory
// @Summary      Delete vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id       path      string  true   "Vehicle ID"
// @Param        X-Actor  header    string  false  "Operator name recorded in the audit log"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"}))
}
