package handler

import (
	"net/http"

	"pulseauto/internal/middleware"
	"pulseauto/internal/model"
	"pulseauto/internal/service"
	"pulseauto/pkg/pagination"
	"pulseauto/pkg/response"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	dealService service.DealService
}

func NewDealHandler(dealService service.DealService) *DealHandler {
	return &DealHandler{dealService: dealService}
}

func (h *DealHandler) RegisterRoutes(router *gin.RouterGroup) {
	deals := router.Group("/api/deals")
	{
		deals.GET("", h.ListDeals)
		deals.GET("/:id", h.GetDeal)
		deals.POST("", h.CreateDeal)
		deals.PATCH("/:id/status", h.UpdateDealStatus)
	}
}

// ListDeals handles deal listings
// @Summary      List deals
// @Tags         deals
// @Produce      json
// @Param        dealer_id  query     string  false  "Dealer ID"
// @Param        status     query     string  false  "Pending, Approved, Funded or Declined"
// @Param        skip       query     int     false  "Records to skip (default 0)"
// @Param        limit      query     int     false  "Page size, 1-1000 (default 100)"
// @Success      200        {object}  response.Response{data=[]model.Deal}
// @Failure      400        {object}  response.Response
// @Router       /api/deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	window, ok := pagination.ParseWindow(c)
	if !ok {
		respondBadWindow(c)
		return
	}

	deals, total, err := h.dealService.ListDeals(c.Request.Context(), model.DealFilter{
		DealerID: c.Query("dealer_id"),
		Status:   c.Query("status"),
		Skip:     window.Skip,
		Limit:    window.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, deals, total, window.Skip, window.Limit))
}

// GetDeal fetches one deal
// @Summary      Get deal
// @Tags         deals
// @Produce      json
// @Param        id   path      string  true  "Deal ID"
// @Success      200  {object}  response.Response{data=model.Deal}
// @Failure      404  {object}  response.Response
// @Router       /api/deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	deal, err := h.dealService.GetDeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, deal))
}

// CreateDeal structures and saves a deal
// @Summary      Create deal
// @Description  Runs the desking calculator on the deal inputs and stores the inputs together with the computed figures.
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        X-Actor  header    string                     false  "Operator name recorded in the audit log"
// @Param        payload  body      service.CreateDealRequest  true   "Deal"
// @Success      201      {object}  response.Response{data=model.Deal}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var req service.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	deal, err := h.dealService.CreateDeal(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, deal))
}

// UpdateDealStatus moves a deal through lender approval
// @Summary      Update deal status
// @Description  Allowed moves are Pending to Approved or Declined, and Approved to Funded or Declined. Once amount, rate and term are all known the approved payment is recomputed.
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true   "Deal ID"
// @Param        X-Actor  header    string                           false  "Operator name recorded in the audit log"
// @Param        payload  body      service.UpdateDealStatusRequest  true   "Status change"
// @Success      200      {object}  response.Response{data=model.Deal}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/deals/{id}/status [patch]
func (h *DealHandler) UpdateDealStatus(c *gin.Context) {
	var req service.UpdateDealStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	deal, err := h.dealService.UpdateDealStatus(c.Request.Context(), middleware.Actor(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, deal))
}
