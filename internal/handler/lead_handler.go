package handler

import (
	"net/http"

	"pulseauto/internal/middleware"
	"pulseauto/internal/model"
	"pulseauto/internal/service"
	"pulseauto/pkg/pagination"
	"pulseauto/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type LeadHandler struct {
	leadService service.LeadService
}

func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

func (h *LeadHandler) RegisterRoutes(router *gin.RouterGroup) {
	leads := router.Group("/api/leads")
	{
		leads.GET("", h.ListLeads)
		leads.GET("/:id", h.GetLead)
		leads.POST("", h.CreateLead)
		leads.PUT("/:id", h.UpdateLead)
	}
}

// ListLeads handles lead listings
// @Summary      List leads
// @Tags         leads
// @Produce      json
// @Param        status     query     string  false  "New, Contacted, Qualified, Lost or Sold"
// @Param        dealer_id  query     string  false  "Dealer ID"
// @Param        skip       query     int     false  "Records to skip (default 0)"
// @Param        limit      query     int     false  "Page size, 1-1000 (default 100)"
// @Success      200        {object}  response.Response{data=[]model.Lead}
// @Failure      400        {object}  response.Response
// @Router       /api/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	window, ok := pagination.ParseWindow(c)
	if !ok {
		respondBadWindow(c)
		return
	}

	leads, total, err := h.leadService.ListLeads(c.Request.Context(), model.LeadFilter{
		Status:   c.Query("status"),
		DealerID: c.Query("dealer_id"),
		Skip:     window.Skip,
		Limit:    window.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, leads, total, window.Skip, window.Limit))
}

// GetLead fetches one lead
// @Summary      Get lead
// @Tags         leads
// @Produce      json
// @Param        id   path      string  true  "Lead ID"
// @Success      200  {object}  response.Response{data=model.Lead}
// @Failure      404  {object}  response.Response
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.leadService.GetLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, lead))
}

// CreateLead records a new inquiry
// @Summary      Create lead
// @Description  Records a buyer inquiry. New leads start in status New and are broadcast to connected dashboards.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        X-Actor  header    string                     false  "Operator name recorded in the audit log"
// @Param        payload  body      service.CreateLeadRequest  true   "Lead"
// @Success      201      {object}  response.Response{data=model.Lead}
// @Failure      400      {object}  response.Response
// @Router       /api/leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, lead))
}

// UpdateLead moves a lead to a new status and appends an optional note
// @Summary      Update lead status
// @Description  Accepts a JSON body, or status and notes as query parameters when no body is sent. Notes are appended with a UTC timestamp.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true   "Lead ID"
// @Param        X-Actor  header    string                     false  "Operator name recorded in the audit log"
// @Param        status   query     string                     false  "New status"
// @Param        notes    query     string                     false  "Note to append"
// @Param        payload  body      service.UpdateLeadRequest  false  "Status change"
// @Success      200      {object}  response.Response{data=model.Lead}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var req service.UpdateLeadRequest
	var err error
	if hasBody(c.Request) {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindWith(&req, binding.Query)
	}
	if err != nil {
		respondBindError(c, err)
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), middleware.Actor(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, lead))
}

// hasBody is true for any request that carries a body, chunked ones included
func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody
}
