package handler

import (
	"net/http"

	"pulseauto/internal/middleware"
	"pulseauto/internal/service"
	"pulseauto/pkg/pagination"
	"pulseauto/pkg/response"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/api/customers")
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
		customers.DELETE("/:id", h.DeleteCustomer)
	}
}

// ListCustomers handles customer listings
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        search  query     string  false  "Matches first name, last name, email or phone"
// @Param        skip    query     int     false  "Records to skip (default 0)"
// @Param        limit   query     int     false  "Page size, 1-1000 (default 100)"
// @Success      200     {object}  response.Response{data=[]model.Customer}
// @Failure      400     {object}  response.Response
// @Router       /api/customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	window, ok := pagination.ParseWindow(c)
	if !ok {
		respondBadWindow(c)
		return
	}

	customers, total, err := h.customerService.ListCustomers(c.Request.Context(), c.Query("search"), window.Skip, window.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMeta(http.StatusOK, customers, total, window.Skip, window.Limit))
}

// GetCustomer fetches one customer
// @Summary      Get customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {object}  response.Response{data=model.Customer}
// @Failure      404  {object}  response.Response
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, customer))
}

// CreateCustomer adds a buyer to file
// @Summary      Create customer
// @Description  The SSN is never stored; only a bcrypt hash and the last four digits are kept.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        X-Actor  header    string                         false  "Operator name recorded in the audit log"
// @Param        payload  body      service.CreateCustomerRequest  true   "Customer"
// @Success      201      {object}  response.Response{data=model.Customer}
// @Failure      400      {object}  response.Response
// @Router       /api/customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, customer))
}

// UpdateCustomer patches the fields present in the payload
// @Summary      Update customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true   "Customer ID"
// @Param        X-Actor  header    string                         false  "Operator name recorded in the audit log"
// @Param        payload  body      service.UpdateCustomerRequest  true   "Fields to change"
// @Success      200      {object}  response.Response{data=model.Customer}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), middleware.Actor(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, customer))
}

// DeleteCustomer removes a customer
// @Summary      Delete customer
// @Tags         customers
// @Produce      json
// @Param        id       path      string  true   "Customer ID"
// @Param        X-Actor  header    string  false  "Operator name recorded in the audit log"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Customer deleted successfully"}))
}
