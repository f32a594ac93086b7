package handler

import (
	"net/http"

	"pulseauto/internal/model"
	"pulseauto/internal/service"
	"pulseauto/pkg/pagination"
	"pulseauto/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/audit-logs")
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs pages through the change history, newest first
// @Summary      Get audit logs
// @Description  Retrieves the record change history with the acting operator
// @Tags         audit
// @Produce      json
// @Param        page       query     int     false  "Page number (default 1)"
// @Param        limit      query     int     false  "Number of items per page (default 20, max 100)"
// @Param        entity_id  query     string  false  "Only changes to this record"
// @Param        action     query     string  false  "Only this action, e.g. UPDATE_DEAL_STATUS"
// @Param        actor      query     string  false  "Only changes made by this operator"
// @Success      200        {object}  response.Response{data=object}
// @Failure      400        {object}  response.Response
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := pagination.Parse(c)

	filter := model.AuditFilter{
		EntityID: c.Query("entity_id"),
		Action:   c.Query("action"),
		Actor:    c.Query("actor"),
		Page:     params.Page,
		Limit:    params.Limit,
	}

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}
