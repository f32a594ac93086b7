package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pulseauto/internal/model"
	"pulseauto/internal/repository"
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	Actor      string `json:"actor"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

var auditActions = []string{
	model.ActionCreateVehicle,
	model.ActionUpdateVehicle,
	model.ActionDeleteVehicle,
	model.ActionCreateLead,
	model.ActionUpdateLeadStatus,
	model.ActionCreateCustomer,
	model.ActionUpdateCustomer,
	model.ActionDeleteCustomer,
	model.ActionCreateDeal,
	model.ActionUpdateDealStatus,
	model.ActionCreateRepairShop,
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, filter model.AuditFilter) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
}

func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// GetAuditLogs returns one page of the trail, newest first. Entries without an actor show as "System".
func (s *auditService) GetAuditLogs(ctx context.Context, filter model.AuditFilter) ([]AuditLogResponse, int64, error) {
	filter.EntityID = strings.TrimSpace(filter.EntityID)
	filter.Action = strings.ToUpper(strings.TrimSpace(filter.Action))
	filter.Actor = strings.TrimSpace(filter.Actor)
	if filter.Action != "" && !contains(auditActions, filter.Action) {
		return nil, 0, validationError("unknown audit action %q", filter.Action)
	}

	logs, total, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		actor := l.Actor
		if actor == "" {
			actor = "System"
		}
		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			Actor:      actor,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format(time.RFC3339),
		})
	}
	return res, total, nil
}
