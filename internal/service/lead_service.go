package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"pulseauto/internal/model"
	"pulseauto/internal/repository"

	"github.com/google/uuid"
)

// --- DTOs ---

type CreateLeadRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	VehicleID       string `json:"vehicle_id"`
	VehicleInterest string `json:"vehicle_interest"`
	Message         string `json:"message"`
	Source          string `json:"source"`
	DealerID        string `json:"dealer_id" binding:"required"`
}

// UpdateLeadRequest moves a lead to a new status and optionally appends a note.
// It binds from a JSON body or from the status/notes query parameters.
type UpdateLeadRequest struct {
	Status       string     `json:"status" form:"status" binding:"required"`
	Notes        string     `json:"notes" form:"notes"`
	AssignedTo   *string    `json:"assigned_to" form:"assigned_to"`
	FollowUpDate *time.Time `json:"follow_up_date" form:"follow_up_date" time_format:"2006-01-02T15:04:05Z07:00"`
}

// --- Interface ---

type LeadService interface {
	CreateLead(ctx context.Context, actor string, req CreateLeadRequest) (*model.Lead, error)
	UpdateLead(ctx context.Context, actor, id string, req UpdateLeadRequest) (*model.Lead, error)
	GetLead(ctx context.Context, id string) (*model.Lead, error)
	ListLeads(ctx context.Context, filter model.LeadFilter) ([]model.Lead, int64, error)
}

type leadService struct {
	leadRepo  repository.LeadRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	events    EventPublisher
	now       func() time.Time
}

func NewLeadService(
	leadRepo repository.LeadRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) LeadService {
	return &leadService{
		leadRepo:  leadRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		events:    events,
		now:       time.Now,
	}
}

var validLeadStatuses = []string{
	model.LeadStatusNew,
	model.LeadStatusContacted,
	model.LeadStatusQualified,
	model.LeadStatusLost,
	model.LeadStatusSold,
}

func (s *leadService) CreateLead(ctx context.Context, actor string, req CreateLeadRequest) (*model.Lead, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, validationError("invalid email format")
	}

	lead := &model.Lead{
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		VehicleInterest: req.VehicleInterest,
		Message:         req.Message,
		Status:          model.LeadStatusNew,
		Source:          req.Source,
		DealerID:        req.DealerID,
		Notes:           []string{},
	}
	if lead.Source == "" {
		lead.Source = model.LeadSourceWebsite
	}
	if req.VehicleID != "" {
		vid, err := uuid.Parse(req.VehicleID)
		if err != nil {
			return nil, validationError("invalid vehicle_id")
		}
		lead.VehicleID = &vid
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.leadRepo.Create(txCtx, lead); err != nil {
			return fmt.Errorf("failed to create lead: %w", err)
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionCreateLead, lead.ID.String(), lead.CustomerName, req)
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(EventLeadCreated, lead)
	return lead, nil
}

func (s *leadService) UpdateLead(ctx context.Context, actor, id string, req UpdateLeadRequest) (*model.Lead, error) {
	uid, err := parseID("lead", id)
	if err != nil {
		return nil, err
	}
	if !contains(validLeadStatuses, req.Status) {
		return nil, validationError("status must be one of: %s", strings.Join(validLeadStatuses, ", "))
	}

	var lead *model.Lead
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		found, err := s.leadRepo.FindByIDForUpdate(txCtx, uid)
		if err != nil {
			return lookupError("lead", err)
		}

		found.Status = req.Status
		if note := strings.TrimSpace(req.Notes); note != "" {
			found.Notes = append(found.Notes, s.now().UTC().Format(time.RFC3339)+": "+note)
		}
		if req.AssignedTo != nil {
			found.AssignedTo = *req.AssignedTo
		}
		if req.FollowUpDate != nil {
			found.FollowUpDate = req.FollowUpDate
		}

		if err := s.leadRepo.Update(txCtx, found); err != nil {
			return fmt.Errorf("failed to update lead: %w", err)
		}
		lead = found
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionUpdateLeadStatus, found.ID.String(), found.CustomerName, req)
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(EventLeadUpdated, lead)
	return lead, nil
}

func (s *leadService) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	uid, err := parseID("lead", id)
	if err != nil {
		return nil, err
	}
	lead, err := s.leadRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, lookupError("lead", err)
	}
	return lead, nil
}

func (s *leadService) ListLeads(ctx context.Context, filter model.LeadFilter) ([]model.Lead, int64, error) {
	if filter.Status != "" && !contains(validLeadStatuses, filter.Status) {
		return nil, 0, validationError("status must be one of: %s", strings.Join(validLeadStatuses, ", "))
	}
	leads, total, err := s.leadRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch leads: %w", err)
	}
	return leads, total, nil
}
