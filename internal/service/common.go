package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pulseauto/internal/model"
	"pulseauto/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid request")
	ErrConflict   = errors.New("conflict")
)

// Realtime event types pushed to dashboards
const (
	EventVehicleCreated = "vehicle.created"
	EventVehicleUpdated = "vehicle.updated"
	EventVehicleDeleted = "vehicle.deleted"
	EventLeadCreated    = "lead.created"
	EventLeadUpdated    = "lead.updated"
	EventDealCreated    = "deal.created"
	EventDealUpdated    = "deal.updated"
)

// EventPublisher fans record changes out to connected dashboards
type EventPublisher interface {
	Publish(eventType string, data interface{})
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// lookupError turns gorm's not-found into ErrNotFound and wraps everything else
func lookupError(entity string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, entity)
	}
	return fmt.Errorf("failed to fetch %s: %w", entity, err)
}

func parseID(entity, id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, validationError("invalid %s id", entity)
	}
	return uid, nil
}

func writeAudit(ctx context.Context, repo repository.AuditRepository, actor, action, entityID, entityName string, details interface{}) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode audit details: %w", err)
	}
	entry := &model.AuditLog{
		Actor:      actor,
		Action:     action,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    string(detailsJSON),
	}
	if err := repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
