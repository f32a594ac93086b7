package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreateVehicle    = "CREATE_VEHICLE"
	ActionUpdateVehicle    = "UPDATE_VEHICLE"
	ActionDeleteVehicle    = "DELETE_VEHICLE"
	ActionCreateLead       = "CREATE_LEAD"
	ActionUpdateLeadStatus = "UPDATE_LEAD_STATUS"
	ActionCreateCustomer   = "CREATE_CUSTOMER"
	ActionUpdateCustomer   = "UPDATE_CUSTOMER"
	ActionDeleteCustomer   = "DELETE_CUSTOMER"
	ActionCreateDeal       = "CREATE_DEAL"
	ActionUpdateDealStatus = "UPDATE_DEAL_STATUS"
	ActionCreateRepairShop = "CREATE_REPAIR_SHOP"
)

// AuditLog tracks Who, What, and When for record changes
type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Actor      string    `gorm:"type:varchar(255);index" json:"actor"` // Free text from X-Actor, empty when unknown
	Action     string    `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityID   string    `gorm:"type:varchar(50);index" json:"entity_id"`
	EntityName string    `gorm:"type:varchar(255)" json:"entity_name,omitempty"`
	Details    string    `gorm:"type:jsonb" json:"details"` // Serialized JSON payload of the action
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// AuditFilter narrows the trail to one record, one action or one operator.
// Empty fields match everything.
type AuditFilter struct {
	EntityID string
	Action   string
	Actor    string
	Page     int
	Limit    int
}
