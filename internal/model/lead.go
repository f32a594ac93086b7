package model

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus enum constants
const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusQualified = "Qualified"
	LeadStatusLost      = "Lost"
	LeadStatusSold      = "Sold"
)

const LeadSourceWebsite = "Website"

// Lead is a prospective buyer's inquiry
type Lead struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerName    string     `gorm:"type:varchar(255);not null" json:"customer_name"`
	Email           string     `gorm:"type:varchar(255);not null" json:"email"`
	Phone           string     `gorm:"type:varchar(50);not null" json:"phone"`
	VehicleID       *uuid.UUID `gorm:"type:uuid;index" json:"vehicle_id"`
	VehicleInterest string     `gorm:"type:varchar(255)" json:"vehicle_interest"`
	Message         string     `gorm:"type:text" json:"message"`
	Status          string     `gorm:"type:varchar(20);not null;default:'New';index" json:"status"` // New, Contacted, Qualified, Lost, Sold
	Source          string     `gorm:"type:varchar(50);not null;default:'Website'" json:"source"`
	DealerID        string     `gorm:"type:varchar(100);not null;index" json:"dealer_id"`
	AssignedTo      string     `gorm:"type:varchar(255)" json:"assigned_to"`
	FollowUpDate    *time.Time `json:"follow_up_date"`
	Notes           []string   `gorm:"type:jsonb;serializer:json" json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// LeadFilter narrows a lead listing
type LeadFilter struct {
	Status   string
	DealerID string
	Skip     int
	Limit    int
}
