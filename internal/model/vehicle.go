package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleStatus enum constants
const (
	VehicleStatusAvailable = "Available"
	VehicleStatusSold      = "Sold"
	VehicleStatusPending   = "Pending"
	VehicleStatusHold      = "Hold"
)

// Vehicle is a unit in a dealer's inventory
type Vehicle struct {
	ID            uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	VIN           string           `gorm:"type:varchar(17);index" json:"vin"`
	Year          int              `gorm:"not null;index" json:"year"`
	Make          string           `gorm:"type:varchar(100);not null;index" json:"make"`
	Model         string           `gorm:"type:varchar(100);not null" json:"model"`
	Trim          string           `gorm:"type:varchar(100)" json:"trim"`
	Mileage       int              `gorm:"not null" json:"mileage"`
	Price         decimal.Decimal  `gorm:"type:decimal(12,2);not null;index" json:"price"`
	Cost          *decimal.Decimal `gorm:"type:decimal(12,2)" json:"cost"`
	ExteriorColor string           `gorm:"type:varchar(50)" json:"exterior_color"`
	InteriorColor string           `gorm:"type:varchar(50)" json:"interior_color"`
	Transmission  string           `gorm:"type:varchar(50)" json:"transmission"`
	FuelType      string           `gorm:"type:varchar(50)" json:"fuel_type"`
	Drivetrain    string           `gorm:"type:varchar(50)" json:"drivetrain"`
	Engine        string           `gorm:"type:varchar(100)" json:"engine"`
	Images        []string         `gorm:"type:jsonb;serializer:json" json:"images"`
	Features      []string         `gorm:"type:jsonb;serializer:json" json:"features"`
	Status        string           `gorm:"type:varchar(20);not null;default:'Available';index" json:"status"` // Available, Sold, Pending, Hold
	DealerID      string           `gorm:"type:varchar(100);not null;index" json:"dealer_id"`
	DealerName    string           `gorm:"type:varchar(255);not null" json:"dealer_name"`
	StockNumber   string           `gorm:"type:varchar(50)" json:"stock_number"`
	Description   string           `gorm:"type:text" json:"description"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// VehicleFilter narrows a vehicle listing; zero values mean "no filter"
type VehicleFilter struct {
	Make     string
	Year     int
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Status   string
	DealerID string
	Skip     int
	Limit    int
}
