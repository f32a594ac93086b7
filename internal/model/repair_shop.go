package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RepairShop is a service partner listed for buyers
type RepairShop struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Address     string          `gorm:"type:text;not null" json:"address"`
	City        string          `gorm:"type:varchar(100);not null;index" json:"city"`
	State       string          `gorm:"type:varchar(50);not null;index" json:"state"`
	ZipCode     string          `gorm:"type:varchar(20);not null;index" json:"zip_code"`
	Phone       string          `gorm:"type:varchar(50);not null" json:"phone"`
	Email       string          `gorm:"type:varchar(255)" json:"email"`
	Website     string          `gorm:"type:varchar(255)" json:"website"`
	Services    []string        `gorm:"type:jsonb;serializer:json" json:"services"`
	Hours       string          `gorm:"type:varchar(255)" json:"hours"`
	Rating      decimal.Decimal `gorm:"type:decimal(3,2);default:0" json:"rating"`
	ReviewCount int             `gorm:"default:0" json:"review_count"`
	ImageURL    string          `gorm:"type:varchar(500)" json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
}

// RepairShopFilter narrows a repair shop listing
type RepairShopFilter struct {
	City    string
	State   string
	ZipCode string
	Service string
}
