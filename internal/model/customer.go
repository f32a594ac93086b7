package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer is a buyer on file. The SSN itself is never stored: only a bcrypt
// hash and the last four digits for display.
type Customer struct {
	ID               uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FirstName        string           `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName         string           `gorm:"type:varchar(100);not null;index" json:"last_name"`
	Email            string           `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone            string           `gorm:"type:varchar(50);not null" json:"phone"`
	Address          string           `gorm:"type:text" json:"address"`
	City             string           `gorm:"type:varchar(100)" json:"city"`
	State            string           `gorm:"type:varchar(50)" json:"state"`
	ZipCode          string           `gorm:"type:varchar(20)" json:"zip_code"`
	DateOfBirth      *time.Time       `gorm:"type:date" json:"date_of_birth"`
	SSNHash          string           `gorm:"type:varchar(100)" json:"-"`
	SSNLast4         string           `gorm:"type:varchar(4)" json:"ssn_last4"`
	CreditScore      *int             `json:"credit_score"`
	AnnualIncome     *decimal.Decimal `gorm:"type:decimal(12,2)" json:"annual_income"`
	EmploymentStatus string           `gorm:"type:varchar(50)" json:"employment_status"`
	Employer         string           `gorm:"type:varchar(255)" json:"employer"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
