package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealStatus enum constants
const (
	DealStatusPending  = "Pending"
	DealStatusApproved = "Approved"
	DealStatusFunded   = "Funded"
	DealStatusDeclined = "Declined"
)

// Deal is a structured vehicle sale. Input figures come from the sales desk;
// the derived figures are written by the desking calculator at creation.
// Money and rate columns are unscaled numeric so stored figures read back
// exactly as the calculator produced them.
type Deal struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	VehicleID   uuid.UUID `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	DealerID    string    `gorm:"type:varchar(100);not null;index" json:"dealer_id"`
	SalesPerson string    `gorm:"type:varchar(255);not null" json:"sales_person"`

	// Vehicle information
	VehiclePrice decimal.Decimal `gorm:"type:numeric;not null" json:"vehicle_price"`
	TradeValue   decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"trade_value"`
	DownPayment  decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"down_payment"`

	// Finance information
	LoanAmount     decimal.Decimal `gorm:"type:numeric;not null" json:"loan_amount"`
	InterestRate   decimal.Decimal `gorm:"type:numeric;not null" json:"interest_rate"`
	LoanTerm       int             `gorm:"not null" json:"loan_term"`
	MonthlyPayment decimal.Decimal `gorm:"type:numeric;not null" json:"monthly_payment"`

	// Add-ons
	ExtendedWarranty    decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"extended_warranty"`
	GapInsurance        decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"gap_insurance"`
	CreditLife          decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"credit_life"`
	DisabilityInsurance decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"disability_insurance"`
	ServiceContract     decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"service_contract"`

	// Taxes and fees
	SalesTaxRate    decimal.Decimal `gorm:"type:numeric;not null" json:"sales_tax_rate"`
	SalesTax        decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"sales_tax"`
	DocFee          decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"doc_fee"`
	TitleFee        decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"title_fee"`
	RegistrationFee decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"registration_fee"`

	// Totals
	TotalAddOns         decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"total_add_ons"`
	TotalFees           decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"total_fees"`
	TotalAmountFinanced decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"total_amount_financed"`

	Status string `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"` // Pending, Approved, Funded, Declined

	// Lender approval
	Lender          string           `gorm:"type:varchar(255)" json:"lender"`
	ApprovalAmount  *decimal.Decimal `gorm:"type:numeric" json:"approval_amount"`
	ApprovedRate    *decimal.Decimal `gorm:"type:numeric" json:"approved_rate"`
	ApprovedTerm    *int             `json:"approved_term"`
	ApprovedPayment *decimal.Decimal `gorm:"type:numeric" json:"approved_payment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DealFilter narrows a deal listing
type DealFilter struct {
	DealerID string
	Status   string
	Skip     int
	Limit    int
}
