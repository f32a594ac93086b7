package desking

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Request defaults, applied by NewRequest. A Request built by hand gets none of them.
const (
	DefaultSalesTaxRate    = "0.0925"
	DefaultDocFee          = "699.00"
	DefaultTitleFee        = "75.00"
	DefaultRegistrationFee = "24.00"
	DefaultInterestRate    = "7.5"
	DefaultLoanTerm        = 72
)

// Request is the deal structure fed to Calculate. InterestRate is an annual
// percentage (7.5 means 7.5%), SalesTaxRate is a fraction (0.0925 means 9.25%).
type Request struct {
	VehiclePrice decimal.Decimal
	TradeValue   decimal.Decimal
	DownPayment  decimal.Decimal

	ExtendedWarranty    decimal.Decimal
	GapInsurance        decimal.Decimal
	CreditLife          decimal.Decimal
	DisabilityInsurance decimal.Decimal
	ServiceContract     decimal.Decimal

	SalesTaxRate    decimal.Decimal
	DocFee          decimal.Decimal
	TitleFee        decimal.Decimal
	RegistrationFee decimal.Decimal

	InterestRate decimal.Decimal
	LoanTerm     int
}

// NewRequest returns a request for the given price with every other field at its default.
func NewRequest(vehiclePrice decimal.Decimal) Request {
	return Request{
		VehiclePrice:    vehiclePrice,
		SalesTaxRate:    decimal.RequireFromString(DefaultSalesTaxRate),
		DocFee:          decimal.RequireFromString(DefaultDocFee),
		TitleFee:        decimal.RequireFromString(DefaultTitleFee),
		RegistrationFee: decimal.RequireFromString(DefaultRegistrationFee),
		InterestRate:    decimal.RequireFromString(DefaultInterestRate),
		LoanTerm:        DefaultLoanTerm,
	}
}

// Validate reports the first constraint the request violates, wrapped in ErrInvalidInput.
func (r Request) Validate() error {
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{FieldVehiclePrice, r.VehiclePrice},
		{FieldTradeValue, r.TradeValue},
		{FieldDownPayment, r.DownPayment},
		{FieldExtendedWarranty, r.ExtendedWarranty},
		{FieldGapInsurance, r.GapInsurance},
		{FieldCreditLife, r.CreditLife},
		{FieldDisabilityInsurance, r.DisabilityInsurance},
		{FieldServiceContract, r.ServiceContract},
		{FieldDocFee, r.DocFee},
		{FieldTitleFee, r.TitleFee},
		{FieldRegistrationFee, r.RegistrationFee},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, a.name)
		}
	}

	if r.SalesTaxRate.IsNegative() || r.SalesTaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: sales_tax_rate must be a fraction between 0 and 1", ErrInvalidInput)
	}
	if r.InterestRate.IsNegative() {
		return fmt.Errorf("%w: interest_rate must not be negative", ErrInvalidInput)
	}
	if r.LoanTerm <= 0 {
		return fmt.Errorf("%w: loan_term must be a positive number of payments", ErrInvalidInput)
	}
	return nil
}
