// Package desking structures a vehicle sale into an amount financed and a
// monthly payment: trade netting, add-ons, sales tax, fees and an amortizing
// loan. Everything here is pure and safe for concurrent use.
package desking

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Breakdown keys, also used as field names in validation errors.
const (
	FieldVehiclePrice        = "vehicle_price"
	FieldTradeValue          = "trade_value"
	FieldDownPayment         = "down_payment"
	FieldExtendedWarranty    = "extended_warranty"
	FieldGapInsurance        = "gap_insurance"
	FieldCreditLife          = "credit_life"
	FieldDisabilityInsurance = "disability_insurance"
	FieldServiceContract     = "service_contract"
	FieldDocFee              = "doc_fee"
	FieldTitleFee            = "title_fee"
	FieldRegistrationFee     = "registration_fee"
)

// precision is the number of fractional digits kept by divisions and by the
// compounding factor. Money sums are never rounded.
const precision = 28

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Result is the itemized outcome of Calculate. Inputs are echoed unrounded;
// only MonthlyPayment is rounded (half to even, 2 places).
type Result struct {
	VehiclePrice        decimal.Decimal
	TradeValue          decimal.Decimal
	NetTradeDifference  decimal.Decimal
	DownPayment         decimal.Decimal
	TotalAddOns         decimal.Decimal
	Subtotal            decimal.Decimal
	TaxableAmount       decimal.Decimal
	SalesTax            decimal.Decimal
	TotalFees           decimal.Decimal
	TotalAmountFinanced decimal.Decimal
	MonthlyPayment      decimal.Decimal
	InterestRate        decimal.Decimal
	LoanTerm            int
	Breakdown           map[string]decimal.Decimal
}

// Calculate validates req and structures the deal.
//
// When a trade exists the taxable amount is the subtotal minus the trade value,
// so the trade reduces the taxable base a second time after netting it out of
// the subtotal.
func Calculate(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	netTrade := req.VehiclePrice.Sub(req.TradeValue)
	addOns := decimal.Sum(req.ExtendedWarranty,
		req.GapInsurance,
		req.CreditLife,
		req.DisabilityInsurance,
		req.ServiceContract)
	subtotal := netTrade.Add(addOns)

	taxable := subtotal
	if req.TradeValue.IsPositive() {
		taxable = subtotal.Sub(req.TradeValue)
	}
	salesTax := taxable.Mul(req.SalesTaxRate)

	fees := decimal.Sum(req.DocFee, req.TitleFee, req.RegistrationFee)
	financed := subtotal.Add(salesTax).Add(fees).Sub(req.DownPayment)

	payment, err := Amortize(financed, req.InterestRate, req.LoanTerm)
	if err != nil {
		return Result{}, err
	}

	return Result{
		VehiclePrice:        req.VehiclePrice,
		TradeValue:          req.TradeValue,
		NetTradeDifference:  netTrade,
		DownPayment:         req.DownPayment,
		TotalAddOns:         addOns,
		Subtotal:            subtotal,
		TaxableAmount:       taxable,
		SalesTax:            salesTax,
		TotalFees:           fees,
		TotalAmountFinanced: financed,
		MonthlyPayment:      payment,
		InterestRate:        req.InterestRate,
		LoanTerm:            req.LoanTerm,
		Breakdown: map[string]decimal.Decimal{
			FieldExtendedWarranty:    req.ExtendedWarranty,
			FieldGapInsurance:        req.GapInsurance,
			FieldCreditLife:          req.CreditLife,
			FieldDisabilityInsurance: req.DisabilityInsurance,
			FieldServiceContract:     req.ServiceContract,
			FieldDocFee:              req.DocFee,
			FieldTitleFee:            req.TitleFee,
			FieldRegistrationFee:     req.RegistrationFee,
		},
	}, nil
}

// Amortize returns the level periodic payment that repays principal over
// periods monthly installments at annualRate percent, rounded half to even
// to cents. A zero rate splits the principal evenly.
func Amortize(principal, annualRate decimal.Decimal, periods int) (decimal.Decimal, error) {
	if periods <= 0 {
		return decimal.Zero, fmt.Errorf("%w: cannot amortize over %d periods", ErrComputation, periods)
	}
	if annualRate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative interest rate %s", ErrComputation, annualRate)
	}

	n := decimal.NewFromInt(int64(periods))
	monthlyRate := annualRate.DivRound(hundred, precision).DivRound(twelve, precision)
	if monthlyRate.IsZero() {
		return principal.DivRound(n, precision).RoundBank(2), nil
	}

	factor := compound(one.Add(monthlyRate), periods)
	denominator := factor.Sub(one)
	if denominator.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: annuity factor collapsed at rate %s over %d periods", ErrComputation, monthlyRate, periods)
	}

	payment := principal.Mul(monthlyRate).Mul(factor).DivRound(denominator, precision)
	return payment.RoundBank(2), nil
}

// compound raises base to the n-th power by repeated squaring.
func compound(base decimal.Decimal, n int) decimal.Decimal {
	result := one
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(precision)
		}
		base = base.Mul(base).Round(precision)
		n >>= 1
	}
	return result
}
