package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"pulseauto/internal/desking"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// --- DTOs ---

// DeskingCalculateRequest is the desking payload. Omitted fields take the
// calculator defaults; an explicit 0 is kept as 0.
type DeskingCalculateRequest struct {
	VehiclePrice *decimal.Decimal `json:"vehicle_price" binding:"required" swaggertype:"number"`
	TradeValue   *decimal.Decimal `json:"trade_value" swaggertype:"number"`
	DownPayment  *decimal.Decimal `json:"down_payment" swaggertype:"number"`

	ExtendedWarranty    *decimal.Decimal `json:"extended_warranty" swaggertype:"number"`
	GapInsurance        *decimal.Decimal `json:"gap_insurance" swaggertype:"number"`
	CreditLife          *decimal.Decimal `json:"credit_life" swaggertype:"number"`
	DisabilityInsurance *decimal.Decimal `json:"disability_insurance" swaggertype:"number"`
	ServiceContract     *decimal.Decimal `json:"service_contract" swaggertype:"number"`

	SalesTaxRate    *decimal.Decimal `json:"sales_tax_rate" swaggertype:"number"`
	DocFee          *decimal.Decimal `json:"doc_fee" swaggertype:"number"`
	TitleFee        *decimal.Decimal `json:"title_fee" swaggertype:"number"`
	RegistrationFee *decimal.Decimal `json:"registration_fee" swaggertype:"number"`

	InterestRate *decimal.Decimal `json:"interest_rate" swaggertype:"number"`
	LoanTerm     *int             `json:"loan_term"`
}

type DeskingBreakdown struct {
	ExtendedWarranty    float64 `json:"extended_warranty"`
	GapInsurance        float64 `json:"gap_insurance"`
	CreditLife          float64 `json:"credit_life"`
	DisabilityInsurance float64 `json:"disability_insurance"`
	ServiceContract     float64 `json:"service_contract"`
	DocFee              float64 `json:"doc_fee"`
	TitleFee            float64 `json:"title_fee"`
	RegistrationFee     float64 `json:"registration_fee"`
}

// DeskingResponse is the itemized desking result with numbers as JSON numbers
type DeskingResponse struct {
	VehiclePrice        float64          `json:"vehicle_price"`
	TradeValue          float64          `json:"trade_value"`
	NetTradeDifference  float64          `json:"net_trade_difference"`
	DownPayment         float64          `json:"down_payment"`
	TotalAddOns         float64          `json:"total_add_ons"`
	Subtotal            float64          `json:"subtotal"`
	SalesTax            float64          `json:"sales_tax"`
	TotalFees           float64          `json:"total_fees"`
	TotalAmountFinanced float64          `json:"total_amount_financed"`
	MonthlyPayment      float64          `json:"monthly_payment"`
	InterestRate        float64          `json:"interest_rate"`
	LoanTerm            int              `json:"loan_term"`
	Breakdown           DeskingBreakdown `json:"breakdown"`
}

// --- Interface ---

type DeskingService interface {
	Calculate(ctx context.Context, req DeskingCalculateRequest) (DeskingResponse, error)
}

type deskingService struct {
	logger *zap.Logger
}

func NewDeskingService(logger *zap.Logger) DeskingService {
	return &deskingService{logger: logger}
}

// --- Implementation ---

// Calculate errors wrap desking.ErrInvalidInput or desking.ErrComputation
func (s *deskingService) Calculate(ctx context.Context, req DeskingCalculateRequest) (DeskingResponse, error) {
	result, err := desking.Calculate(req.toDeskingRequest())
	if err != nil {
		s.logger.Debug("Desking calculation rejected", zap.Error(err))
		return DeskingResponse{}, err
	}

	res, err := toDeskingResponse(result)
	if err != nil {
		s.logger.Warn("Desking result not representable", zap.Error(err))
		return DeskingResponse{}, err
	}
	return res, nil
}

// --- Helpers ---

func (r DeskingCalculateRequest) toDeskingRequest() desking.Request {
	var price decimal.Decimal
	if r.VehiclePrice != nil {
		price = *r.VehiclePrice
	}
	req := desking.NewRequest(price)

	override := func(dst *decimal.Decimal, src *decimal.Decimal) {
		if src != nil {
			*dst = *src
		}
	}
	override(&req.TradeValue, r.TradeValue)
	override(&req.DownPayment, r.DownPayment)
	override(&req.ExtendedWarranty, r.ExtendedWarranty)
	override(&req.GapInsurance, r.GapInsurance)
	override(&req.CreditLife, r.CreditLife)
	override(&req.DisabilityInsurance, r.DisabilityInsurance)
	override(&req.ServiceContract, r.ServiceContract)
	override(&req.SalesTaxRate, r.SalesTaxRate)
	override(&req.DocFee, r.DocFee)
	override(&req.TitleFee, r.TitleFee)
	override(&req.RegistrationFee, r.RegistrationFee)
	override(&req.InterestRate, r.InterestRate)
	if r.LoanTerm != nil {
		req.LoanTerm = *r.LoanTerm
	}
	return req
}

// toDeskingResponse converts to JSON numbers. Figures that overflow float64
// are reported as a computation failure rather than encoded.
func toDeskingResponse(r desking.Result) (DeskingResponse, error) {
	var overflow []string
	num := func(name string, d decimal.Decimal) float64 {
		v := d.InexactFloat64()
		if math.IsInf(v, 0) || math.IsNaN(v) {
			overflow = append(overflow, name)
		}
		return v
	}

	b := r.Breakdown
	res := DeskingResponse{
		VehiclePrice:        num(desking.FieldVehiclePrice, r.VehiclePrice),
		TradeValue:          num(desking.FieldTradeValue, r.TradeValue),
		NetTradeDifference:  num("net_trade_difference", r.NetTradeDifference),
		DownPayment:         num(desking.FieldDownPayment, r.DownPayment),
		TotalAddOns:         num("total_add_ons", r.TotalAddOns),
		Subtotal:            num("subtotal", r.Subtotal),
		SalesTax:            num("sales_tax", r.SalesTax),
		TotalFees:           num("total_fees", r.TotalFees),
		TotalAmountFinanced: num("total_amount_financed", r.TotalAmountFinanced),
		MonthlyPayment:      num("monthly_payment", r.MonthlyPayment),
		InterestRate:        num("interest_rate", r.InterestRate),
		LoanTerm:            r.LoanTerm,
		Breakdown: DeskingBreakdown{
			ExtendedWarranty:    num(desking.FieldExtendedWarranty, b[desking.FieldExtendedWarranty]),
			GapInsurance:        num(desking.FieldGapInsurance, b[desking.FieldGapInsurance]),
			CreditLife:          num(desking.FieldCreditLife, b[desking.FieldCreditLife]),
			DisabilityInsurance: num(desking.FieldDisabilityInsurance, b[desking.FieldDisabilityInsurance]),
			ServiceContract:     num(desking.FieldServiceContract, b[desking.FieldServiceContract]),
			DocFee:              num(desking.FieldDocFee, b[desking.FieldDocFee]),
			TitleFee:            num(desking.FieldTitleFee, b[desking.FieldTitleFee]),
			RegistrationFee:     num(desking.FieldRegistrationFee, b[desking.FieldRegistrationFee]),
		},
	}
	if len(overflow) > 0 {
		return DeskingResponse{}, fmt.Errorf("%w: %s exceeds the range of a JSON number", desking.ErrComputation, strings.Join(overflow, ", "))
	}
	return res, nil
}
