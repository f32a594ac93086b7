package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pulseauto/internal/desking"
	"pulseauto/internal/model"
	"pulseauto/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// --- DTOs ---

// CreateDealRequest carries the desking inputs plus who and what the deal is for
type CreateDealRequest struct {
	DeskingCalculateRequest
	CustomerID  string `json:"customer_id" binding:"required"`
	VehicleID   string `json:"vehicle_id" binding:"required"`
	DealerID    string `json:"dealer_id" binding:"required"`
	SalesPerson string `json:"sales_person" binding:"required"`
}

type UpdateDealStatusRequest struct {
	Status         string           `json:"status" binding:"required"`
	Lender         *string          `json:"lender"`
	ApprovalAmount *decimal.Decimal `json:"approval_amount" swaggertype:"number"`
	ApprovedRate   *decimal.Decimal `json:"approved_rate" swaggertype:"number"`
	ApprovedTerm   *int             `json:"approved_term"`
}

// --- Interface ---

type DealService interface {
	CreateDeal(ctx context.Context, actor string, req CreateDealRequest) (*model.Deal, error)
	UpdateDealStatus(ctx context.Context, actor, id string, req UpdateDealStatusRequest) (*model.Deal, error)
	GetDeal(ctx context.Context, id string) (*model.Deal, error)
	ListDeals(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error)
}

type dealService struct {
	dealRepo     repository.DealRepository
	customerRepo repository.CustomerRepository
	vehicleRepo  repository.VehicleRepository
	auditRepo    repository.AuditRepository
	txManager    repository.TransactionManager
	events       EventPublisher
	logger       *zap.Logger
}

func NewDealService(
	dealRepo repository.DealRepository,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.VehicleRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
	logger *zap.Logger,
) DealService {
	return &dealService{
		dealRepo:     dealRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		events:       events,
		logger:       logger,
	}
}

var validDealStatuses = []string{
	model.DealStatusPending,
	model.DealStatusApproved,
	model.DealStatusFunded,
	model.DealStatusDeclined,
}

// dealTransitions lists the statuses each status may move to. Funded and Declined are final.
var dealTransitions = map[string][]string{
	model.DealStatusPending:  {model.DealStatusApproved, model.DealStatusDeclined},
	model.DealStatusApproved: {model.DealStatusFunded, model.DealStatusDeclined},
}

// --- Implementation ---

func (s *dealService) CreateDeal(ctx context.Context, actor string, req CreateDealRequest) (*model.Deal, error) {
	customerID, err := parseID("customer", req.CustomerID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := parseID("vehicle", req.VehicleID)
	if err != nil {
		return nil, err
	}

	deskReq := req.toDeskingRequest()
	result, err := desking.Calculate(deskReq)
	if err != nil {
		return nil, err
	}

	deal := newDeal(deskReq, result)
	deal.CustomerID = customerID
	deal.VehicleID = vehicleID
	deal.DealerID = req.DealerID
	deal.SalesPerson = req.SalesPerson

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.customerRepo.FindByID(txCtx, customerID); err != nil {
			return lookupError("customer", err)
		}
		if _, err := s.vehicleRepo.FindByID(txCtx, vehicleID); err != nil {
			return lookupError("vehicle", err)
		}
		if err := s.dealRepo.Create(txCtx, deal); err != nil {
			return fmt.Errorf("failed to create deal: %w", err)
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionCreateDeal, deal.ID.String(), req.SalesPerson, req)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Deal created",
		zap.String("deal_id", deal.ID.String()),
		zap.String("dealer_id", deal.DealerID),
		zap.String("monthly_payment", deal.MonthlyPayment.StringFixed(2)),
	)
	s.events.Publish(EventDealCreated, deal)
	return deal, nil
}

func (s *dealService) UpdateDealStatus(ctx context.Context, actor, id string, req UpdateDealStatusRequest) (*model.Deal, error) {
	uid, err := parseID("deal", id)
	if err != nil {
		return nil, err
	}
	if !contains(validDealStatuses, req.Status) {
		return nil, validationError("status must be one of: %s", strings.Join(validDealStatuses, ", "))
	}
	if err := validateApproval(req); err != nil {
		return nil, err
	}

	var deal *model.Deal
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		found, err := s.dealRepo.FindByIDForUpdate(txCtx, uid)
		if err != nil {
			return lookupError("deal", err)
		}
		if !contains(dealTransitions[found.Status], req.Status) {
			return fmt.Errorf("%w: deal cannot move from %s to %s", ErrConflict, found.Status, req.Status)
		}

		found.Status = req.Status
		if req.Lender != nil {
			found.Lender = *req.Lender
		}
		if req.ApprovalAmount != nil {
			found.ApprovalAmount = req.ApprovalAmount
		}
		if req.ApprovedRate != nil {
			found.ApprovedRate = req.ApprovedRate
		}
		if req.ApprovedTerm != nil {
			found.ApprovedTerm = req.ApprovedTerm
		}
		if found.ApprovalAmount != nil && found.ApprovedRate != nil && found.ApprovedTerm != nil {
			payment, err := desking.Amortize(*found.ApprovalAmount, *found.ApprovedRate, *found.ApprovedTerm)
			if err != nil {
				return err
			}
			found.ApprovedPayment = &payment
		}

		if err := s.dealRepo.Update(txCtx, found); err != nil {
			return fmt.Errorf("failed to update deal: %w", err)
		}
		deal = found
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionUpdateDealStatus, found.ID.String(), found.SalesPerson, req)
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(EventDealUpdated, deal)
	return deal, nil
}

func (s *dealService) GetDeal(ctx context.Context, id string) (*model.Deal, error) {
	uid, err := parseID("deal", id)
	if err != nil {
		return nil, err
	}
	deal, err := s.dealRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, lookupError("deal", err)
	}
	return deal, nil
}

func (s *dealService) ListDeals(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error) {
	if filter.Status != "" && !contains(validDealStatuses, filter.Status) {
		return nil, 0, validationError("status must be one of: %s", strings.Join(validDealStatuses, ", "))
	}
	deals, total, err := s.dealRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch deals: %w", err)
	}
	return deals, total, nil
}

// --- Helpers ---

func validateApproval(req UpdateDealStatusRequest) error {
	var errs []error
	if req.ApprovalAmount != nil && req.ApprovalAmount.IsNegative() {
		errs = append(errs, errors.New("approval_amount must not be negative"))
	}
	if req.ApprovedRate != nil && req.ApprovedRate.IsNegative() {
		errs = append(errs, errors.New("approved_rate must not be negative"))
	}
	if req.ApprovedTerm != nil && *req.ApprovedTerm <= 0 {
		errs = append(errs, errors.New("approved_term must be a positive number of payments"))
	}
	if len(errs) > 0 {
		return validationError("%v", errors.Join(errs...))
	}
	return nil
}

func newDeal(req desking.Request, result desking.Result) *model.Deal {
	return &model.Deal{
		VehiclePrice:        req.VehiclePrice,
		TradeValue:          req.TradeValue,
		DownPayment:         req.DownPayment,
		LoanAmount:          result.TotalAmountFinanced,
		InterestRate:        req.InterestRate,
		LoanTerm:            req.LoanTerm,
		MonthlyPayment:      result.MonthlyPayment,
		ExtendedWarranty:    req.ExtendedWarranty,
		GapInsurance:        req.GapInsurance,
		CreditLife:          req.CreditLife,
		DisabilityInsurance: req.DisabilityInsurance,
		ServiceContract:     req.ServiceContract,
		SalesTaxRate:        req.SalesTaxRate,
		SalesTax:            result.SalesTax,
		DocFee:              req.DocFee,
		TitleFee:            req.TitleFee,
		RegistrationFee:     req.RegistrationFee,
		TotalAddOns:         result.TotalAddOns,
		TotalFees:           result.TotalFees,
		TotalAmountFinanced: result.TotalAmountFinanced,
		Status:              model.DealStatusPending,
	}
}
