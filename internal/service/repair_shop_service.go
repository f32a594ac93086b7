package service

import (
	"context"
	"fmt"
	"strings"

	"pulseauto/internal/model"
	"pulseauto/internal/repository"

	"github.com/shopspring/decimal"
)

type CreateRepairShopRequest struct {
	Name        string           `json:"name" binding:"required"`
	Address     string           `json:"address" binding:"required"`
	City        string           `json:"city" binding:"required"`
	State       string           `json:"state" binding:"required"`
	ZipCode     string           `json:"zip_code" binding:"required"`
	Phone       string           `json:"phone" binding:"required"`
	Email       string           `json:"email"`
	Website     string           `json:"website"`
	Services    []string         `json:"services"`
	Hours       string           `json:"hours"`
	Rating      *decimal.Decimal `json:"rating" swaggertype:"number"`
	ReviewCount int              `json:"review_count" binding:"gte=0"`
	ImageURL    string           `json:"image_url"`
}

type RepairShopService interface {
	CreateRepairShop(ctx context.Context, actor string, req CreateRepairShopRequest) (*model.RepairShop, error)
	ListRepairShops(ctx context.Context, filter model.RepairShopFilter) ([]model.RepairShop, error)
}

type repairShopService struct {
	shopRepo  repository.RepairShopRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
}

func NewRepairShopService(
	shopRepo repository.RepairShopRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) RepairShopService {
	return &repairShopService{shopRepo: shopRepo, auditRepo: auditRepo, txManager: txManager}
}

var maxRating = decimal.NewFromInt(5)

func (s *repairShopService) CreateRepairShop(ctx context.Context, actor string, req CreateRepairShopRequest) (*model.RepairShop, error) {
	shop := &model.RepairShop{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Services:    nonNil(req.Services),
		Hours:       req.Hours,
		ReviewCount: req.ReviewCount,
		ImageURL:    req.ImageURL,
	}
	if req.Rating != nil {
		if req.Rating.IsNegative() || req.Rating.GreaterThan(maxRating) {
			return nil, validationError("rating must be between 0 and 5")
		}
		shop.Rating = *req.Rating
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.shopRepo.Create(txCtx, shop); err != nil {
			return fmt.Errorf("failed to create repair shop: %w", err)
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionCreateRepairShop, shop.ID.String(), shop.Name, req)
	})
	if err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *repairShopService) ListRepairShops(ctx context.Context, filter model.RepairShopFilter) ([]model.RepairShop, error) {
	filter.City = strings.TrimSpace(filter.City)
	filter.State = strings.TrimSpace(filter.State)
	filter.ZipCode = strings.TrimSpace(filter.ZipCode)
	filter.Service = strings.TrimSpace(filter.Service)

	shops, err := s.shopRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repair shops: %w", err)
	}
	return shops, nil
}
