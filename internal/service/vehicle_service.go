package service

import (
	"context"
	"fmt"

	"pulseauto/internal/model"
	"pulseauto/internal/repository"

	"github.com/shopspring/decimal"
)

// --- DTOs ---

// VehicleRequest is used for both create and full update
type VehicleRequest struct {
	VIN           string           `json:"vin"`
	Year          int              `json:"year" binding:"required,gte=1900,lte=2100"`
	Make          string           `json:"make" binding:"required"`
	Model         string           `json:"model" binding:"required"`
	Trim          string           `json:"trim"`
	Mileage       int              `json:"mileage" binding:"gte=0"`
	Price         *decimal.Decimal `json:"price" binding:"required" swaggertype:"number"`
	Cost          *decimal.Decimal `json:"cost" swaggertype:"number"`
	ExteriorColor string           `json:"exterior_color"`
	InteriorColor string           `json:"interior_color"`
	Transmission  string           `json:"transmission"`
	FuelType      string           `json:"fuel_type"`
	Drivetrain    string           `json:"drivetrain"`
	Engine        string           `json:"engine"`
	Images        []string         `json:"images"`
	Features      []string         `json:"features"`
	Status        string           `json:"status"`
	DealerID      string           `json:"dealer_id" binding:"required"`
	DealerName    string           `json:"dealer_name" binding:"required"`
	StockNumber   string           `json:"stock_number"`
	Description   string           `json:"description"`
}

// --- Interface ---

type VehicleService interface {
	CreateVehicle(ctx context.Context, actor string, req VehicleRequest) (*model.Vehicle, error)
	UpdateVehicle(ctx context.Context, actor, id string, req VehicleRequest) (*model.Vehicle, error)
	DeleteVehicle(ctx context.Context, actor, id string) error
	GetVehicle(ctx context.Context, id string) (*model.Vehicle, error)
	ListVehicles(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, int64, error)
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	auditRepo   repository.AuditRepository
	txManager   repository.TransactionManager
	events      EventPublisher
}

func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		auditRepo:   auditRepo,
		txManager:   txManager,
		events:      events,
	}
}

var validVehicleStatuses = []string{
	model.VehicleStatusAvailable,
	model.VehicleStatusSold,
	model.VehicleStatusPending,
	model.VehicleStatusHold,
}

func validateVehicle(req VehicleRequest) error {
	if req.Price != nil && req.Price.IsNegative() {
		return validationError("price must not be negative")
	}
	if req.Cost != nil && req.Cost.IsNegative() {
		return validationError("cost must not be negative")
	}
	if req.Status != "" && !contains(validVehicleStatuses, req.Status) {
		return validationError("status must be one of: Available, Sold, Pending, Hold")
	}
	return nil
}

// --- CRUD ---

func (s *vehicleService) CreateVehicle(ctx context.Context, actor string, req VehicleRequest) (*model.Vehicle, error) {
	if err := validateVehicle(req); err != nil {
		return nil, err
	}

	vehicle := &model.Vehicle{Status: model.VehicleStatusAvailable}
	applyVehicleRequest(vehicle, req)

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.vehicleRepo.Create(txCtx, vehicle); err != nil {
			return fmt.Errorf("failed to create vehicle: %w", err)
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionCreateVehicle, vehicle.ID.String(), vehicleLabel(vehicle), req)
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(EventVehicleCreated, vehicle)
	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, actor, id string, req VehicleRequest) (*model.Vehicle, error) {
	uid, err := parseID("vehicle", id)
	if err != nil {
		return nil, err
	}
	if err := validateVehicle(req); err != nil {
		return nil, err
	}

	var vehicle *model.Vehicle
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		found, err := s.vehicleRepo.FindByID(txCtx, uid)
		if err != nil {
			return lookupError("vehicle", err)
		}
		applyVehicleRequest(found, req)
		if err := s.vehicleRepo.Update(txCtx, found); err != nil {
			return fmt.Errorf("failed to update vehicle: %w", err)
		}
		vehicle = found
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionUpdateVehicle, found.ID.String(), vehicleLabel(found), req)
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(EventVehicleUpdated, vehicle)
	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, actor, id string) error {
	uid, err := parseID("vehicle", id)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.vehicleRepo.Delete(txCtx, uid); err != nil {
			return lookupError("vehicle", err)
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionDeleteVehicle, id, "", map[string]string{"deleted_id": id})
	})
	if err != nil {
		return err
	}

	s.events.Publish(EventVehicleDeleted, map[string]string{"id": id})
	return nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (*model.Vehicle, error) {
	uid, err := parseID("vehicle", id)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicleRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, lookupError("vehicle", err)
	}
	return vehicle, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, filter model.VehicleFilter) ([]model.Vehicle, int64, error) {
	if filter.Status != "" && !contains(validVehicleStatuses, filter.Status) {
		return nil, 0, validationError("status must be one of: Available, Sold, Pending, Hold")
	}
	vehicles, total, err := s.vehicleRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch vehicles: %w", err)
	}
	return vehicles, total, nil
}

// --- Mappers ---

func applyVehicleRequest(v *model.Vehicle, req VehicleRequest) {
	v.VIN = req.VIN
	v.Year = req.Year
	v.Make = req.Make
	v.Model = req.Model
	v.Trim = req.Trim
	v.Mileage = req.Mileage
	if req.Price != nil {
		v.Price = *req.Price
	}
	v.Cost = req.Cost
	v.ExteriorColor = req.ExteriorColor
	v.InteriorColor = req.InteriorColor
	v.Transmission = req.Transmission
	v.FuelType = req.FuelType
	v.Drivetrain = req.Drivetrain
	v.Engine = req.Engine
	v.Images = nonNil(req.Images)
	v.Features = nonNil(req.Features)
	if req.Status != "" {
		v.Status = req.Status
	}
	v.DealerID = req.DealerID
	v.DealerName = req.DealerName
	v.StockNumber = req.StockNumber
	v.Description = req.Description
}

func vehicleLabel(v *model.Vehicle) string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
