package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"pulseauto/internal/model"
	"pulseauto/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const dateLayout = "2006-01-02"

// --- DTOs ---

type CreateCustomerRequest struct {
	FirstName        string           `json:"first_name" binding:"required"`
	LastName         string           `json:"last_name" binding:"required"`
	Email            string           `json:"email" binding:"required"`
	Phone            string           `json:"phone" binding:"required"`
	Address          string           `json:"address"`
	City             string           `json:"city"`
	State            string           `json:"state"`
	ZipCode          string           `json:"zip_code"`
	DateOfBirth      string           `json:"date_of_birth" example:"1985-04-12"`
	SSN              string           `json:"ssn" example:"123-45-6789"`
	CreditScore      *int             `json:"credit_score" binding:"omitempty,gte=300,lte=850"`
	AnnualIncome     *decimal.Decimal `json:"annual_income" swaggertype:"number"`
	EmploymentStatus string           `json:"employment_status"`
	Employer         string           `json:"employer"`
}

// UpdateCustomerRequest only touches the fields that are present
type UpdateCustomerRequest struct {
	FirstName        *string          `json:"first_name"`
	LastName         *string          `json:"last_name"`
	Email            *string          `json:"email"`
	Phone            *string          `json:"phone"`
	Address          *string          `json:"address"`
	City             *string          `json:"city"`
	State            *string          `json:"state"`
	ZipCode          *string          `json:"zip_code"`
	DateOfBirth      *string          `json:"date_of_birth"`
	SSN              *string          `json:"ssn"`
	CreditScore      *int             `json:"credit_score" binding:"omitempty,gte=300,lte=850"`
	AnnualIncome     *decimal.Decimal `json:"annual_income" swaggertype:"number"`
	EmploymentStatus *string          `json:"employment_status"`
	Employer         *string          `json:"employer"`
}

// --- Interface ---

type CustomerService interface {
	CreateCustomer(ctx context.Context, actor string, req CreateCustomerRequest) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, actor, id string, req UpdateCustomerRequest) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, actor, id string) error
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	ListCustomers(ctx context.Context, search string, skip, limit int) ([]model.Customer, int64, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	auditRepo    repository.AuditRepository
	txManager    repository.TransactionManager
}

func NewCustomerService(
	customerRepo repository.CustomerRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
	}
}

// --- CRUD ---

func (s *customerService) CreateCustomer(ctx context.Context, actor string, req CreateCustomerRequest) (*model.Customer, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, validationError("invalid email format")
	}
	if req.AnnualIncome != nil && req.AnnualIncome.IsNegative() {
		return nil, validationError("annual_income must not be negative")
	}

	customer := &model.Customer{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		ZipCode:          req.ZipCode,
		CreditScore:      req.CreditScore,
		AnnualIncome:     req.AnnualIncome,
		EmploymentStatus: req.EmploymentStatus,
		Employer:         req.Employer,
	}
	if req.DateOfBirth != "" {
		dob, err := parseDate(req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		customer.DateOfBirth = dob
	}
	if req.SSN != "" {
		if err := setSSN(customer, req.SSN); err != nil {
			return nil, err
		}
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.customerRepo.Create(txCtx, customer); err != nil {
			return fmt.Errorf("failed to create customer: %w", err)
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionCreateCustomer, customer.ID.String(), customerLabel(customer), customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, actor, id string, req UpdateCustomerRequest) (*model.Customer, error) {
	uid, err := parseID("customer", id)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		if _, err := mail.ParseAddress(*req.Email); err != nil {
			return nil, validationError("invalid email format")
		}
	}
	if req.AnnualIncome != nil && req.AnnualIncome.IsNegative() {
		return nil, validationError("annual_income must not be negative")
	}

	var customer *model.Customer
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		found, err := s.customerRepo.FindByID(txCtx, uid)
		if err != nil {
			return lookupError("customer", err)
		}
		if err := applyCustomerUpdate(found, req); err != nil {
			return err
		}
		if err := s.customerRepo.Update(txCtx, found); err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}
		customer = found
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionUpdateCustomer, found.ID.String(), customerLabel(found), found)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, actor, id string) error {
	uid, err := parseID("customer", id)
	if err != nil {
		return err
	}
	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.customerRepo.Delete(txCtx, uid); err != nil {
			return lookupError("customer", err)
		}
		return writeAudit(txCtx, s.auditRepo, actor, model.ActionDeleteCustomer, id, "", map[string]string{"deleted_id": id})
	})
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	uid, err := parseID("customer", id)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, lookupError("customer", err)
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, search string, skip, limit int) ([]model.Customer, int64, error) {
	customers, total, err := s.customerRepo.List(ctx, strings.TrimSpace(search), skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch customers: %w", err)
	}
	return customers, total, nil
}

// --- Helpers ---

func applyCustomerUpdate(c *model.Customer, req UpdateCustomerRequest) error {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.FirstName, req.FirstName)
	set(&c.LastName, req.LastName)
	set(&c.Email, req.Email)
	set(&c.Phone, req.Phone)
	set(&c.Address, req.Address)
	set(&c.City, req.City)
	set(&c.State, req.State)
	set(&c.ZipCode, req.ZipCode)
	set(&c.EmploymentStatus, req.EmploymentStatus)
	set(&c.Employer, req.Employer)

	if req.CreditScore != nil {
		c.CreditScore = req.CreditScore
	}
	if req.AnnualIncome != nil {
		c.AnnualIncome = req.AnnualIncome
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return err
		}
		c.DateOfBirth = dob
	}
	if req.SSN != nil {
		return setSSN(c, *req.SSN)
	}
	return nil
}

func parseDate(value string) (*time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, validationError("date_of_birth must be formatted as YYYY-MM-DD")
	}
	return &t, nil
}

// setSSN accepts 123-45-6789 or 123456789 and stores only a bcrypt hash and the last four digits
func setSSN(c *model.Customer, ssn string) error {
	digits := strings.ReplaceAll(strings.TrimSpace(ssn), "-", "")
	if len(digits) != 9 || strings.Trim(digits, "0123456789") != "" {
		return validationError("ssn must contain exactly 9 digits")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(digits), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash ssn: %w", err)
	}
	c.SSNHash = string(hash)
	c.SSNLast4 = digits[5:]
	return nil
}

func customerLabel(c *model.Customer) string {
	return c.FirstName + " " + c.LastName
}

