package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"pulseauto/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeTxManager struct{ calls int }

func (f *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type publishedEvent struct {
	Type string
	Data interface{}
}

type recordingPublisher struct{ events []publishedEvent }

func (r *recordingPublisher) Publish(eventType string, data interface{}) {
	r.events = append(r.events, publishedEvent{Type: eventType, Data: data})
}

type fakeAuditRepo struct {
	entries []model.AuditLog
	err     error
}

func (f *fakeAuditRepo) Log(_ context.Context, entry *model.AuditLog) error {
	if f.err != nil {
		return f.err
	}
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, filter model.AuditFilter) ([]model.AuditLog, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []model.AuditLog
	for _, e := range f.entries {
		if filter.EntityID != "" && e.EntityID != filter.EntityID {
			continue
		}
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		if filter.Actor != "" && e.Actor != filter.Actor {
			continue
		}
		out = append(out, e)
	}
	return out, int64(len(out)), nil
}

type fakeVehicleRepo struct {
	rows map[uuid.UUID]*model.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{rows: map[uuid.UUID]*model.Vehicle{}}
}

func (f *fakeVehicleRepo) Create(_ context.Context, v *model.Vehicle) error {
	v.ID = uuid.New()
	f.rows[v.ID] = v
	return nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, v *model.Vehicle) error {
	f.rows[v.ID] = v
	return nil
}

func (f *fakeVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeVehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vehicle, error) {
	v, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (f *fakeVehicleRepo) List(_ context.Context, filter model.VehicleFilter) ([]model.Vehicle, int64, error) {
	var out []model.Vehicle
	for _, v := range f.rows {
		if filter.Status == "" || v.Status == filter.Status {
			out = append(out, *v)
		}
	}
	return out, int64(len(out)), nil
}

type fakeLeadRepo struct {
	rows map[uuid.UUID]*model.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{rows: map[uuid.UUID]*model.Lead{}}
}

func (f *fakeLeadRepo) Create(_ context.Context, l *model.Lead) error {
	l.ID = uuid.New()
	f.rows[l.ID] = l
	return nil
}

func (f *fakeLeadRepo) Update(_ context.Context, l *model.Lead) error {
	f.rows[l.ID] = l
	return nil
}

func (f *fakeLeadRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Lead, error) {
	l, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (f *fakeLeadRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeLeadRepo) List(_ context.Context, _ model.LeadFilter) ([]model.Lead, int64, error) {
	var out []model.Lead
	for _, l := range f.rows {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

type fakeCustomerRepo struct {
	rows map[uuid.UUID]*model.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{rows: map[uuid.UUID]*model.Customer{}}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	c.ID = uuid.New()
	f.rows[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	f.rows[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) List(_ context.Context, _ string, _, _ int) ([]model.Customer, int64, error) {
	var out []model.Customer
	for _, c := range f.rows {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeDealRepo struct {
	rows map[uuid.UUID]*model.Deal
}

func newFakeDealRepo() *fakeDealRepo {
	return &fakeDealRepo{rows: map[uuid.UUID]*model.Deal{}}
}

func (f *fakeDealRepo) Create(_ context.Context, d *model.Deal) error {
	d.ID = uuid.New()
	f.rows[d.ID] = d
	return nil
}

func (f *fakeDealRepo) Update(_ context.Context, d *model.Deal) error {
	f.rows[d.ID] = d
	return nil
}

func (f *fakeDealRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Deal, error) {
	d, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeDealRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Deal, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeDealRepo) List(_ context.Context, _ model.DealFilter) ([]model.Deal, int64, error) {
	var out []model.Deal
	for _, d := range f.rows {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

type fakeRepairShopRepo struct {
	shops      []model.RepairShop
	lastFilter model.RepairShopFilter
}

func (f *fakeRepairShopRepo) Create(_ context.Context, s *model.RepairShop) error {
	s.ID = uuid.New()
	f.shops = append(f.shops, *s)
	return nil
}

func (f *fakeRepairShopRepo) List(_ context.Context, filter model.RepairShopFilter) ([]model.RepairShop, error) {
	f.lastFilter = filter
	return f.shops, nil
}

// fakeStatsRepo answers every count with a fixed value per status
type fakeStatsRepo struct {
	mu      sync.Mutex
	calls   int
	counts  map[string]int64
	average float64
	err     error
}

func (f *fakeStatsRepo) count(table, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[table+":"+status], nil
}

func (f *fakeStatsRepo) CountVehicles(_ context.Context, _, status string) (int64, error) {
	return f.count("vehicles", status)
}

func (f *fakeStatsRepo) CountLeads(_ context.Context, _, status string) (int64, error) {
	return f.count("leads", status)
}

func (f *fakeStatsRepo) CountDeals(_ context.Context, _, status string) (int64, error) {
	return f.count("deals", status)
}

func (f *fakeStatsRepo) AverageVehiclePrice(_ context.Context, _ string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.average, nil
}

var errDatabaseDown = errors.New("database down")
