package service

import (
	"context"
	"errors"
	"testing"

	"pulseauto/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVehicleServiceFixture() (VehicleService, *fakeVehicleRepo, *fakeAuditRepo, *recordingPublisher) {
	repo := newFakeVehicleRepo()
	audit := &fakeAuditRepo{}
	events := &recordingPublisher{}
	return NewVehicleService(repo, audit, &fakeTxManager{}, events), repo, audit, events
}

func sampleVehicleRequest() VehicleRequest {
	price := decimal.RequireFromString("28995")
	return VehicleRequest{
		Year:       2022,
		Make:       "Toyota",
		Model:      "Camry",
		Mileage:    18000,
		Price:      &price,
		DealerID:   "dealer-1",
		DealerName: "Pulse Motors",
	}
}

func TestCreateVehicleDefaultsStatusAndAudits(t *testing.T) {
	svc, repo, audit, events := newVehicleServiceFixture()

	vehicle, err := svc.CreateVehicle(context.Background(), "alice", sampleVehicleRequest())
	require.NoError(t, err)

	assert.Equal(t, model.VehicleStatusAvailable, vehicle.Status)
	assert.NotNil(t, vehicle.Images)
	assert.Contains(t, repo.rows, vehicle.ID)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, "alice", audit.entries[0].Actor)
	assert.Equal(t, model.ActionCreateVehicle, audit.entries[0].Action)
	assert.Equal(t, "2022 Toyota Camry", audit.entries[0].EntityName)

	require.Len(t, events.events, 1)
	assert.Equal(t, EventVehicleCreated, events.events[0].Type)
}

func TestCreateVehicleRejectsUnknownStatus(t *testing.T) {
	svc, repo, _, events := newVehicleServiceFixture()
	req := sampleVehicleRequest()
	req.Status = "Crushed"

	_, err := svc.CreateVehicle(context.Background(), "", req)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Empty(t, repo.rows)
	assert.Empty(t, events.events)
}

func TestUpdateVehicleReplacesFields(t *testing.T) {
	svc, _, audit, events := newVehicleServiceFixture()
	created, err := svc.CreateVehicle(context.Background(), "", sampleVehicleRequest())
	require.NoError(t, err)

	req := sampleVehicleRequest()
	req.Status = model.VehicleStatusSold
	updated, err := svc.UpdateVehicle(context.Background(), "bob", created.ID.String(), req)
	require.NoError(t, err)

	assert.Equal(t, model.VehicleStatusSold, updated.Status)
	assert.Len(t, audit.entries, 2)
	assert.Equal(t, EventVehicleUpdated, events.events[1].Type)
}

func TestVehicleLookupErrors(t *testing.T) {
	svc, _, _, _ := newVehicleServiceFixture()

	_, err := svc.GetVehicle(context.Background(), "not-a-uuid")
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.GetVehicle(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, ErrNotFound))

	err = svc.DeleteVehicle(context.Background(), "", uuid.NewString())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteVehiclePublishesEvent(t *testing.T) {
	svc, repo, audit, events := newVehicleServiceFixture()
	created, err := svc.CreateVehicle(context.Background(), "", sampleVehicleRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVehicle(context.Background(), "carol", created.ID.String()))

	assert.Empty(t, repo.rows)
	assert.Equal(t, model.ActionDeleteVehicle, audit.entries[1].Action)
	assert.Equal(t, EventVehicleDeleted, events.events[1].Type)
}

func TestCreateVehicleFailsWhenAuditFails(t *testing.T) {
	repo := newFakeVehicleRepo()
	events := &recordingPublisher{}
	svc := NewVehicleService(repo, &fakeAuditRepo{err: errDatabaseDown}, &fakeTxManager{}, events)

	_, err := svc.CreateVehicle(context.Background(), "", sampleVehicleRequest())
	assert.True(t, errors.Is(err, errDatabaseDown))
	assert.Empty(t, events.events)
}
