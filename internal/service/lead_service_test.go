package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pulseauto/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeadServiceFixture(now time.Time) (*leadService, *fakeAuditRepo, *recordingPublisher) {
	audit := &fakeAuditRepo{}
	events := &recordingPublisher{}
	svc := NewLeadService(newFakeLeadRepo(), audit, &fakeTxManager{}, events).(*leadService)
	svc.now = func() time.Time { return now }
	return svc, audit, events
}

func sampleLeadRequest() CreateLeadRequest {
	return CreateLeadRequest{
		CustomerName: "Dana Reyes",
		Email:        "dana@example.com",
		Phone:        "555-0100",
		DealerID:     "dealer-1",
	}
}

func TestCreateLeadDefaults(t *testing.T) {
	svc, audit, events := newLeadServiceFixture(time.Now())

	lead, err := svc.CreateLead(context.Background(), "", sampleLeadRequest())
	require.NoError(t, err)

	assert.Equal(t, model.LeadStatusNew, lead.Status)
	assert.Equal(t, model.LeadSourceWebsite, lead.Source)
	assert.Empty(t, lead.Notes)
	assert.Nil(t, lead.VehicleID)
	assert.Equal(t, model.ActionCreateLead, audit.entries[0].Action)
	assert.Equal(t, EventLeadCreated, events.events[0].Type)
}

func TestCreateLeadValidatesEmailAndVehicle(t *testing.T) {
	svc, _, _ := newLeadServiceFixture(time.Now())

	req := sampleLeadRequest()
	req.Email = "not-an-email"
	_, err := svc.CreateLead(context.Background(), "", req)
	assert.True(t, errors.Is(err, ErrValidation))

	req = sampleLeadRequest()
	req.VehicleID = "abc"
	_, err = svc.CreateLead(context.Background(), "", req)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUpdateLeadAppendsTimestampedNotes(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	svc, audit, events := newLeadServiceFixture(now)

	lead, err := svc.CreateLead(context.Background(), "", sampleLeadRequest())
	require.NoError(t, err)

	_, err = svc.UpdateLead(context.Background(), "sam", lead.ID.String(), UpdateLeadRequest{
		Status: model.LeadStatusContacted,
		Notes:  "Left voicemail",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateLead(context.Background(), "sam", lead.ID.String(), UpdateLeadRequest{
		Status: model.LeadStatusQualified,
	})
	require.NoError(t, err)

	assert.Equal(t, model.LeadStatusQualified, updated.Status)
	assert.Equal(t, []string{"2024-03-09T14:30:00Z: Left voicemail"}, updated.Notes)
	assert.Equal(t, model.ActionUpdateLeadStatus, audit.entries[2].Action)
	assert.Equal(t, EventLeadUpdated, events.events[2].Type)
}

func TestUpdateLeadRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newLeadServiceFixture(time.Now())

	_, err := svc.UpdateLead(context.Background(), "", uuid.NewString(), UpdateLeadRequest{Status: "Ghosted"})
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = svc.UpdateLead(context.Background(), "", uuid.NewString(), UpdateLeadRequest{Status: model.LeadStatusLost})
	assert.True(t, errors.Is(err, ErrNotFound))
}
