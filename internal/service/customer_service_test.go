package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newCustomerServiceFixture() (CustomerService, *fakeCustomerRepo, *fakeAuditRepo) {
	repo := newFakeCustomerRepo()
	audit := &fakeAuditRepo{}
	return NewCustomerService(repo, audit, &fakeTxManager{}), repo, audit
}

func sampleCustomerRequest() CreateCustomerRequest {
	return CreateCustomerRequest{
		FirstName:   "Jordan",
		LastName:    "Ellis",
		Email:       "jordan@example.com",
		Phone:       "555-0142",
		DateOfBirth: "1988-07-21",
		SSN:         "123-45-6789",
	}
}

func TestCreateCustomerHashesSSN(t *testing.T) {
	svc, _, audit := newCustomerServiceFixture()

	customer, err := svc.CreateCustomer(context.Background(), "", sampleCustomerRequest())
	require.NoError(t, err)

	assert.Equal(t, "6789", customer.SSNLast4)
	assert.NotContains(t, customer.SSNHash, "123456789")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(customer.SSNHash), []byte("123456789")))
	assert.Equal(t, "1988-07-21", customer.DateOfBirth.Format(dateLayout))

	// neither the hash nor the raw number reaches the audit trail
	require.Len(t, audit.entries, 1)
	assert.NotContains(t, audit.entries[0].Details, customer.SSNHash)
	assert.NotContains(t, audit.entries[0].Details, "123-45-6789")

	raw, err := json.Marshal(customer)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "ssn_hash")
}

func TestCreateCustomerValidation(t *testing.T) {
	svc, repo, _ := newCustomerServiceFixture()

	tests := []struct {
		name   string
		mutate func(*CreateCustomerRequest)
	}{
		{"bad email", func(r *CreateCustomerRequest) { r.Email = "jordan" }},
		{"bad date", func(r *CreateCustomerRequest) { r.DateOfBirth = "07/21/1988" }},
		{"short ssn", func(r *CreateCustomerRequest) { r.SSN = "123-45-678" }},
		{"letters in ssn", func(r *CreateCustomerRequest) { r.SSN = "123-45-67a9" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sampleCustomerRequest()
			tt.mutate(&req)
			_, err := svc.CreateCustomer(context.Background(), "", req)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
	assert.Empty(t, repo.rows)
}

func TestUpdateCustomerIsPartial(t *testing.T) {
	svc, _, _ := newCustomerServiceFixture()
	created, err := svc.CreateCustomer(context.Background(), "", sampleCustomerRequest())
	require.NoError(t, err)

	city := "Austin"
	score := 712
	updated, err := svc.UpdateCustomer(context.Background(), "", created.ID.String(), UpdateCustomerRequest{
		City:        &city,
		CreditScore: &score,
	})
	require.NoError(t, err)

	assert.Equal(t, "Austin", updated.City)
	assert.Equal(t, 712, *updated.CreditScore)
	assert.Equal(t, "Jordan", updated.FirstName)
	assert.Equal(t, "6789", updated.SSNLast4)
}

func TestDeleteCustomer(t *testing.T) {
	svc, repo, audit := newCustomerServiceFixture()
	created, err := svc.CreateCustomer(context.Background(), "", sampleCustomerRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCustomer(context.Background(), "", created.ID.String()))
	assert.Empty(t, repo.rows)
	assert.Len(t, audit.entries, 2)

	err = svc.DeleteCustomer(context.Background(), "", created.ID.String())
	assert.True(t, errors.Is(err, ErrNotFound))
}
