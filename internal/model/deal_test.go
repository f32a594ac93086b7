package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestDealFiguresUseUnscaledNumericColumns(t *testing.T) {
	s, err := schema.Parse(&Deal{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	columns := []string{
		"vehicle_price", "trade_value", "down_payment",
		"loan_amount", "interest_rate", "monthly_payment",
		"extended_warranty", "gap_insurance", "credit_life", "disability_insurance", "service_contract",
		"sales_tax_rate", "sales_tax", "doc_fee", "title_fee", "registration_fee",
		"total_add_ons", "total_fees", "total_amount_financed",
		"approval_amount", "approved_rate", "approved_payment",
	}
	for _, column := range columns {
		field := s.LookUpField(column)
		require.NotNil(t, field, column)
		assert.Equal(t, "numeric", field.TagSettings["TYPE"], column)
	}
}
