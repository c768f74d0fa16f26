package domain_test

import (
	"testing"

	"github.com/logiport/logiport_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.TransactionStatus
		to   domain.TransactionStatus
		want bool
	}{
		{"draft activates", domain.StatusDraft, domain.StatusActive, true},
		{"draft cannot close", domain.StatusDraft, domain.StatusClosed, false},
		{"active closes", domain.StatusActive, domain.StatusClosed, true},
		{"active reverts to draft", domain.StatusActive, domain.StatusDraft, true},
		{"closed reopens", domain.StatusClosed, domain.StatusActive, true},
		{"closed archives", domain.StatusClosed, domain.StatusArchived, true},
		{"archived is final", domain.StatusArchived, domain.StatusActive, false},
		{"no self transition", domain.StatusActive, domain.StatusActive, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTransactionStatus_IsValid(t *testing.T) {
	assert.True(t, domain.StatusDraft.IsValid())
	assert.True(t, domain.StatusArchived.IsValid())
	assert.False(t, domain.TransactionStatus("deleted").IsValid())
}

func TestTransaction_RecalculateTotals(t *testing.T) {
	txn := domain.Transaction{
		Items: []domain.TransactionItem{
			{
				Quantity:  decimal.NewFromInt(10),
				GrossKg:   decimal.NewFromInt(1050),
				NetKg:     decimal.NewFromInt(1000),
				LineTotal: decimal.NewFromFloat(250.50),
			},
			{
				Quantity:  decimal.NewFromInt(5),
				GrossKg:   decimal.NewFromInt(520),
				NetKg:     decimal.NewFromInt(500),
				LineTotal: decimal.NewFromFloat(99.50),
			},
		},
	}

	txn.RecalculateTotals()

	assert.True(t, txn.Totals.Count.Equal(decimal.NewFromInt(15)))
	assert.True(t, txn.Totals.GrossKg.Equal(decimal.NewFromInt(1570)))
	assert.True(t, txn.Totals.NetKg.Equal(decimal.NewFromInt(1500)))
	assert.True(t, txn.Totals.Value.Equal(decimal.NewFromFloat(350.00)))
}

func TestTransaction_RecalculateTotalsEmpty(t *testing.T) {
	txn := domain.Transaction{}
	txn.RecalculateTotals()
	assert.True(t, txn.Totals.Value.IsZero())
	assert.True(t, txn.Totals.Count.IsZero())
}
