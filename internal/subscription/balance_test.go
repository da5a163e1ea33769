package subscription

import (
	"testing"
	"time"

	"memberdesk/internal/api"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func amounts(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		out = append(out, decimal.NewFromInt(v))
	}
	return out
}

func mapping(price int64, validUntil api.Date, active bool) Mapping {
	return Mapping{ID: 1, Price: decimal.NewFromInt(price), ValidUntil: validUntil, IsActive: active}
}

func TestResolve_NoPayments(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, ist)
	b := Resolve(mapping(1000, api.NewDate(2025, 3, 31), true), nil, now)

	assert.Equal(t, "1000", b.PendingDue)
	assert.True(t, b.PendingAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b.TotalPaid.IsZero())
	assert.Equal(t, StatusActive, b.Status)
	require.NotNil(t, b.DueDate)
	assert.Equal(t, "31 Mar 2025", *b.DueDate)
}

func TestResolve_PartialPayment(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, ist)
	b := Resolve(mapping(1000, api.NewDate(2025, 3, 31), true), amounts(400), now)

	assert.Equal(t, "600", b.PendingDue)
	assert.True(t, b.TotalPaid.Equal(decimal.NewFromInt(400)))
}

func TestResolve_FullyPaidIsNA(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, ist)

	for _, paid := range [][]decimal.Decimal{amounts(1000), amounts(600, 500)} {
		b := Resolve(mapping(1000, api.NewDate(2025, 3, 31), true), paid, now)
		assert.Equal(t, NotApplicable, b.PendingDue)
		assert.True(t, b.PendingAmount.IsZero())
	}
}

func TestResolve_FractionalAmounts(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, ist)
	m := Mapping{Price: decimal.RequireFromString("999.50"), ValidUntil: api.NewDate(2025, 3, 31), IsActive: true}

	b := Resolve(m, []decimal.Decimal{decimal.RequireFromString("0.25")}, now)
	assert.Equal(t, "999.25", b.PendingDue)
}

func TestResolve_DeactivatedIsInactiveBeforeExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, ist)
	b := Resolve(mapping(1000, api.NewDate(2025, 3, 31), false), nil, now)

	assert.Equal(t, StatusInactive, b.Status)
	require.NotNil(t, b.DueDate)
}

func TestResolve_Expiry(t *testing.T) {
	validUntil := api.NewDate(2025, 3, 31)

	t.Run("last instant before midnight", func(t *testing.T) {
		now := time.Date(2025, 3, 30, 23, 59, 59, 0, ist)
		b := Resolve(mapping(1000, validUntil, true), nil, now)
		assert.Equal(t, StatusActive, b.Status)
	})

	t.Run("exactly at ValidUntil", func(t *testing.T) {
		now := validUntil.In(ist)
		b := Resolve(mapping(1000, validUntil, true), nil, now)
		assert.Equal(t, StatusInactive, b.Status)
		assert.Nil(t, b.DueDate)
	})

	t.Run("after expiry", func(t *testing.T) {
		now := time.Date(2025, 4, 2, 9, 0, 0, 0, ist)
		b := Resolve(mapping(1000, validUntil, true), amounts(200), now)
		assert.Equal(t, StatusInactive, b.Status)
		assert.Nil(t, b.DueDate)
		assert.Equal(t, "800", b.PendingDue)
	})
}

func TestIsActive(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, ist)

	assert.True(t, IsActive(mapping(0, api.NewDate(2025, 3, 11), true), now))
	assert.False(t, IsActive(mapping(0, api.NewDate(2025, 3, 11), false), now))
	assert.False(t, IsActive(mapping(0, api.NewDate(2025, 3, 10), true), now))
	assert.False(t, IsActive(Mapping{IsActive: true}, now))
}
