package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   order.Status
		expected string
	}{
		{order.New, "new"},
		{order.InPreparation, "in-preparation"},
		{order.ReadyToServe, "ready-to-serve"},
		{order.Served, "served"},
		{order.Closed, "closed"},
		{order.Unknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []order.Status{order.New, order.InPreparation, order.ReadyToServe, order.Served, order.Closed} {
		parsed, err := order.ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := order.ParseStatus("unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.New.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(-1).Validate())
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, order.New.IsActive())
	assert.True(t, order.ReadyToServe.IsActive())
	assert.True(t, order.Served.IsActive())
	assert.False(t, order.Closed.IsActive())
}

func TestItemStatus(t *testing.T) {
	assert.True(t, order.Pending.IsOutstanding())
	assert.True(t, order.Preparing.IsOutstanding())
	assert.False(t, order.Ready.IsOutstanding())

	for _, s := range []order.ItemStatus{order.Pending, order.Preparing, order.Ready} {
		parsed, err := order.ParseItemStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	assert.Equal(t, "in-preparation", order.Preparing.String())

	_, err := order.ParseItemStatus("done")
	require.Error(t, err)
}

func TestDestination(t *testing.T) {
	d, err := order.ParseDestination("bar")
	require.NoError(t, err)
	assert.Equal(t, order.Bar, d)
	assert.Equal(t, "kitchen", order.Kitchen.String())

	_, err = order.ParseDestination("terrace")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, order.UnknownDestination.Validate())
}
