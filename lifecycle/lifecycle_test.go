package lifecycle

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parthvaghani/vinayaknaturals-api/models"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// prepaidOrder builds a prepaid order with a 500 grand total.
func prepaidOrder() models.Order {
	return models.Order{
		Status: models.OrderStatusDelivered,
		Items: []models.OrderLineItem{
			{UnitPrice: d("250"), Quantity: 2},
		},
		PaymentMethod: models.PaymentMethodPrepaid,
		PaymentStatus: models.PaymentStatusPaid,
		PaymentID:     "pay_HGx12",
	}
}

func TestTransitionClosure(t *testing.T) {
	all := []models.OrderStatus{
		models.OrderStatusPlaced,
		models.OrderStatusAccepted,
		models.OrderStatusInProgress,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
		models.OrderStatusDelivered,
	}
	allowed := map[models.OrderStatus]map[models.OrderStatus]bool{
		models.OrderStatusPlaced:     {models.OrderStatusAccepted: true, models.OrderStatusCancelled: true},
		models.OrderStatusAccepted:   {models.OrderStatusInProgress: true, models.OrderStatusCancelled: true},
		models.OrderStatusInProgress: {models.OrderStatusCompleted: true},
		models.OrderStatusCompleted:  {models.OrderStatusDelivered: true},
		models.OrderStatusCancelled:  {},
		models.OrderStatusDelivered:  {},
	}

	for _, from := range all {
		for _, to := range all {
			order := models.Order{Status: from}
			_, err := Transition(order, to, TransitionInput{CancelReason: "customer request"})
			if allowed[from][to] {
				assert.NoErrorf(t, err, "%s -> %s should be allowed", from, to)
			} else {
				require.Errorf(t, err, "%s -> %s should be rejected", from, to)
				assert.Equal(t, KindInvalidTransition, KindOf(err), "%s -> %s", from, to)
			}
		}
	}
}

func TestTransitionFromDeliveredAlwaysFails(t *testing.T) {
	order := models.Order{Status: models.OrderStatusDelivered}
	for _, to := range []models.OrderStatus{
		models.OrderStatusPlaced,
		models.OrderStatusAccepted,
		models.OrderStatusCancelled,
	} {
		_, err := Transition(order, to, TransitionInput{CancelReason: "late"})
		require.Error(t, err)
		assert.Equal(t, KindInvalidTransition, KindOf(err))
	}
}

func TestTransitionUnknownStatusRejected(t *testing.T) {
	order := models.Order{Status: models.OrderStatusPlaced}
	_, err := Transition(order, models.OrderStatus("shipped"), TransitionInput{})
	require.Error(t, err)
	assert.Equal(t, KindInvalidTransition, KindOf(err))
}

func TestCancellationRequiresReason(t *testing.T) {
	order := models.Order{Status: models.OrderStatusPlaced}

	_, err := Transition(order, models.OrderStatusCancelled, TransitionInput{})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = Transition(order, models.OrderStatusCancelled, TransitionInput{CancelReason: "   "})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))

	change, err := Transition(order, models.OrderStatusCancelled, TransitionInput{CancelReason: "out of stock"})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, change.Status)
	assert.Equal(t, "out of stock", change.CancelReason)
	assert.Equal(t, "out of stock", change.HistoryEntry.Note)
}

func TestCompletionCarriesTrackingPayload(t *testing.T) {
	order := models.Order{Status: models.OrderStatusInProgress}
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	change, err := Transition(order, models.OrderStatusCompleted, TransitionInput{
		TrackingLink:   "https://track.example/123",
		TrackingNumber: "AWB123",
		CourierName:    "Delhivery",
		CustomMessage:  "Dispatched same day",
		Now:            now,
	})
	require.NoError(t, err)

	entry := change.HistoryEntry
	assert.Equal(t, models.OrderStatusCompleted, entry.Status)
	assert.Equal(t, "https://track.example/123", entry.TrackingLink)
	assert.Equal(t, "AWB123", entry.TrackingNumber)
	assert.Equal(t, "Delhivery", entry.CourierName)
	assert.Equal(t, "Dispatched same day", entry.Note)
	assert.Equal(t, models.ActorAdmin, entry.Actor)
	assert.Equal(t, now, entry.CreatedAt)
}

func TestTransitionDoesNotMutateOrder(t *testing.T) {
	order := models.Order{Status: models.OrderStatusPlaced}
	_, err := Transition(order, models.OrderStatusAccepted, TransitionInput{})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Empty(t, order.StatusHistory)
}

func TestSetPaymentStatus(t *testing.T) {
	order := models.Order{PaymentStatus: models.PaymentStatusUnpaid}

	got, err := SetPaymentStatus(order, models.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, got)

	order.PaymentStatus = models.PaymentStatusPaid
	got, err = SetPaymentStatus(order, models.PaymentStatusUnpaid)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusUnpaid, got)

	// refunded is never reachable through a direct edit
	_, err = SetPaymentStatus(order, models.PaymentStatusRefunded)
	require.Error(t, err)
	assert.Equal(t, KindInvalidTransition, KindOf(err))

	order.PaymentStatus = models.PaymentStatusRefunded
	_, err = SetPaymentStatus(order, models.PaymentStatusPaid)
	require.Error(t, err)
	assert.Equal(t, KindInvalidTransition, KindOf(err))
}

func TestInitiateRefundBoundedByRefundableBalance(t *testing.T) {
	order := prepaidOrder()
	order.Refund = &models.RefundRecord{
		RefundAmount: d("200"),
		RefundStatus: models.RefundStatusProcessed,
	}

	_, err := InitiateRefund(order, d("350"), "damaged items", time.Time{})
	require.Error(t, err)
	assert.Equal(t, KindRefundNotEligible, KindOf(err))

	change, err := InitiateRefund(order, d("300"), "damaged items", time.Time{})
	require.NoError(t, err)
	assert.True(t, change.RefundAmount.Equal(d("500")), "cumulative refund should be 500, got %s", change.RefundAmount)
	assert.Equal(t, models.RefundStatusPending, change.RefundStatus)
	// 500 == grand total, so the payment flips to refunded
	assert.Equal(t, models.PaymentStatusRefunded, change.PaymentStatus)
	assert.True(t, change.HistoryEntry.Amount.Equal(d("300")))
	assert.Equal(t, "damaged items", change.HistoryEntry.Note)
}

func TestPartialRefundKeepsPaymentStatus(t *testing.T) {
	order := prepaidOrder()

	change, err := InitiateRefund(order, d("100"), "one box short", time.Time{})
	require.NoError(t, err)
	assert.True(t, change.RefundAmount.Equal(d("100")))
	assert.Equal(t, models.PaymentStatusPaid, change.PaymentStatus)
	assert.Equal(t, models.RefundStatusPending, change.RefundStatus)
}

func TestInitiateRefundEligibility(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.Order)
		amount   decimal.Decimal
		wantKind ErrorKind
	}{
		{
			name:     "cod order",
			mutate:   func(o *models.Order) { o.PaymentMethod = models.PaymentMethodCOD },
			amount:   d("100"),
			wantKind: KindRefundNotEligible,
		},
		{
			name:     "missing payment reference",
			mutate:   func(o *models.Order) { o.PaymentID = "" },
			amount:   d("100"),
			wantKind: KindRefundNotEligible,
		},
		{
			name:     "already fully refunded",
			mutate:   func(o *models.Order) { o.PaymentStatus = models.PaymentStatusRefunded },
			amount:   d("100"),
			wantKind: KindRefundNotEligible,
		},
		{
			name: "zero remaining balance",
			mutate: func(o *models.Order) {
				o.Refund = &models.RefundRecord{RefundAmount: d("500")}
			},
			amount:   d("100"),
			wantKind: KindRefundNotEligible,
		},
		{
			name:     "zero amount",
			mutate:   func(o *models.Order) {},
			amount:   decimal.Zero,
			wantKind: KindValidation,
		},
		{
			name:     "negative amount",
			mutate:   func(o *models.Order) {},
			amount:   d("-50"),
			wantKind: KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := prepaidOrder()
			tt.mutate(&order)
			_, err := InitiateRefund(order, tt.amount, "reason", time.Time{})
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
		})
	}
}

func TestRefundIgnoresFulfilmentStatus(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.OrderStatusPlaced,
		models.OrderStatusCancelled,
		models.OrderStatusDelivered,
	} {
		order := prepaidOrder()
		order.Status = status
		_, err := InitiateRefund(order, d("50"), "goodwill", time.Time{})
		assert.NoErrorf(t, err, "refund should be allowed while order is %s", status)
	}
}

func TestAllowedTransitionsReturnsCopy(t *testing.T) {
	first := AllowedTransitions(models.OrderStatusPlaced)
	require.Len(t, first, 2)
	first[0] = models.OrderStatusDelivered

	second := AllowedTransitions(models.OrderStatusPlaced)
	assert.Equal(t, models.OrderStatusAccepted, second[0])
}
