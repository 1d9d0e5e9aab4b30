// Package lifecycle is the single authority on order status and payment
// transitions. Every screen used to carry its own switch over allowed moves;
// they all go through this table now. Operations return proposed changes and
// never mutate the order they were given, so callers can persist first and
// apply after the write is confirmed.
package lifecycle

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parthvaghani/vinayaknaturals-api/models"
	"github.com/parthvaghani/vinayaknaturals-api/pricing"
)

// transitions maps each status to the statuses it may move to. cancelled and
// delivered are terminal.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPlaced:     {models.OrderStatusAccepted, models.OrderStatusCancelled},
	models.OrderStatusAccepted:   {models.OrderStatusInProgress, models.OrderStatusCancelled},
	models.OrderStatusInProgress: {models.OrderStatusCompleted},
	models.OrderStatusCompleted:  {models.OrderStatusDelivered},
	models.OrderStatusCancelled:  {},
	models.OrderStatusDelivered:  {},
}

// CanTransition reports whether the status change is in the transition table.
func CanTransition(from, to models.OrderStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the legal next statuses, for the dashboard to
// render only valid actions. The controller still re-validates every request.
func AllowedTransitions(from models.OrderStatus) []models.OrderStatus {
	allowed := transitions[from]
	out := make([]models.OrderStatus, len(allowed))
	copy(out, allowed)
	return out
}

// TransitionInput carries the side-inputs a transition may need. CancelReason
// is mandatory for cancellation; the tracking fields are optional extras for
// completion.
type TransitionInput struct {
	CancelReason   string
	TrackingLink   string
	TrackingNumber string
	CourierName    string
	CustomMessage  string
	Actor          models.HistoryActor
	Now            time.Time
}

// StatusChange is a proposed status transition. Nothing is applied until the
// caller persists it.
type StatusChange struct {
	Status       models.OrderStatus
	CancelReason string
	HistoryEntry models.StatusHistoryEntry
}

// Transition validates a requested status change against the transition table
// and returns the proposed change with its history entry.
func Transition(order models.Order, target models.OrderStatus, in TransitionInput) (StatusChange, error) {
	if _, known := transitions[target]; !known {
		return StatusChange{}, invalidTransitionErr("unknown order status %q", target)
	}
	if !CanTransition(order.Status, target) {
		return StatusChange{}, invalidTransitionErr("cannot move order from %s to %s", order.Status, target)
	}

	change := StatusChange{Status: target}

	if target == models.OrderStatusCancelled {
		reason := strings.TrimSpace(in.CancelReason)
		if reason == "" {
			return StatusChange{}, validationErr("a cancellation reason is required")
		}
		change.CancelReason = reason
	}

	actor := in.Actor
	if actor == "" {
		actor = models.ActorAdmin
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	entry := models.StatusHistoryEntry{
		Status:    target,
		Note:      strings.TrimSpace(in.CustomMessage),
		Actor:     actor,
		CreatedAt: now,
	}
	switch target {
	case models.OrderStatusCancelled:
		entry.Note = change.CancelReason
	case models.OrderStatusCompleted:
		entry.TrackingLink = in.TrackingLink
		entry.TrackingNumber = in.TrackingNumber
		entry.CourierName = in.CourierName
	}
	change.HistoryEntry = entry

	return change, nil
}

// SetPaymentStatus handles direct payment-status edits. Marking paid/unpaid is
// a freely reversible administrative correction; refunded is only reachable
// through InitiateRefund.
func SetPaymentStatus(order models.Order, target models.PaymentStatus) (models.PaymentStatus, error) {
	switch target {
	case models.PaymentStatusUnpaid, models.PaymentStatusPaid:
		if order.PaymentStatus == models.PaymentStatusRefunded {
			return "", invalidTransitionErr("refunded orders cannot be marked %s", target)
		}
		return target, nil
	case models.PaymentStatusRefunded:
		return "", invalidTransitionErr("refunded is set by the refund operation, not a direct edit")
	default:
		return "", invalidTransitionErr("unknown payment status %q", target)
	}
}

// RefundChange is a proposed refund. RefundAmount is the new cumulative total;
// PaymentStatus flips to refunded only when the order is fully refunded.
type RefundChange struct {
	RefundAmount  decimal.Decimal
	RefundStatus  models.RefundStatus
	PaymentStatus models.PaymentStatus
	HistoryEntry  models.RefundHistoryEntry
}

// InitiateRefund validates a refund request against the order's refundable
// balance. Refunds are deliberately not gated by fulfilment status: a
// delivered or cancelled order can still be refunded.
func InitiateRefund(order models.Order, amount decimal.Decimal, reason string, now time.Time) (RefundChange, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return RefundChange{}, validationErr("refund amount must be greater than zero")
	}
	if order.PaymentMethod != models.PaymentMethodPrepaid {
		return RefundChange{}, refundNotEligibleErr("only prepaid orders can be refunded")
	}
	if order.PaymentID == "" {
		return RefundChange{}, refundNotEligibleErr("order has no payment reference")
	}
	if order.PaymentStatus == models.PaymentStatusRefunded {
		return RefundChange{}, refundNotEligibleErr("order is already fully refunded")
	}

	breakdown := pricing.Compute(order)
	if breakdown.MaxRefundable.IsZero() {
		return RefundChange{}, refundNotEligibleErr("no refundable balance remaining")
	}
	if amount.GreaterThan(breakdown.MaxRefundable) {
		return RefundChange{}, refundNotEligibleErr(
			"refund amount %s exceeds refundable balance %s", amount, breakdown.MaxRefundable)
	}

	if now.IsZero() {
		now = time.Now()
	}

	newTotal := breakdown.AlreadyRefunded.Add(amount)
	change := RefundChange{
		RefundAmount:  newTotal,
		RefundStatus:  models.RefundStatusPending,
		PaymentStatus: order.PaymentStatus,
		HistoryEntry: models.RefundHistoryEntry{
			Status:    models.RefundStatusPending,
			Amount:    amount,
			Note:      strings.TrimSpace(reason),
			CreatedAt: now,
		},
	}
	if newTotal.GreaterThanOrEqual(breakdown.GrandTotal) {
		change.PaymentStatus = models.PaymentStatusRefunded
	}
	return change, nil
}
