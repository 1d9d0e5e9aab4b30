// Package pricing turns a raw order into its monetary breakdown. Every screen
// that shows subtotal/discount/total figures goes through Compute so the
// arithmetic lives in exactly one place.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/parthvaghani/vinayaknaturals-api/models"
)

// Breakdown is the full set of monetary figures derived from one order.
// GrossSubtotal is the pre-discount line sum, PostDiscountSubtotal the sum
// after per-unit product discounts; both are exposed because display contexts
// need each under the name "subtotal".
type Breakdown struct {
	GrossSubtotal        decimal.Decimal `json:"grossSubtotal"`
	ProductDiscountTotal decimal.Decimal `json:"productDiscountTotal"`
	PostDiscountSubtotal decimal.Decimal `json:"postProductDiscountSubtotal"`
	CouponDiscount       decimal.Decimal `json:"couponDiscount"`
	PrepaidDiscount      decimal.Decimal `json:"prepaidDiscount"`
	CODFee               decimal.Decimal `json:"codFee"`
	ShippingCharge       decimal.Decimal `json:"shippingCharge"`
	GrandTotal           decimal.Decimal `json:"grandTotal"`
	TotalSavings         decimal.Decimal `json:"totalSavings"`
	AlreadyRefunded      decimal.Decimal `json:"alreadyRefunded"`
	MaxRefundable        decimal.Decimal `json:"maxRefundable"`
}

// nonNegative treats a missing or negative amount as zero. Partial order
// payloads must never crash the calculator, only produce a zero figure.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Compute derives the monetary breakdown for an order. It never mutates the
// order, performs no I/O and returns the same result for the same input.
func Compute(order models.Order) Breakdown {
	gross := decimal.Zero
	productDiscount := decimal.Zero
	postDiscount := decimal.Zero

	for _, item := range order.Items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		if qty.IsNegative() {
			qty = decimal.Zero
		}
		unitPrice := nonNegative(item.UnitPrice)
		unitDiscount := nonNegative(item.UnitDiscount)
		// A discount can never exceed the unit price it applies to.
		if unitDiscount.GreaterThan(unitPrice) {
			unitDiscount = unitPrice
		}

		gross = gross.Add(unitPrice.Mul(qty))
		productDiscount = productDiscount.Add(unitDiscount.Mul(qty))
		postDiscount = postDiscount.Add(unitPrice.Sub(unitDiscount).Mul(qty))
	}

	couponDiscount := decimal.Zero
	if order.Coupon != nil {
		couponDiscount = nonNegative(order.Coupon.DiscountAmount)
	}
	afterCoupon := nonNegative(postDiscount.Sub(couponDiscount))

	prepaidDiscount := decimal.Zero
	codFee := decimal.Zero
	afterPayment := afterCoupon
	switch order.PaymentMethod {
	case models.PaymentMethodPrepaid:
		prepaidDiscount = nonNegative(order.PrepaidDiscount)
		afterPayment = nonNegative(afterCoupon.Sub(prepaidDiscount))
	case models.PaymentMethodCOD:
		codFee = nonNegative(order.CODFee)
		afterPayment = afterCoupon.Add(codFee)
	}

	shipping := nonNegative(order.ShippingCharge)
	grandTotal := afterPayment.Add(shipping)

	// COD fee is a surcharge, not a saving.
	totalSavings := productDiscount.Add(couponDiscount).Add(prepaidDiscount)

	alreadyRefunded := decimal.Zero
	if order.Refund != nil {
		alreadyRefunded = nonNegative(order.Refund.RefundAmount)
	}
	maxRefundable := nonNegative(grandTotal.Sub(alreadyRefunded))

	return Breakdown{
		GrossSubtotal:        gross,
		ProductDiscountTotal: productDiscount,
		PostDiscountSubtotal: postDiscount,
		CouponDiscount:       couponDiscount,
		PrepaidDiscount:      prepaidDiscount,
		CODFee:               codFee,
		ShippingCharge:       shipping,
		GrandTotal:           grandTotal,
		TotalSavings:         totalSavings,
		AlreadyRefunded:      alreadyRefunded,
		MaxRefundable:        maxRefundable,
	}
}
