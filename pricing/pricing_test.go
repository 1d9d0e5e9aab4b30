package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parthvaghani/vinayaknaturals-api/models"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, got.Equal(d(want)), "%s: want %s, got %s", field, want, got)
}

func TestComputeCODOrderWithoutDiscounts(t *testing.T) {
	order := models.Order{
		Items: []models.OrderLineItem{
			{UnitPrice: d("100"), Quantity: 2},
		},
		PaymentMethod:  models.PaymentMethodCOD,
		CODFee:         d("20"),
		ShippingCharge: d("50"),
	}

	b := Compute(order)

	assertAmount(t, "200", b.GrossSubtotal, "grossSubtotal")
	assertAmount(t, "0", b.ProductDiscountTotal, "productDiscountTotal")
	assertAmount(t, "200", b.PostDiscountSubtotal, "postDiscountSubtotal")
	assertAmount(t, "0", b.CouponDiscount, "couponDiscount")
	assertAmount(t, "20", b.CODFee, "codFee")
	assertAmount(t, "50", b.ShippingCharge, "shippingCharge")
	assertAmount(t, "270", b.GrandTotal, "grandTotal")
	assertAmount(t, "0", b.TotalSavings, "totalSavings")
}

func TestComputeFullDiscountStack(t *testing.T) {
	order := models.Order{
		Items: []models.OrderLineItem{
			{UnitPrice: d("100"), UnitDiscount: d("10"), Quantity: 3},
		},
		Coupon: &models.CouponApplication{
			CouponID:       7,
			DiscountAmount: d("20"),
			DiscountLabel:  "7% off",
		},
		PaymentMethod:   models.PaymentMethodPrepaid,
		PrepaidDiscount: d("15"),
	}

	b := Compute(order)

	assertAmount(t, "300", b.GrossSubtotal, "grossSubtotal")
	assertAmount(t, "30", b.ProductDiscountTotal, "productDiscountTotal")
	assertAmount(t, "270", b.PostDiscountSubtotal, "postDiscountSubtotal")
	assertAmount(t, "20", b.CouponDiscount, "couponDiscount")
	assertAmount(t, "15", b.PrepaidDiscount, "prepaidDiscount")
	assertAmount(t, "0", b.CODFee, "codFee")
	assertAmount(t, "235", b.GrandTotal, "grandTotal")
	assertAmount(t, "65", b.TotalSavings, "totalSavings")
}

func TestComputeRefundableBalance(t *testing.T) {
	order := models.Order{
		Items: []models.OrderLineItem{
			{UnitPrice: d("250"), Quantity: 2},
		},
		PaymentMethod: models.PaymentMethodPrepaid,
		Refund: &models.RefundRecord{
			RefundAmount: d("200"),
			RefundStatus: models.RefundStatusProcessed,
		},
	}

	b := Compute(order)

	assertAmount(t, "500", b.GrandTotal, "grandTotal")
	assertAmount(t, "200", b.AlreadyRefunded, "alreadyRefunded")
	assertAmount(t, "300", b.MaxRefundable, "maxRefundable")
}

func TestComputeIsIdempotent(t *testing.T) {
	order := models.Order{
		Items: []models.OrderLineItem{
			{UnitPrice: d("149.50"), UnitDiscount: d("9.50"), Quantity: 4},
			{UnitPrice: d("80"), Quantity: 1},
		},
		Coupon:         &models.CouponApplication{DiscountAmount: d("50")},
		PaymentMethod:  models.PaymentMethodCOD,
		CODFee:         d("25"),
		ShippingCharge: d("40"),
		Refund:         &models.RefundRecord{RefundAmount: d("10")},
	}

	first := Compute(order)
	second := Compute(order)
	assert.Equal(t, first, second)
}

func TestComputeNeverReturnsNegativeFigures(t *testing.T) {
	tests := []struct {
		name  string
		order models.Order
	}{
		{
			name:  "empty order",
			order: models.Order{},
		},
		{
			name: "coupon larger than subtotal",
			order: models.Order{
				Items:  []models.OrderLineItem{{UnitPrice: d("50"), Quantity: 1}},
				Coupon: &models.CouponApplication{DiscountAmount: d("500")},
			},
		},
		{
			name: "prepaid discount larger than remainder",
			order: models.Order{
				Items:           []models.OrderLineItem{{UnitPrice: d("30"), Quantity: 1}},
				PaymentMethod:   models.PaymentMethodPrepaid,
				PrepaidDiscount: d("100"),
			},
		},
		{
			name: "refund exceeds total",
			order: models.Order{
				Items:         []models.OrderLineItem{{UnitPrice: d("100"), Quantity: 1}},
				PaymentMethod: models.PaymentMethodPrepaid,
				Refund:        &models.RefundRecord{RefundAmount: d("999")},
			},
		},
		{
			name: "negative inputs are treated as zero",
			order: models.Order{
				Items: []models.OrderLineItem{
					{UnitPrice: d("-10"), UnitDiscount: d("-5"), Quantity: 2},
				},
				ShippingCharge: d("-30"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Compute(tt.order)
			for field, v := range map[string]decimal.Decimal{
				"grossSubtotal":        b.GrossSubtotal,
				"productDiscountTotal": b.ProductDiscountTotal,
				"postDiscountSubtotal": b.PostDiscountSubtotal,
				"couponDiscount":       b.CouponDiscount,
				"prepaidDiscount":      b.PrepaidDiscount,
				"codFee":               b.CODFee,
				"shippingCharge":       b.ShippingCharge,
				"grandTotal":           b.GrandTotal,
				"totalSavings":         b.TotalSavings,
				"alreadyRefunded":      b.AlreadyRefunded,
				"maxRefundable":        b.MaxRefundable,
			} {
				assert.Falsef(t, v.IsNegative(), "%s is negative: %s", field, v)
			}
		})
	}
}

func TestComputeConservation(t *testing.T) {
	order := models.Order{
		Items: []models.OrderLineItem{
			{UnitPrice: d("120"), UnitDiscount: d("20"), Quantity: 2},
			{UnitPrice: d("75.50"), Quantity: 3},
		},
		Coupon:         &models.CouponApplication{DiscountAmount: d("35")},
		PaymentMethod:  models.PaymentMethodCOD,
		CODFee:         d("30"),
		ShippingCharge: d("60"),
	}

	b := Compute(order)

	want := b.PostDiscountSubtotal.
		Sub(b.CouponDiscount).
		Add(b.CODFee).
		Sub(b.PrepaidDiscount).
		Add(b.ShippingCharge)
	require.True(t, b.GrandTotal.Equal(want), "grandTotal %s != reconstructed %s", b.GrandTotal, want)
}

func TestComputeDiscountClampedToUnitPrice(t *testing.T) {
	order := models.Order{
		Items: []models.OrderLineItem{
			{UnitPrice: d("40"), UnitDiscount: d("90"), Quantity: 2},
		},
	}

	b := Compute(order)

	assertAmount(t, "80", b.GrossSubtotal, "grossSubtotal")
	assertAmount(t, "80", b.ProductDiscountTotal, "productDiscountTotal")
	assertAmount(t, "0", b.PostDiscountSubtotal, "postDiscountSubtotal")
	// Gross minus the product discount must always land on the post-discount sum.
	assert.True(t, b.GrossSubtotal.Sub(b.ProductDiscountTotal).Equal(b.PostDiscountSubtotal))
}

func TestComputeDoesNotMutateOrder(t *testing.T) {
	coupon := &models.CouponApplication{DiscountAmount: d("10")}
	order := models.Order{
		Items:          []models.OrderLineItem{{UnitPrice: d("100"), Quantity: 1}},
		Coupon:         coupon,
		PaymentMethod:  models.PaymentMethodCOD,
		CODFee:         d("20"),
		ShippingCharge: d("50"),
	}

	_ = Compute(order)

	assert.True(t, order.Items[0].UnitPrice.Equal(d("100")))
	assert.True(t, coupon.DiscountAmount.Equal(d("10")))
}
