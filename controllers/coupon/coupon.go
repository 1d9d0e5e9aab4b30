package couponControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/parthvaghani/vinayaknaturals-api/models"
)

// -------- Request Structs --------

type CouponRequest struct {
	Code           string          `json:"code" binding:"required"`
	Description    string          `json:"description"`
	Type           string          `json:"type" binding:"required"` // "percentage" or "flat"
	Value          decimal.Decimal `json:"value"`
	MaxDiscount    decimal.Decimal `json:"maxDiscount"`
	MinOrderAmount decimal.Decimal `json:"minOrderAmount"`
	UsageLimit     int             `json:"usageLimit"`
	ExpiresAt      *time.Time      `json:"expiresAt"`
}

type ValidateCouponRequest struct {
	Code     string          `json:"code" binding:"required"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// -------- Core Logic --------

var hundred = decimal.NewFromInt(100)

// ApplyCode resolves a coupon code against an order subtotal and returns the
// application snapshot with the absolute discount amount fixed. The pricing
// calculator only ever consumes this precomputed figure.
func ApplyCode(db *gorm.DB, code string, subtotal decimal.Decimal) (models.CouponApplication, error) {
	var coupon models.Coupon
	err := db.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CouponApplication{}, errors.New("coupon code not found")
	}
	if err != nil {
		return models.CouponApplication{}, err
	}

	if !coupon.IsActive {
		return models.CouponApplication{}, errors.New("coupon is inactive")
	}
	if coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(time.Now()) {
		return models.CouponApplication{}, errors.New("coupon has expired")
	}
	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return models.CouponApplication{}, errors.New("coupon usage limit reached")
	}
	if subtotal.LessThan(coupon.MinOrderAmount) {
		return models.CouponApplication{}, fmt.Errorf("order must be at least %s to use this coupon", coupon.MinOrderAmount)
	}

	var amount decimal.Decimal
	var label string
	switch coupon.Type {
	case models.CouponTypePercentage:
		amount = subtotal.Mul(coupon.Value).Div(hundred).Round(2)
		if coupon.MaxDiscount.IsPositive() && amount.GreaterThan(coupon.MaxDiscount) {
			amount = coupon.MaxDiscount
		}
		label = fmt.Sprintf("%s%% off", coupon.Value)
	default:
		amount = coupon.Value
	}
	if amount.GreaterThan(subtotal) {
		amount = subtotal
	}

	return models.CouponApplication{
		CouponID:       coupon.ID,
		CouponCode:     coupon.Code,
		DiscountAmount: amount,
		DiscountLabel:  label,
	}, nil
}

// -------- Handlers --------

// ValidateCouponHandler quotes the absolute discount for a code and subtotal.
// The storefront calls this before checkout; the POS flow reuses ApplyCode
// directly.
func ValidateCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		application, err := ApplyCode(db, req.Code, req.Subtotal)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"couponId":                application.CouponID,
			"couponCode":              application.CouponCode,
			"discountAmount":          application.DiscountAmount,
			"discountPercentageLabel": application.DiscountLabel,
		})
	}
}

func CreateCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Type != string(models.CouponTypePercentage) && req.Type != string(models.CouponTypeFlat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be percentage or flat"})
			return
		}
		if req.Value.LessThanOrEqual(decimal.Zero) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "value must be greater than zero"})
			return
		}

		coupon := models.Coupon{
			Code:           strings.ToUpper(strings.TrimSpace(req.Code)),
			Description:    req.Description,
			Type:           models.CouponType(req.Type),
			Value:          req.Value,
			MaxDiscount:    req.MaxDiscount,
			MinOrderAmount: req.MinOrderAmount,
			UsageLimit:     req.UsageLimit,
			IsActive:       true,
			ExpiresAt:      req.ExpiresAt,
		}
		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
			return
		}
		c.JSON(http.StatusCreated, coupon)
	}
}

func GetAllCouponsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at DESC").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, coupons)
	}
}

func UpdateCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var coupon models.Coupon
		if err := db.First(&coupon, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}

		var req CouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		coupon.Code = strings.ToUpper(strings.TrimSpace(req.Code))
		coupon.Description = req.Description
		coupon.Type = models.CouponType(req.Type)
		coupon.Value = req.Value
		coupon.MaxDiscount = req.MaxDiscount
		coupon.MinOrderAmount = req.MinOrderAmount
		coupon.UsageLimit = req.UsageLimit
		coupon.ExpiresAt = req.ExpiresAt

		if err := db.Save(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			return
		}
		c.JSON(http.StatusOK, coupon)
	}
}

// SetCouponActiveHandler toggles a coupon without touching its rule fields.
func SetCouponActiveHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req struct {
			IsActive *bool `json:"isActive" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Coupon{}).Where("id = ?", id).
			Update("is_active", *req.IsActive).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon updated successfully"})
	}
}

func DeleteCouponHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := db.Delete(&models.Coupon{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
	}
}
