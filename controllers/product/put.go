package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/parthvaghani/vinayaknaturals-api/models"
)

const productUploadDir = "/var/www/vinayaknaturals/uploads/products"
const productPublicPath = "/uploads/products"

// UpdateProduct updates an existing product by ID. Accepts the same fields as
// CreateProduct and an optional "image" file.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		parseDecimal := func(val string) *decimal.Decimal {
			if val == "" {
				return nil
			}
			if d, err := decimal.NewFromString(val); err == nil {
				return &d
			}
			return nil
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := parseDecimal(c.PostForm("price")); v != nil {
			product.Price = *v
		}
		if v := parseDecimal(c.PostForm("discount")); v != nil {
			product.Discount = *v
		}
		if v := c.PostForm("weight"); v != "" {
			if w, parseErr := strconv.ParseFloat(v, 64); parseErr == nil {
				product.Weight = w
			}
		}
		if v := c.PostForm("stock"); v != "" {
			if s, parseErr := strconv.Atoi(v); parseErr == nil {
				product.Stock = s
			}
		}
		if v := c.PostForm("is_active"); v != "" {
			if b, parseErr := strconv.ParseBool(v); parseErr == nil {
				product.IsActive = b
			}
		}
		if product.Discount.GreaterThan(product.Price) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discount cannot exceed price"})
			return
		}

		// Update categories if provided
		if categoryIDsStr := c.PostForm("category_ids"); categoryIDsStr != "" {
			idTokens := strings.Split(categoryIDsStr, ",")
			var parsedIDs []uint
			for _, tok := range idTokens {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if id64, parseErr := strconv.ParseUint(tok, 10, 64); parseErr == nil {
					parsedIDs = append(parsedIDs, uint(id64))
				}
			}
			if len(parsedIDs) > 0 {
				var categories []models.Category
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err == nil {
					if err := db.Model(&product).Association("Categories").Replace(categories); err != nil {
						c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update categories"})
						return
					}
				}
			}
		}

		// Handle optional image upload
		file, err := c.FormFile("image")
		if err == nil {
			if err := os.MkdirAll(productUploadDir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
				return
			}

			ext := filepath.Ext(file.Filename)
			base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
			base = strings.ReplaceAll(base, " ", "_")
			filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

			savePath := filepath.Join(productUploadDir, filename)
			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}

			product.Image = fmt.Sprintf("%s/%s", productPublicPath, filename)
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
