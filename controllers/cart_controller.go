package controllers

import (
	"errors"
	"strconv"

	"cart-gateway/models"
	"cart-gateway/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Carts *services.CartService
}

func sessionFrom(c *gin.Context) models.Session {
	return models.Session{
		GuestID: c.GetString("guest_id"),
		Token:   c.GetString("token"),
		UserID:  c.GetString("user_id"),
	}
}

func respondCartError(c *gin.Context, err error) {
	var upErr *models.UpstreamError
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		c.JSON(404, gin.H{"success": false, "message": "Cart item not found"})
	case errors.Is(err, models.ErrProductNotFound):
		c.JSON(400, gin.H{"success": false, "message": "Product does not exist"})
	case errors.Is(err, models.ErrInvalidQuantity), errors.Is(err, models.ErrInvalidAddRequest):
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
	case errors.As(err, &upErr):
		c.JSON(upErr.Status, gin.H{"success": false, "message": "Upstream request failed", "error": upErr.Body})
	default:
		c.JSON(500, gin.H{"success": false, "message": "Internal server error", "error": err.Error()})
	}
}

// GetCart godoc
// @Summary Get current cart
// @Description Get the cart for the current session, guest or authenticated
// @Tags cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.Carts.Get(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data":    cart,
	})
}

// GetCartCount godoc
// @Summary Get cart item count
// @Description Sum of quantities across cart lines, for the navbar badge
// @Tags cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/count [get]
func (ctrl *CartController) GetCartCount(c *gin.Context) {
	count, err := ctrl.Carts.Count(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart count retrieved",
		"data":    gin.H{"count": count},
	})
}

// AddToCart godoc
// @Summary Add item to cart
// @Description Add a catalog product (productId, optional productVariantId) or a virtual item (productName + price)
// @Tags cart
// @Accept json
// @Produce json
// @Param request body models.AddItemRequest true "Add Item Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/add [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var body models.AddItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	req, err := body.ToAddRequest()
	if err != nil {
		respondCartError(c, err)
		return
	}

	cart, err := ctrl.Carts.Add(c.Request.Context(), sessionFrom(c), req)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Item added to cart",
		"data":    cart,
	})
}

// UpdateCartItem godoc
// @Summary Update cart item quantity
// @Description Set the quantity of a cart line; a quantity below 1 removes it
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID"
// @Param request body models.UpdateQuantityRequest true "Update Quantity Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{id} [put]
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	var body models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	cart, err := ctrl.Carts.UpdateQuantity(c.Request.Context(), sessionFrom(c), c.Param("id"), body.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart item updated",
		"data":    cart,
	})
}

// RemoveCartItem godoc
// @Summary Remove cart item
// @Description Remove a cart line; removing an already absent line succeeds
// @Tags cart
// @Produce json
// @Param id path string true "Cart item ID"
// @Param variantId query int false "Variant ID, for legacy lines addressed by productId"
// @Success 200 {object} models.Response
// @Router /cart/{id} [delete]
func (ctrl *CartController) RemoveCartItem(c *gin.Context) {
	var variantID *int
	if raw := c.Query("variantId"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid variantId"})
			return
		}
		variantID = &parsed
	}

	cart, err := ctrl.Carts.Remove(c.Request.Context(), sessionFrom(c), c.Param("id"), variantID)
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Item removed from cart",
		"data":    cart,
	})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Empty the cart for the current session
// @Tags cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart, err := ctrl.Carts.Clear(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart cleared",
		"data":    cart,
	})
}

// MergeCart godoc
// @Summary Merge guest cart into server cart
// @Description Retry the login-time merge of a guest cart; requires authentication
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /cart/merge [post]
func (ctrl *CartController) MergeCart(c *gin.Context) {
	sess := sessionFrom(c)
	result := ctrl.Carts.MergeOnLogin(c.Request.Context(), sess.GuestID, sess.Token)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Merge attempted",
		"data":    result,
	})
}
