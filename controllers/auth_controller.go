package controllers

import (
	"errors"
	"log"

	"cart-gateway/libs"
	"cart-gateway/models"
	"cart-gateway/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Upstream *libs.UpstreamClient
	Carts    *services.CartService
}

// Login godoc
// @Summary Login
// @Description Proxy credentials upstream; on success the guest cart is merged into the server cart
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	token, err := ctrl.Upstream.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var upErr *models.UpstreamError
		if errors.As(err, &upErr) && upErr.Status == 401 {
			c.JSON(401, gin.H{"success": false, "message": "Invalid email or password"})
			return
		}
		respondCartError(c, err)
		return
	}

	// A failed merge never fails the login; the guest cart stays put and
	// the merge can be retried via POST /cart/merge.
	var merge *models.MergeResult
	if guestID := c.GetString("guest_id"); guestID != "" {
		result := ctrl.Carts.MergeOnLogin(c.Request.Context(), guestID, token)
		if !result.Merged {
			log.Printf("Guest cart merge did not complete for %s", guestID)
		}
		merge = &result
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    models.LoginResponse{Token: token, Merge: merge},
	})
}

// Logout godoc
// @Summary Logout
// @Description Drop any guest cart remnant; the client discards its token
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if guestID := c.GetString("guest_id"); guestID != "" {
		if err := ctrl.Carts.ClearGuestResidue(c.Request.Context(), guestID); err != nil {
			respondCartError(c, err)
			return
		}
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Logged out",
	})
}
