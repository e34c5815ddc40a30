package controllers

import (
	"errors"
	"strconv"

	"cart-gateway/models"
	"cart-gateway/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog services.Catalog
}

// GetProductByID godoc
// @Summary Get product by ID
// @Description Proxy a single catalog product from the upstream API
// @Tags catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.Catalog.GetProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		respondCartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product retrieved",
		"data":    product,
	})
}
