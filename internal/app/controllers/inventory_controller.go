package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erasmusedu/erasmus-portal/internal/app/models/dto"
	"github.com/erasmusedu/erasmus-portal/internal/app/services"
	"github.com/erasmusedu/erasmus-portal/internal/middleware"
)

// InventoryController handles stock management
type InventoryController struct {
	inventoryService services.InventoryService
}

// NewInventoryController creates a new InventoryController
func NewInventoryController(inventoryService services.InventoryService) *InventoryController {
	return &InventoryController{
		inventoryService: inventoryService,
	}
}

// ListItems returns all stock items
// @Summary List inventory
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.InventoryItem} "Items"
// @Router /staff/inventory [get]
func (c *InventoryController) ListItems(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.inventoryService.ListItems()))
}

// CreateItem adds a stock item
// @Summary Create an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.InventoryItemRequest true "Item fields"
// @Success 201 {object} dto.APIResponse{data=models.InventoryItem} "Created item"
// @Failure 400 {object} dto.ErrorResponse "Invalid item data"
// @Router /staff/inventory [post]
func (c *InventoryController) CreateItem(ctx *gin.Context) {
	var req dto.InventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid item data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.inventoryService.CreateItem(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(item))
}

// AdjustQuantity steps an item's quantity
// @Summary Adjust item quantity
// @Description Adds delta to the quantity; the result never goes below zero
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body dto.AdjustQuantityRequest true "Quantity delta"
// @Success 200 {object} dto.APIResponse{data=models.InventoryItem} "Adjusted item"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /staff/inventory/{id}/adjust [post]
func (c *InventoryController) AdjustQuantity(ctx *gin.Context) {
	var req dto.AdjustQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid adjustment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	item, err := c.inventoryService.Adjust(ctx.Param("id"), req.Delta)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(item))
}
