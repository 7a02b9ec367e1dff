package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolapi/internal/app/models/dto"
	"github.com/yigit/schoolapi/internal/app/services"
	"github.com/yigit/schoolapi/internal/middleware"
	"github.com/yigit/schoolapi/internal/pkg/validation"
)

// FeeController handles fee-related operations
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{
		feeService: feeService,
	}
}

// ListFees handles GET /fees
func (c *FeeController) ListFees(ctx *gin.Context) {
	fees, err := c.feeService.ListFees(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewFeeListResponse(fees))
}

// CreateFee handles POST /fees
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.FeeRequest
	if err := validation.Bind(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	fee, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.feeService.CreateFee(ctx.Request.Context(), fee)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewFeeResponse(created))
}

// GetFee handles GET /fees/:id
func (c *FeeController) GetFee(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	fee, err := c.feeService.GetFee(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewFeeResponse(fee))
}

// UpdateFee handles PUT and PATCH /fees/:id. Both overwrite every field.
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	var req dto.FeeRequest
	if err := validation.Bind(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	fee, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.feeService.UpdateFee(ctx.Request.Context(), id, fee)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewFeeResponse(updated))
}

// DeleteFee handles DELETE /fees/:id
func (c *FeeController) DeleteFee(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.feeService.DeleteFee(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
