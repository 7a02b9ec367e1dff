package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolapi/internal/app/models/dto"
	"github.com/yigit/schoolapi/internal/app/services"
	"github.com/yigit/schoolapi/internal/middleware"
	"github.com/yigit/schoolapi/internal/pkg/validation"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// ListEnrollments handles GET /enrollments
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.ListEnrollments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewEnrollmentListResponse(enrollments))
}

// CreateEnrollment handles POST /enrollments
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := validation.Bind(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	enrollment, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.enrollmentService.CreateEnrollment(ctx.Request.Context(), enrollment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewEnrollmentResponse(created))
}

// GetEnrollment handles GET /enrollments/:id
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollment(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewEnrollmentResponse(enrollment))
}

// UpdateEnrollment handles PATCH /enrollments/:id. The request replaces every field.
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	var req dto.EnrollmentRequest
	if err := validation.Bind(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	enrollment, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.enrollmentService.UpdateEnrollment(ctx.Request.Context(), id, enrollment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewEnrollmentResponse(updated))
}

// DeleteEnrollment handles DELETE /enrollments/:id
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
