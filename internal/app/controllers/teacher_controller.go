package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolapi/internal/app/models/dto"
	"github.com/yigit/schoolapi/internal/app/services"
	"github.com/yigit/schoolapi/internal/middleware"
	"github.com/yigit/schoolapi/internal/pkg/validation"
)

// TeacherController handles teacher-related operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// ListTeachers handles GET /teachers
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.ListTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTeacherListResponse(teachers))
}

// CreateTeacher handles POST /teachers
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.TeacherRequest
	if err := validation.Bind(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	teacher, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.teacherService.CreateTeacher(ctx.Request.Context(), teacher)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewTeacherResponse(created))
}

// GetTeacher handles GET /teachers/:id
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	teacher, err := c.teacherService.GetTeacher(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTeacherResponse(teacher))
}

// UpdateTeacher handles PUT and PATCH /teachers/:id. Both overwrite every field.
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	var req dto.TeacherRequest
	if err := validation.Bind(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	teacher, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.teacherService.UpdateTeacher(ctx.Request.Context(), id, teacher)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewTeacherResponse(updated))
}

// DeleteTeacher handles DELETE /teachers/:id
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
