package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/services"
	"github.com/dkaya/collegedb/internal/middleware"
)

// DepartmentController handles department endpoints
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// GetAllDepartments lists all departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {array} models.Department "Departments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAllDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if departments == nil {
		departments = []*models.Department{}
	}
	ctx.JSON(http.StatusOK, departments)
}

// CreateDepartment creates a department
// @Summary Create department
// @Tags departments
// @Accept json
// @Produce json
// @Param request body dto.CreateDepartmentRequest true "Department information"
// @Success 201 {object} dto.MessageResponse "Department created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Department already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	if err := c.departmentService.CreateDepartment(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Department created successfully"))
}

// DeleteDepartment deletes a department
// @Summary Delete department
// @Description Deleting a missing department succeeds
// @Tags departments
// @Produce json
// @Param dept_id path string true "Department ID"
// @Success 200 {object} dto.MessageResponse "Department deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Department is still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/{dept_id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	if err := c.departmentService.DeleteDepartment(ctx.Request.Context(), ctx.Param("dept_id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Department deleted successfully"))
}
