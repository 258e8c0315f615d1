package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/services"
	"github.com/dkaya/collegedb/internal/middleware"
)

// GradeController handles grade endpoints
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// GetStudentGrades lists a student's grades
// @Summary List student grades
// @Description Returns the student's grades joined with course name and credits. An unknown student yields an empty list.
// @Tags grades
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {array} models.Grade "Grades retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{student_id} [get]
func (c *GradeController) GetStudentGrades(ctx *gin.Context) {
	grades, err := c.gradeService.GetStudentGrades(ctx.Request.Context(), ctx.Param("student_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if grades == nil {
		grades = []*models.Grade{}
	}
	ctx.JSON(http.StatusOK, grades)
}

// CreateGrade records a grade
// @Summary Create grade
// @Tags grades
// @Accept json
// @Produce json
// @Param request body dto.CreateGradeRequest true "Grade information"
// @Success 201 {object} dto.MessageResponse "Grade recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown student/course"
// @Failure 409 {object} dto.ErrorResponse "Grade already recorded for this semester"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	if err := c.gradeService.CreateGrade(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Grade recorded successfully"))
}

// UpdateGrade overwrites the marks and letter of an existing grade
// @Summary Update grade
// @Tags grades
// @Accept json
// @Produce json
// @Param student_id path string true "Student ID"
// @Param course_id path string true "Course ID"
// @Param semester_no path int true "Semester number"
// @Param request body dto.UpdateGradeRequest true "New marks and grade letter"
// @Success 200 {object} dto.MessageResponse "Grade updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or semester number"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{student_id}/{course_id}/{semester_no} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	semesterNo, err := strconv.Atoi(ctx.Param("semester_no"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Semester number must be an integer")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	err = c.gradeService.UpdateGrade(ctx.Request.Context(), ctx.Param("student_id"), ctx.Param("course_id"), semesterNo, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Grade updated successfully"))
}
