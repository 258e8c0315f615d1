package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/services"
	"github.com/dkaya/collegedb/internal/middleware"
)

// EnrollmentController handles enrollment endpoints
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// GetStudentEnrollments lists a student's enrollments
// @Summary List student enrollments
// @Description Returns the student's enrollments joined with course name and credits. An unknown student yields an empty list.
// @Tags enrollments
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {array} models.Enrollment "Enrollments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{student_id} [get]
func (c *EnrollmentController) GetStudentEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetStudentEnrollments(ctx.Request.Context(), ctx.Param("student_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if enrollments == nil {
		enrollments = []*models.Enrollment{}
	}
	ctx.JSON(http.StatusOK, enrollments)
}

// CreateEnrollment enrolls a student in a course
// @Summary Create enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.MessageResponse "Enrollment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown student/course"
// @Failure 409 {object} dto.ErrorResponse "Enrollment already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	if err := c.enrollmentService.CreateEnrollment(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Enrollment created successfully"))
}

// DeleteEnrollment removes a student's enrollment in a course
// @Summary Delete enrollment
// @Description Deleting a missing enrollment succeeds
// @Tags enrollments
// @Produce json
// @Param student_id path string true "Student ID"
// @Param course_id path string true "Course ID"
// @Success 200 {object} dto.MessageResponse "Enrollment deleted successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{student_id}/{course_id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	err := c.enrollmentService.DeleteEnrollment(ctx.Request.Context(), ctx.Param("student_id"), ctx.Param("course_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Enrollment deleted successfully"))
}
