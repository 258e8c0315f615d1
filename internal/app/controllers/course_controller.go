package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/services"
	"github.com/dkaya/collegedb/internal/middleware"
)

// CourseController handles course endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses lists all courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {array} models.Course "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if courses == nil {
		courses = []*models.Course{}
	}
	ctx.JSON(http.StatusOK, courses)
}

// CreateCourse creates a course
// @Summary Create course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.MessageResponse "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown department"
// @Failure 409 {object} dto.ErrorResponse "Course already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	if err := c.courseService.CreateCourse(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Course created successfully"))
}

// DeleteCourse deletes a course
// @Summary Delete course
// @Description Deleting a missing course succeeds
// @Tags courses
// @Produce json
// @Param course_id path string true "Course ID"
// @Success 200 {object} dto.MessageResponse "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Course is still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{course_id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("course_id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted successfully"))
}
