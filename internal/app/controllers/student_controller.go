package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/app/services"
	"github.com/dkaya/collegedb/internal/middleware"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetAllStudents lists all students
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {array} models.Student "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if students == nil {
		students = []*models.Student{}
	}
	ctx.JSON(http.StatusOK, students)
}

// GetStudentByID retrieves a student by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} models.Student "Student retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), ctx.Param("student_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent creates a student with its college ID and login credentials
// @Summary Create student
// @Description Creates the identity card, the student row and the credential row as one unit
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.CreateStudentResponse "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or constraint violation"
// @Failure 409 {object} dto.ErrorResponse "Student ID already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	collegeID, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateStudentResponse{
		Message:   "Student created successfully",
		CollegeID: collegeID,
	})
}

// UpdateStudent applies a partial update to a student
// @Summary Update student
// @Description Updates only the supplied non-empty fields among first_name, last_name, email, phone
// @Tags students
// @Accept json
// @Produce json
// @Param student_id path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.MessageResponse "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "No fields to update"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	if err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("student_id"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student updated successfully"))
}

// DeleteStudent deletes a student and all dependent records
// @Summary Delete student
// @Description Removes the student and its login, grades, enrollments, photo, address and college ID in one unit. Deleting a missing student succeeds.
// @Tags students
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} dto.MessageResponse "Student deleted successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("student_id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted successfully"))
}

// UploadPhoto stores a student's photo
// @Summary Upload student photo
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Param student_id path string true "Student ID"
// @Param photo formData file true "Photo file"
// @Success 200 {object} models.Photo "Photo stored successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing photo file"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id}/photo [put]
func (c *StudentController) UploadPhoto(ctx *gin.Context) {
	file, err := ctx.FormFile("photo")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Photo file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	photo, err := c.studentService.UploadPhoto(ctx.Request.Context(), ctx.Param("student_id"), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, photo)
}

// GetPhoto retrieves a student's photo record
// @Summary Get student photo
// @Tags students
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} models.Photo "Photo retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{student_id}/photo [get]
func (c *StudentController) GetPhoto(ctx *gin.Context) {
	photo, err := c.studentService.GetPhoto(ctx.Request.Context(), ctx.Param("student_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, photo)
}
