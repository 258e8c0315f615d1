package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkaya/collegedb/internal/app/controllers"
	"github.com/dkaya/collegedb/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	apiTitle string,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	gradeController *controllers.GradeController,
	collegeIDController *controllers.CollegeIDController,
	addressController *controllers.AddressController,
) {
	// Banner and health endpoints
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.BannerResponse{
			Message: apiTitle + " API",
			Docs:    "/swagger/index.html",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	students := router.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/:student_id", studentController.GetStudentByID)
		students.PUT("/:student_id", studentController.UpdateStudent)
		students.DELETE("/:student_id", studentController.DeleteStudent)
		students.PUT("/:student_id/photo", studentController.UploadPhoto)
		students.GET("/:student_id/photo", studentController.GetPhoto)
	}

	departments := router.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.POST("", departmentController.CreateDepartment)
		departments.DELETE("/:dept_id", departmentController.DeleteDepartment)
	}

	courses := router.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.POST("", courseController.CreateCourse)
		courses.DELETE("/:course_id", courseController.DeleteCourse)
	}

	enrollments := router.Group("/enrollments")
	{
		enrollments.GET("/:student_id", enrollmentController.GetStudentEnrollments)
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.DELETE("/:student_id/:course_id", enrollmentController.DeleteEnrollment)
	}

	grades := router.Group("/grades")
	{
		grades.GET("/:student_id", gradeController.GetStudentGrades)
		grades.POST("", gradeController.CreateGrade)
		grades.PUT("/:student_id/:course_id/:semester_no", gradeController.UpdateGrade)
	}

	collegeIDs := router.Group("/college-ids")
	{
		collegeIDs.GET("", collegeIDController.GetAllCollegeIDs)
		collegeIDs.POST("", collegeIDController.CreateCollegeID)
		collegeIDs.GET("/:college_id_number", collegeIDController.GetCollegeIDByNumber)
		collegeIDs.DELETE("/:college_id_number", collegeIDController.DeleteCollegeID)
	}

	addresses := router.Group("/addresses")
	{
		addresses.POST("", addressController.CreateAddress)
		addresses.GET("/:college_id_number", addressController.GetAddressByCollegeID)
		addresses.DELETE("/:college_id_number", addressController.DeleteAddress)
	}

	// Swagger routes are set up in bootstrap.go already
}
