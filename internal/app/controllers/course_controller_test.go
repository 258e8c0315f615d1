package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/dkaya/collegedb/internal/app/models"
	"github.com/dkaya/collegedb/internal/app/models/dto"
)

type stubCourseService struct {
	courses []*models.Course
	err     error

	createdCredits int
}

func (s *stubCourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses, s.err
}

func (s *stubCourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) error {
	s.createdCredits = *req.Credits
	return s.err
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, courseID string) error {
	return s.err
}

func newCourseRouter(svc *stubCourseService) *gin.Engine {
	router := gin.New()
	controller := NewCourseController(svc)
	router.GET("/courses", controller.GetAllCourses)
	router.POST("/courses", controller.CreateCourse)
	router.DELETE("/courses/:course_id", controller.DeleteCourse)
	return router
}

func TestCreateCourse(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router := newCourseRouter(&stubCourseService{})

		body := `{"course_id":"C101","course_name":"Data Structures","credits":4,"dept_id":"D01"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
		}
	})

	t.Run("zero credits is a valid course", func(t *testing.T) {
		svc := &stubCourseService{createdCredits: -1}
		router := newCourseRouter(svc)

		body := `{"course_id":"C900","course_name":"Orientation","credits":0,"dept_id":"D01"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
		}
		if svc.createdCredits != 0 {
			t.Errorf("credits passed to service = %d, want 0", svc.createdCredits)
		}
	})

	t.Run("absent credits is rejected", func(t *testing.T) {
		router := newCourseRouter(&stubCourseService{})

		body := `{"course_id":"C101","course_name":"Data Structures","dept_id":"D01"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestGetAllCoursesEmptyList(t *testing.T) {
	router := newCourseRouter(&stubCourseService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("empty listing body = %s, want []", got)
	}
}
