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

type stubGradeService struct {
	grades []*models.Grade
	err    error

	createdMarks    float64
	updatedMarks    float64
	updatedSemester int
}

func (s *stubGradeService) GetStudentGrades(ctx context.Context, studentID string) ([]*models.Grade, error) {
	return s.grades, s.err
}

func (s *stubGradeService) CreateGrade(ctx context.Context, req *dto.CreateGradeRequest) error {
	s.createdMarks = *req.Marks
	return s.err
}

func (s *stubGradeService) UpdateGrade(ctx context.Context, studentID, courseID string, semesterNo int, req *dto.UpdateGradeRequest) error {
	s.updatedMarks = *req.Marks
	s.updatedSemester = semesterNo
	return s.err
}

func newGradeRouter(svc *stubGradeService) *gin.Engine {
	router := gin.New()
	controller := NewGradeController(svc)
	router.GET("/grades/:student_id", controller.GetStudentGrades)
	router.POST("/grades", controller.CreateGrade)
	router.PUT("/grades/:student_id/:course_id/:semester_no", controller.UpdateGrade)
	return router
}

func TestGetStudentGradesEmptyList(t *testing.T) {
	router := newGradeRouter(&stubGradeService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/grades/S001", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("empty listing body = %s, want []", got)
	}
}

func TestGetStudentGradesSerializesZeroCredits(t *testing.T) {
	router := newGradeRouter(&stubGradeService{
		grades: []*models.Grade{
			{StudentID: "S001", CourseID: "C900", SemesterNo: 1, Marks: 95, GradeLetter: "A", CourseName: "Orientation", Credits: 0},
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/grades/S001", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"credits":0`) {
		t.Errorf("zero-credit course dropped from listing: %s", w.Body.String())
	}
}

func TestCreateGrade(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router := newGradeRouter(&stubGradeService{})

		body := `{"student_id":"S001","course_id":"C101","semester_no":1,"marks":87.5,"grade_letter":"A"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/grades", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
		}
	})

	t.Run("zero marks is a valid grade", func(t *testing.T) {
		svc := &stubGradeService{createdMarks: -1}
		router := newGradeRouter(svc)

		body := `{"student_id":"S001","course_id":"C101","semester_no":1,"marks":0,"grade_letter":"F"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/grades", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
		}
		if svc.createdMarks != 0 {
			t.Errorf("marks passed to service = %v, want 0", svc.createdMarks)
		}
	})

	t.Run("absent marks is rejected", func(t *testing.T) {
		router := newGradeRouter(&stubGradeService{})

		body := `{"student_id":"S001","course_id":"C101","semester_no":1,"grade_letter":"F"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/grades", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestUpdateGrade(t *testing.T) {
	t.Run("valid semester number", func(t *testing.T) {
		svc := &stubGradeService{}
		router := newGradeRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/grades/S001/C101/2", strings.NewReader(`{"marks":91.0,"grade_letter":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
		}
		if svc.updatedSemester != 2 {
			t.Errorf("semester passed to service = %d, want 2", svc.updatedSemester)
		}
	})

	t.Run("zero marks is accepted", func(t *testing.T) {
		svc := &stubGradeService{updatedMarks: -1}
		router := newGradeRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/grades/S001/C101/2", strings.NewReader(`{"marks":0,"grade_letter":"F"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
		}
		if svc.updatedMarks != 0 {
			t.Errorf("marks passed to service = %v, want 0", svc.updatedMarks)
		}
	})

	t.Run("non-numeric semester number", func(t *testing.T) {
		router := newGradeRouter(&stubGradeService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/grades/S001/C101/two", strings.NewReader(`{"marks":91.0,"grade_letter":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
