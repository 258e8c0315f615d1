package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dkaya/collegedb/internal/app/models/dto"
	"github.com/dkaya/collegedb/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthService struct {
	resp *dto.LoginResponse
	err  error
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.resp, s.err
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	router := gin.New()
	controller := NewAuthController(svc, zerolog.Nop())
	router.POST("/auth/login", controller.Login)
	return router
}

func TestLoginSuccess(t *testing.T) {
	firstName := "System"
	router := newAuthRouter(&stubAuthService{
		resp: &dto.LoginResponse{UserID: "admin001", UserType: "admin", FirstName: &firstName},
	})

	body := `{"userId":"admin001","password":"admin123","userType":"admin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.UserID != "admin001" || resp.UserType != "admin" {
		t.Errorf("response = %+v, want admin001/admin", resp)
	}
	if resp.FirstName == nil || *resp.FirstName != "System" {
		t.Errorf("first_name = %v, want System", resp.FirstName)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newAuthRouter(&stubAuthService{err: apperrors.ErrInvalidCredentials})

	body := `{"userId":"admin001","password":"wrong","userType":"admin"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestLoginBadPayload(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{"userId":"admin001"}`},
		{"invalid user type", `{"userId":"admin001","password":"x","userType":"teacher"}`},
		{"not json", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}
