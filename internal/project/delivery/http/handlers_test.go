package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"collab-dashboard/internal/project"
	"collab-dashboard/pkg/apigateway"
	"collab-dashboard/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUseCase struct {
	createErr error
	listErr   error
}

func (m mockUseCase) List(ctx context.Context) (project.ListOutput, error) {
	if m.listErr != nil {
		return project.ListOutput{}, m.listErr
	}
	return project.ListOutput{Projects: []project.Project{{ID: 1, ShortName: "GEST"}}}, nil
}

func (m mockUseCase) Detail(ctx context.Context, id int64) (project.DetailOutput, error) {
	if id != 1 {
		return project.DetailOutput{}, project.ErrProjectNotFound
	}
	return project.DetailOutput{Project: project.Project{ID: 1, ShortName: "GEST"}}, nil
}

func (m mockUseCase) Create(ctx context.Context, input project.CreateInput) (project.CreateOutput, error) {
	if m.createErr != nil {
		return project.CreateOutput{}, m.createErr
	}
	return project.CreateOutput{Project: project.Project{ID: 5, ShortName: input.ShortName}}, nil
}

func (m mockUseCase) ListGroups(ctx context.Context) ([]project.Group, error) {
	return []project.Group{{ID: "g1", Name: "Research"}}, nil
}

func newRouter(uc project.UseCase) *gin.Engine {
	h := New(log.NewNop(), func(c *gin.Context) (project.UseCase, bool) { return uc, uc != nil })
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/projects"), r.Group("/api/v1/groups"), h)
	return r
}

func TestHandlers(t *testing.T) {
	tests := []struct {
		name     string
		uc       project.UseCase
		method   string
		path     string
		body     string
		wantCode int
		wantBody string
	}{
		{"list", mockUseCase{}, http.MethodGet, "/api/v1/projects", "", http.StatusOK, `"label":"GEST"`},
		{"list remote failure", mockUseCase{listErr: &apigateway.APIError{StatusCode: 500}}, http.MethodGet, "/api/v1/projects", "", http.StatusInternalServerError, ""},
		{"detail", mockUseCase{}, http.MethodGet, "/api/v1/projects/1", "", http.StatusOK, `"short_name":"GEST"`},
		{"detail not found", mockUseCase{}, http.MethodGet, "/api/v1/projects/2", "", http.StatusNotFound, "projet introuvable"},
		{"detail bad id", mockUseCase{}, http.MethodGet, "/api/v1/projects/abc", "", http.StatusBadRequest, ""},
		{"create", mockUseCase{}, http.MethodPost, "/api/v1/projects", `{"short_name":"NEW","group_id":"g1"}`, http.StatusOK, `"id":5`},
		{"create invalid", mockUseCase{createErr: project.ErrGroupRequired}, http.MethodPost, "/api/v1/projects", `{"short_name":"NEW"}`, http.StatusBadRequest, "groupe"},
		{"create anonymous", mockUseCase{createErr: project.ErrNotAuthenticated}, http.MethodPost, "/api/v1/projects", `{"short_name":"NEW","group_id":"g1"}`, http.StatusUnauthorized, ""},
		{"groups", mockUseCase{}, http.MethodGet, "/api/v1/groups", "", http.StatusOK, `"name":"Research"`},
		{"no session", nil, http.MethodGet, "/api/v1/projects", "", http.StatusInternalServerError, ""},
		{"unexpected error", mockUseCase{listErr: errors.New("dial")}, http.MethodGet, "/api/v1/projects", "", http.StatusInternalServerError, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouter(tc.uc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d: %s", tc.wantCode, w.Code, w.Body.String())
			}
			if tc.wantBody != "" && !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Fatalf("expected body to contain %q, got %s", tc.wantBody, w.Body.String())
			}
		})
	}
}
