package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dietplanner/internal/auth"
	"dietplanner/internal/catalog"
	"dietplanner/internal/metabolic"
	"dietplanner/internal/middleware"
	"dietplanner/internal/plan"
	"dietplanner/internal/selector"

	"github.com/gin-gonic/gin"
)

var testSecret = []byte("router-test-secret")

func newTestRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)

	c := catalog.Builtin()
	service := plan.NewService(c, metabolic.DefaultGoalPolicy, selector.AlwaysVeg)

	return NewRouter(Deps{
		Plans:       plan.NewHandler(service),
		Catalog:     catalog.NewHandler(c),
		JWTSecret:   secret,
		CORSOrigins: []string{"http://localhost:3000"},
	})
}

func planBody() *bytes.Buffer {
	body, _ := json.Marshal(map[string]any{
		"age":             30,
		"sex":             "male",
		"weight":          70,
		"height":          175,
		"activity_level":  "moderate",
		"goal":            "maintain",
		"diet_preference": "veg",
		"daily_budget":    500,
	})
	return bytes.NewBuffer(body)
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatal("expected a request id header")
	}
}

func TestPlansOpenWithoutSecret(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/plans", planBody())
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestPlansRequireToken(t *testing.T) {
	r := newTestRouter(testSecret)

	req := httptest.NewRequest(http.MethodPost, "/plans", planBody())
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestScopes(t *testing.T) {
	r := newTestRouter(testSecret)

	planToken, err := auth.GenerateToken(testSecret, "web", auth.ScopePlan, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	readerToken, err := auth.GenerateToken(testSecret, "dashboard", auth.ScopeReader, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"plan scope creates plans", http.MethodPost, "/plans", planToken, http.StatusCreated},
		{"plan scope computes metrics", http.MethodPost, "/metrics", planToken, http.StatusOK},
		{"reader cannot create plans", http.MethodPost, "/plans", readerToken, http.StatusForbidden},
		{"reader lists catalog", http.MethodGet, "/catalog", readerToken, http.StatusOK},
		{"plan scope reads a slot", http.MethodGet, "/catalog/drink", planToken, http.StatusOK},
		{"unknown slot", http.MethodGet, "/catalog/brunch", readerToken, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.method == http.MethodPost {
				req = httptest.NewRequest(tt.method, tt.path, planBody())
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			req.Header.Set("Authorization", "Bearer "+tt.token)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("expected status %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodOptions, "/plans", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin, got %q", got)
	}
}
