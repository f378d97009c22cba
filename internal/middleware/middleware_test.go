package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/office-scheduler/internal/config"
	"github.com/BruksfildServices01/office-scheduler/internal/domain/access"
	"github.com/BruksfildServices01/office-scheduler/internal/testfixtures"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	cfg := &config.Config{JWTSecret: testfixtures.JWTSecret}

	secured := r.Group("/", AuthMiddleware(cfg))
	secured.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, ActorFrom(c))
	})
	secured.GET("/staff", RequireScheduler(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func do(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ResolvesActor(t *testing.T) {
	w := do(newRouter(), "/whoami", testfixtures.BearerToken(t, 42, 1, "scheduler"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body)
	}

	var actor access.Actor
	if err := json.Unmarshal(w.Body.Bytes(), &actor); err != nil {
		t.Fatal(err)
	}
	if actor.UserID != 42 || actor.TenantID != 1 || actor.Role != access.RoleScheduler {
		t.Fatalf("actor = %+v", actor)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	r := newRouter()
	cases := map[string]string{
		"missing":      "",
		"not bearer":   "Basic abc",
		"garbage":      "Bearer not-a-jwt",
		"unknown role": testfixtures.BearerToken(t, 42, 1, "owner"),
		"no tenant":    testfixtures.BearerToken(t, 42, 0, "provider"),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			if w := do(r, "/whoami", header); w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d", w.Code)
			}
		})
	}
}

func TestRequireScheduler(t *testing.T) {
	r := newRouter()
	if w := do(r, "/staff", testfixtures.BearerToken(t, 42, 1, "provider")); w.Code != http.StatusForbidden {
		t.Fatalf("provider status = %d", w.Code)
	}
	if w := do(r, "/staff", testfixtures.BearerToken(t, 7, 1, "admin")); w.Code != http.StatusNoContent {
		t.Fatalf("admin status = %d", w.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "https://app.example" {
		t.Fatalf("preflight = %d %v", w.Code, w.Header())
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("unlisted origin was allowed")
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get(HeaderRequestID) != "req-123" {
		t.Fatalf("request id header = %q", w.Header().Get(HeaderRequestID))
	}
	if !strings.Contains(buf.String(), `"request_id":"req-123"`) || !strings.Contains(buf.String(), `"status":200`) {
		t.Fatalf("log = %s", buf.String())
	}
}
