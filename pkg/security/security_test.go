package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func corsRequest(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORS_OriginPolicyHotUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	policy := NewOriginPolicy([]string{"https://old.test"})
	router := gin.New()
	router.Use(CORS(policy))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := corsRequest(router, "https://old.test")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://old.test" {
		t.Errorf("白名单内的 Origin 应被放行，实际=%q", got)
	}

	w = corsRequest(router, "https://new.test")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("白名单外的 Origin 不应放行，实际=%q", got)
	}

	// 热更新白名单后，同一个中间件实例应立即生效
	policy.Update([]string{"https://new.test"})

	w = corsRequest(router, "https://new.test")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://new.test" {
		t.Errorf("更新后新 Origin 应被放行，实际=%q", got)
	}

	w = corsRequest(router, "https://old.test")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("更新后旧 Origin 不应再放行，实际=%q", got)
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)

	policy := NewOriginPolicy([]string{"https://a.test"})
	router := gin.New()
	router.Use(CORS(policy))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://a.test")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("预检请求期望204，实际=%d", w.Code)
	}
}
