package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fresh-dairy/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://example.com", []string{"*"}, true)
	if got != "https://example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	generated := w2.Header().Get(requestIDHeader)
	if strings.TrimSpace(generated) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

func adminKeyTestRouter(access *service.AccessService) *gin.Engine {
	r := gin.New()
	r.GET("/orders", AdminKeyMiddleware(access), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func decodeStatusCode(t *testing.T, body []byte) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode
}

func TestAdminKeyMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := adminKeyTestRouter(service.NewAccessService("dairy-secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(AdminKeyHeader, "dairy-secret")
	r.ServeHTTP(w, req)
	if got := decodeStatusCode(t, w.Body.Bytes()); got != 0 {
		t.Fatalf("valid key status_code want 0 got %d", got)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req2.Header.Set(AdminKeyHeader, "wrong-secret")
	r.ServeHTTP(w2, req2)
	if got := decodeStatusCode(t, w2.Body.Bytes()); got != 401 {
		t.Fatalf("wrong key status_code want 401 got %d", got)
	}

	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.ServeHTTP(w3, req3)
	if got := decodeStatusCode(t, w3.Body.Bytes()); got != 401 {
		t.Fatalf("missing key status_code want 401 got %d", got)
	}
}

func TestAdminKeyMiddlewareRejectsWhenKeyUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := adminKeyTestRouter(service.NewAccessService(""))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set(AdminKeyHeader, "")
	r.ServeHTTP(w, req)
	if got := decodeStatusCode(t, w.Body.Bytes()); got != 401 {
		t.Fatalf("empty configured key status_code want 401 got %d", got)
	}
}

func signUserToken(t *testing.T, secret, subject string) string {
	t.Helper()
	claims := UserTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token failed: %v", err)
	}
	return token
}

func TestUserJWTAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/orders/my", UserJWTAuthMiddleware("user-secret"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(userIDKey)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/my", nil)
	req.Header.Set("Authorization", "Bearer "+signUserToken(t, "user-secret", "user-42"))
	r.ServeHTTP(w, req)
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["user_id"] != "user-42" {
		t.Fatalf("user_id want user-42 got %s", resp["user_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/orders/my", nil)
	req2.Header.Set("Authorization", "Bearer "+signUserToken(t, "other-secret", "user-42"))
	r.ServeHTTP(w2, req2)
	if got := decodeStatusCode(t, w2.Body.Bytes()); got != 401 {
		t.Fatalf("bad signature status_code want 401 got %d", got)
	}

	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/orders/my", nil)
	r.ServeHTTP(w3, req3)
	if got := decodeStatusCode(t, w3.Body.Bytes()); got != 401 {
		t.Fatalf("missing token status_code want 401 got %d", got)
	}
}

func TestOptionalUserJWTMiddlewareAllowsGuests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/orders", OptionalUserJWTMiddleware("user-secret"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(userIDKey)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("guest request should pass, status %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodPost, "/orders", nil)
	req2.Header.Set("Authorization", "Bearer "+signUserToken(t, "user-secret", "user-7"))
	r.ServeHTTP(w2, req2)
	var resp map[string]string
	if err := json.Unmarshal(w2.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["user_id"] != "user-7" {
		t.Fatalf("user_id want user-7 got %s", resp["user_id"])
	}
}
