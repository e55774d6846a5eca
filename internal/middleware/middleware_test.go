package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MuneelHaider/NeuroFusion-sub000/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "middleware-test-secret"

func testCredentialService() service.CredentialService {
	return service.NewCredentialService(nil, nil, &service.CredentialServiceConfig{
		JWTSecret: testSecret,
	})
}

func signTestToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    "acct-1",
		"role":  "Doctor",
		"email": "doc@example.com",
		"name":  "Dr. Example",
		"exp":   now.Add(ttl).Unix(),
		"iat":   now.Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func guardedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{RequireAuth(testCredentialService())}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRole))
	})
	r.GET("/protected", chain...)
	return r
}

func TestRequireAuth_NoToken(t *testing.T) {
	w := httptest.NewRecorder()
	r := guardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireAuth_CookieToken(t *testing.T) {
	w := httptest.NewRecorder()
	r := guardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: signTestToken(t, time.Hour)})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if w.Body.String() != "Doctor" {
		t.Errorf("Expected role Doctor in context, got %q", w.Body.String())
	}
}

func TestRequireAuth_BearerFallback(t *testing.T) {
	w := httptest.NewRecorder()
	r := guardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, time.Hour))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	w := httptest.NewRecorder()
	r := guardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: signTestToken(t, -time.Hour)})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d for expired token, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	w := httptest.NewRecorder()
	r := guardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "not-a-token"})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d for garbage token, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireRole_Denied(t *testing.T) {
	w := httptest.NewRecorder()
	r := guardedRouter(RequireRole("Admin"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: signTestToken(t, time.Hour)})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d for role mismatch, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireRole_CaseInsensitive(t *testing.T) {
	w := httptest.NewRecorder()
	r := guardedRouter(RequireRole("DOCTOR"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: signTestToken(t, time.Hour)})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d for case-insensitive role match, got %d", http.StatusOK, w.Code)
	}
}

func TestRequireAnyRole_MatchesSecond(t *testing.T) {
	w := httptest.NewRecorder()
	r := guardedRouter(RequireAnyRole("Admin", "Doctor"))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: signTestToken(t, time.Hour)})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestRequestID_GeneratesNew(t *testing.T) {
	w := httptest.NewRecorder()
	r := gin.New()

	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.ServeHTTP(w, req)

	headerID := w.Header().Get(RequestIDHeader)
	if headerID == "" {
		t.Error("Expected X-Request-ID header to be set")
	}
	if headerID != w.Body.String() {
		t.Errorf("Header ID (%s) should match body ID (%s)", headerID, w.Body.String())
	}
}

func TestRequestID_UsesExisting(t *testing.T) {
	existingID := "existing-request-id-123"

	w := httptest.NewRecorder()
	r := gin.New()

	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, existingID)
	r.ServeHTTP(w, req)

	if w.Body.String() != existingID {
		t.Errorf("Expected existing ID %s, got %s", existingID, w.Body.String())
	}
}

func TestCORS_Headers(t *testing.T) {
	w := httptest.NewRecorder()
	r := gin.New()

	r.Use(CORS())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected Access-Control-Allow-Origin header")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Expected Access-Control-Allow-Methods header")
	}
}

func TestCORS_Preflight(t *testing.T) {
	w := httptest.NewRecorder()
	r := gin.New()

	r.Use(CORS())
	r.OPTIONS("/test", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status %d for preflight, got %d", http.StatusNoContent, w.Code)
	}
}

func TestLoginRateLimiter_NilClientPassesThrough(t *testing.T) {
	w := httptest.NewRecorder()
	r := gin.New()

	r.Use(LoginRateLimiter(nil, DefaultLoginRateLimitConfig()))
	r.POST("/login", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d with no limiter backend, got %d", http.StatusOK, w.Code)
	}
}
