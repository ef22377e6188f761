package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"matching-srv/config"
	"matching-srv/internal/model"
	"matching-srv/pkg/encrypter"
	"matching-srv/pkg/jwt"
	"matching-srv/pkg/locale"
	"matching-srv/pkg/log"
	"matching-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const testEncKey = "0123456789abcdef0123456789abcdef"

func newTestMiddleware(t *testing.T) (Middleware, jwt.IManager, encrypter.Encrypter) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mgr, err := jwt.New(jwt.Config{SecretKey: strings.Repeat("s", 32), Issuer: "mein-identity", TTL: time.Hour})
	if err != nil {
		t.Fatalf("jwt.New: %v", err)
	}
	enc, err := encrypter.New(testEncKey)
	if err != nil {
		t.Fatalf("encrypter.New: %v", err)
	}
	hash, err := enc.HashSecret("campaign-secret")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}

	cfg := &config.Config{
		Cookie:         config.CookieConfig{Name: "mein_auth_token"},
		InternalConfig: config.InternalConfig{ServiceKeys: map[string]string{"campaign-service": hash}},
		CORS:           config.CORSConfig{AllowedOrigins: []string{"https://app.mein.io"}},
	}
	return New(log.NewNop(), mgr, cfg, enc), mgr, enc
}

func TestAuth(t *testing.T) {
	mw, mgr, _ := newTestMiddleware(t)
	token, err := mgr.CreateToken(scope.Payload{UserID: "u-1", Role: model.RoleBrand})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	r := gin.New()
	r.GET("/me", mw.Auth(), func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID+"|"+sc.Role)
	})

	tests := []struct {
		name     string
		setup    func(req *http.Request)
		wantCode int
		wantBody string
	}{
		{"bearer header", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK, "u-1|brand"},
		{"cookie", func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "mein_auth_token", Value: token}) }, http.StatusOK, "u-1|brand"},
		{"missing", func(req *http.Request) {}, http.StatusUnauthorized, ""},
		{"garbage", func(req *http.Request) { req.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.wantCode {
				t.Fatalf("status mismatch: got %d, want %d", w.Code, tc.wantCode)
			}
			if tc.wantBody != "" && w.Body.String() != tc.wantBody {
				t.Errorf("body mismatch: got %q, want %q", w.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestServiceAuth(t *testing.T) {
	mw, _, enc := newTestMiddleware(t)

	r := gin.New()
	r.POST("/internal", mw.ServiceAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, ServiceName(c))
	})

	seal := func(s string) string {
		out, err := enc.Encrypt(s)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		return out
	}

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{"valid", seal("campaign-service:campaign-secret"), http.StatusOK},
		{"wrong key", seal("campaign-service:other"), http.StatusUnauthorized},
		{"unknown service", seal("billing:campaign-secret"), http.StatusUnauthorized},
		{"no separator", seal("campaign-service"), http.StatusUnauthorized},
		{"not encrypted", "campaign-service:campaign-secret", http.StatusUnauthorized},
		{"missing", "", http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/internal", nil)
			if tc.header != "" {
				req.Header.Set(serviceKeyHeader, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.wantCode {
				t.Errorf("status mismatch: got %d, want %d", w.Code, tc.wantCode)
			}
			if tc.wantCode == http.StatusOK && w.Body.String() != "campaign-service" {
				t.Errorf("service name mismatch: got %q", w.Body.String())
			}
		})
	}
}

func TestLocale(t *testing.T) {
	mw, _, _ := newTestMiddleware(t)
	r := gin.New()
	r.Use(mw.Locale())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, locale.GetLang(c.Request.Context()))
	})

	tests := []struct {
		name   string
		header map[string]string
		want   string
	}{
		{"lang header", map[string]string{"lang": "ko"}, locale.KO},
		{"accept language", map[string]string{"Accept-Language": "ar-AE,ar;q=0.9"}, locale.AR},
		{"lang wins", map[string]string{"lang": "en", "Accept-Language": "ko"}, locale.EN},
		{"default", nil, locale.DefaultLang},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Body.String() != tc.want {
				t.Errorf("lang mismatch: got %q, want %q", w.Body.String(), tc.want)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	mw, _, _ := newTestMiddleware(t)
	r := gin.New()
	r.Use(mw.CORS())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.mein.io")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status mismatch: got %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.mein.io" {
		t.Errorf("allow origin mismatch: got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected allow origin for unknown origin: %q", got)
	}
}
