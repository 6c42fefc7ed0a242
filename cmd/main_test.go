package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-contacts/internal/config"
	"github.com/sbilibin2017/gw-contacts/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

// --- Fakes ---
type fakeLimiter struct {
	allow bool
	keys  []string
}

func (f *fakeLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	f.keys = append(f.keys, key)
	return f.allow, window, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func testRouter(limiter *fakeLimiter, pinger fakePinger, opts ...func(*routerDeps)) http.Handler {
	d := routerDeps{
		limiter: limiter,
		limits: config.RateLimit{
			AuthLimit: 20, AuthWindow: time.Minute,
			ContactsLimit: 5, ContactsWindow: time.Minute,
			UsersLimit: 1, UsersWindow: 20 * time.Second,
		},
		tokens:    jwt.New(jwt.WithSecretKey("test")),
		health:    pinger,
		swaggerAt: "http://localhost:8080/swagger/doc.json",
	}
	for _, opt := range opts {
		opt(&d)
	}
	return newRouter(d)
}

func TestNewRouter_Routes(t *testing.T) {
	r := testRouter(&fakeLimiter{allow: true}, fakePinger{})

	var got []string
	err := chi.Walk(r.(chi.Routes), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(got)

	for _, want := range []string{
		"GET /api/healthchecker",
		"POST /api/auth/signup",
		"POST /api/auth/login",
		"GET /api/auth/refresh_token",
		"GET /api/auth/confirmed_email/{token}",
		"POST /api/auth/request_email",
		"GET /api/contacts/",
		"POST /api/contacts/",
		"GET /api/contacts/search",
		"GET /api/contacts/birthday/next_week",
		"GET /api/contacts/id/{contact_id}",
		"PUT /api/contacts/id/{contact_id}",
		"DELETE /api/contacts/id/{contact_id}",
		"GET /api/contacts/first_name/{first_name}",
		"GET /api/contacts/last_name/{last_name}",
		"GET /api/contacts/email/{email}",
		"GET /api/user/me",
		"PATCH /api/user/avatar",
		"GET /swagger/*",
	} {
		assert.Contains(t, got, want)
	}

	avatarRoutes := 0
	for _, route := range got {
		if route == "PATCH /api/user/avatar" {
			avatarRoutes++
		}
	}
	assert.Equal(t, 1, avatarRoutes)
}

func TestNewRouter_Healthchecker(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		rr := httptest.NewRecorder()
		testRouter(&fakeLimiter{allow: true}, fakePinger{}).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/healthchecker", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})

	t.Run("db down", func(t *testing.T) {
		rr := httptest.NewRecorder()
		testRouter(&fakeLimiter{allow: true}, fakePinger{err: errors.New("down")}).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/healthchecker", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestNewRouter_ProtectedRoutesRequireToken(t *testing.T) {
	limiter := &fakeLimiter{allow: true}
	r := testRouter(limiter, fakePinger{})

	for _, target := range []string{"/api/contacts", "/api/contacts/id/1", "/api/user/me"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code, target)
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"), target)
	}
	assert.Empty(t, limiter.keys)
}

func TestNewRouter_AuthRateLimitedByIP(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		wantKey    string
	}{
		{name: "forwarded headers ignored by default", wantKey: "auth:ip:192.0.2.1"},
		{name: "trusted proxy supplies client address", trustProxy: true, wantKey: "auth:ip:203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := &fakeLimiter{allow: false}
			r := testRouter(limiter, fakePinger{}, func(d *routerDeps) { d.trustProxy = tt.trustProxy })

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			req.Header.Set("X-Real-IP", "203.0.113.9")
			req.Header.Set("X-Forwarded-For", "203.0.113.9")
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusTooManyRequests, rr.Code)
			assert.Equal(t, "60", rr.Header().Get("Retry-After"))
			assert.Equal(t, []string{tt.wantKey}, limiter.keys)
		})
	}
}

func TestNewRouter_Metrics(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter(&fakeLimiter{allow: true}, fakePinger{}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "http_requests_in_flight")
}
