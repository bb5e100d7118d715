package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/navarrastar/coming-soon/pkg/config"
	"github.com/navarrastar/coming-soon/pkg/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type acceptingService struct{ calls int }

func (s *acceptingService) SubmitLead(ctx context.Context, lead models.Lead) error {
	s.calls++
	return nil
}

func (s *acceptingService) Models() []string { return []string{"FREE"} }

func submitFrom(router http.Handler, remoteAddr, forwardedFor string) int {
	body := `{"name":"Ann","email":"ann@x.com","phone":"123","model":"FREE"}`
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRouterIgnoresSpoofedForwardedFor(t *testing.T) {
	cfg := &config.Config{SubmitRatePerMinute: 1, SubmitBurst: 1}
	svc := &acceptingService{}
	router, err := newRouter(cfg, svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("newRouter() error = %v", err)
	}

	allowed := 0
	for i := 0; i < 20; i++ {
		code := submitFrom(router, "9.9.9.9:4000", fmt.Sprintf("10.0.0.%d", i+1))
		switch code {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
		default:
			t.Fatalf("request %d status = %d", i, code)
		}
	}
	if allowed != 1 || svc.calls != 1 {
		t.Fatalf("allowed = %d, calls = %d, want 1", allowed, svc.calls)
	}
}

func TestRouterHonoursTrustedProxy(t *testing.T) {
	cfg := &config.Config{
		SubmitRatePerMinute: 1,
		SubmitBurst:         1,
		TrustedProxies:      []string{"9.9.9.9"},
	}
	router, err := newRouter(cfg, &acceptingService{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("newRouter() error = %v", err)
	}

	if code := submitFrom(router, "9.9.9.9:4000", "203.0.113.1"); code != http.StatusOK {
		t.Fatalf("first client status = %d, want 200", code)
	}
	if code := submitFrom(router, "9.9.9.9:4000", "203.0.113.2"); code != http.StatusOK {
		t.Fatalf("second client status = %d, want 200", code)
	}
	if code := submitFrom(router, "9.9.9.9:4000", "203.0.113.1"); code != http.StatusTooManyRequests {
		t.Fatalf("repeat client status = %d, want 429", code)
	}
}

func TestRouterRejectsBadTrustedProxy(t *testing.T) {
	cfg := &config.Config{TrustedProxies: []string{"not-an-ip"}}
	if _, err := newRouter(cfg, &acceptingService{}, slog.New(slog.NewTextHandler(io.Discard, nil))); err == nil {
		t.Fatal("newRouter() error = nil, want invalid proxy error")
	}
}
