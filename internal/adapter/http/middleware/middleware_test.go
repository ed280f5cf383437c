package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"controle_financeiro/internal/infrastructure/stats"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	called := false
	r.OPTIONS("/api/v1/conta/inserir", func(c *gin.Context) { called = true })
	r.GET("/api/v1/conta/listar", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/conta/inserir", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", w.Body.String())
		}
		if called {
			t.Fatalf("handler must not run on preflight")
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET,PUT,POST,DELETE,OPTIONS" {
			t.Fatalf("unexpected allow methods %q", got)
		}
	})

	t.Run("headers on regular responses", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/conta/listar", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("unexpected allow origin %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization, Content-Length, X-Requested-With" {
			t.Fatalf("unexpected allow headers %q", got)
		}
	})
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	r := gin.New()
	r.Use(RequestID(), Logger())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = getRequestID(c)
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside")
		c.Status(http.StatusNoContent)
	})

	t.Run("generates id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

		id := w.Header().Get(HeaderRequestID)
		if id == "" || id != seen {
			t.Fatalf("expected generated id in header and context, got %q / %q", id, seen)
		}
		if !bytes.Contains(buf.Bytes(), []byte(`"request_id":"`+id+`"`)) {
			t.Fatalf("expected request id in logs: %s", buf.String())
		}
		if !bytes.Contains(buf.Bytes(), []byte(`"status":204`)) {
			t.Fatalf("expected access log line: %s", buf.String())
		}
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
			t.Fatalf("expected caller id, got %q", got)
		}
	})
}

type fakeLimiter struct {
	allow bool
	keys  []string
}

func (f *fakeLimiter) Allow(key string) (bool, time.Duration) {
	f.keys = append(f.keys, key)
	return f.allow, 2 * time.Second
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects with 429", func(t *testing.T) {
		l := &fakeLimiter{}
		r := gin.New()
		r.Use(RateLimit(l, false))
		r.GET("/x", func(c *gin.Context) { t.Fatalf("handler must not run") })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		if got := w.Header().Get("Retry-After"); got != "2" {
			t.Fatalf("expected Retry-After 2, got %q", got)
		}
		if len(l.keys) != 1 || l.keys[0] != "10.0.0.1" {
			t.Fatalf("unexpected keys %v", l.keys)
		}
	})

	t.Run("trusts first forwarded address", func(t *testing.T) {
		l := &fakeLimiter{allow: true}
		r := gin.New()
		r.Use(RateLimit(l, true))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if l.keys[0] != "203.0.113.9" {
			t.Fatalf("expected forwarded ip, got %q", l.keys[0])
		}
	})
}

type recordingStats struct {
	mu     sync.Mutex
	events []stats.Event
	err    error
}

func (s *recordingStats) Record(_ context.Context, ev stats.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestRequestStats(t *testing.T) {
	rec := &recordingStats{err: errors.New("redis down")}
	r := gin.New()
	r.Use(RequestStats(rec))
	r.POST("/api/v1/conta/excluir", func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"message": "Conta não encontrada"}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/conta/excluir", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("a failing recorder must not change the response, got %d", w.Code)
	}
	if len(rec.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Method != http.MethodPost || ev.Route != "/api/v1/conta/excluir" || ev.Status != http.StatusNotFound {
		t.Fatalf("unexpected event %+v", ev)
	}
}
