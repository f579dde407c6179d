package gallery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func TestHTTPLoaderSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept"), "image/webp") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "image/webp")
		_, _ = w.Write([]byte("RIFF....WEBP"))
	}))
	t.Cleanup(server.Close)

	loader := NewHTTPLoader(server.Client(), LoaderConfig{})
	if err := loader.Load(context.Background(), server.URL+"/x.jpg?q=75&fm=webp"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestHTTPLoaderReportsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	err := NewHTTPLoader(server.Client(), LoaderConfig{}).Load(context.Background(), server.URL+"/missing.jpg")
	if err == nil || !strings.Contains(err.Error(), "status=404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestHTTPLoaderBreakerOpensAfterFailures(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	loader := NewHTTPLoader(server.Client(), LoaderConfig{MaxFailures: 2, OpenFor: time.Minute})
	for i := 0; i < 2; i++ {
		_ = loader.Load(context.Background(), server.URL+"/x.jpg")
	}
	if loader.State() != gobreaker.StateOpen {
		t.Fatalf("expected open breaker, got %s", loader.State())
	}

	err := loader.Load(context.Background(), server.URL+"/x.jpg")
	if err != gobreaker.ErrOpenState {
		t.Fatalf("expected ErrOpenState, got %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Fatalf("expected 2 upstream hits, got %d", got)
	}
}
