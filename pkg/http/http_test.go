package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestClientPost(t *testing.T) {
	t.Run("retries 5xx and resends body", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			if string(body) != `{"a":1}` {
				t.Errorf("body mismatch on attempt %d: got %s", calls.Load()+1, body)
			}
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 3, RetryWait: time.Millisecond})
		_, status, err := c.Post(context.Background(), srv.URL, map[string]int{"a": 1}, nil)
		if err != nil {
			t.Fatalf("Post() error = %v", err)
		}
		if status != http.StatusNoContent {
			t.Errorf("status mismatch: got %d, want %d", status, http.StatusNoContent)
		}
		if calls.Load() != 3 {
			t.Errorf("calls mismatch: got %d, want 3", calls.Load())
		}
	})

	t.Run("4xx is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 3, RetryWait: time.Millisecond})
		_, status, err := c.Get(context.Background(), srv.URL, map[string]string{"X-Test": "1"})
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if status != http.StatusBadRequest || calls.Load() != 1 {
			t.Errorf("got status %d after %d calls, want 400 after 1", status, calls.Load())
		}
	})
}
