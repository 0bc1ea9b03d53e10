package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Do_GET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/v2/transcript/abc" {
			t.Errorf("expected /v2/transcript/abc, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "completed"})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/v2/transcript/abc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body["status"] != "completed" {
		t.Errorf("expected status completed, got %q", body["status"])
	}
}

func TestClient_Do_JSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload["audio_url"] != "https://host/clip.mp3" {
			t.Errorf("unexpected payload: %v", payload)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/v2/transcript",
		Body:   map[string]any{"audio_url": "https://host/clip.mp3"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_APIKeyAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("authorization"); got != "secret-key" {
			t.Errorf("expected api key header, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := New(Config{
		BaseURL: srv.URL,
		Auth:    APIKeyAuthHeader("secret-key", "authorization"),
	})
	if _, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("chars_per_caption"); got != "256" {
			t.Errorf("expected chars_per_caption=256, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: srv.URL})
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/v2/transcript/abc/srt",
		Query:  map[string]string{"chars_per_caption": "256"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_ErrorClassification(t *testing.T) {
	tests := []struct {
		status   int
		wantCode ErrorCode
	}{
		{http.StatusUnauthorized, ErrCodeAuth},
		{http.StatusForbidden, ErrCodeAuth},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusBadRequest, ErrCodeValidation},
		{http.StatusInternalServerError, ErrCodeServer},
	}
	for _, tc := range tests {
		t.Run(tc.wantCode.String(), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c, _ := New(Config{BaseURL: srv.URL})
			resp, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
			if err == nil {
				t.Fatal("expected error")
			}
			httpErr, ok := err.(*Error)
			if !ok {
				t.Fatalf("expected *Error, got %T", err)
			}
			if httpErr.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, httpErr.Code)
			}
			if resp == nil || resp.StatusCode != tc.status {
				t.Errorf("expected response with status %d alongside the error", tc.status)
			}
		})
	}
}

func TestClient_Do_FullURLOverridesBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := New(Config{BaseURL: "http://unreachable.invalid"})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: srv.URL + "/direct"})
	if err != nil {
		t.Fatalf("expected full URL to bypass base, got %v", err)
	}
}

func TestClient_Do_ConnectionError(t *testing.T) {
	c, _ := New(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/"})
	if err == nil {
		t.Fatal("expected connection error")
	}
	if !IsRetryable(err) {
		t.Error("connection errors should be retryable")
	}
}
