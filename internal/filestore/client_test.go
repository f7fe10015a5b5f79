package filestore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSignedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/files/sign" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header: %q", got)
		}
		var req signRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Path != "docs/a.pdf" {
			t.Errorf("unexpected path: %q", req.Path)
		}
		if req.TTLSeconds != 300 {
			t.Errorf("unexpected ttl: %d", req.TTLSeconds)
		}
		json.NewEncoder(w).Encode(signResponse{URL: "https://cdn.example.com/a.pdf?sig=xyz"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", 5*time.Minute)
	url, err := c.SignedURL(context.Background(), "docs/a.pdf")
	if err != nil {
		t.Fatalf("signed url: %v", err)
	}
	if url != "https://cdn.example.com/a.pdf?sig=xyz" {
		t.Errorf("unexpected url: %q", url)
	}
}

func TestSignedURL_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", time.Minute)
	_, err := c.SignedURL(context.Background(), "docs/a.pdf")
	if err == nil {
		t.Fatal("expected error for 500")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("expected status in error, got %v", err)
	}
}

func TestSignedURL_EmptyURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", time.Minute)
	_, err := c.SignedURL(context.Background(), "docs/a.pdf")
	if err == nil {
		t.Fatal("expected error for empty url")
	}
}
