package sessions

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/futebolao/futebolao/internal/usecase"
)

func TestClient_VerifyAccessToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/sessions/introspect" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read request body: %v", err)
		}
		var req introspectRequest
		if err := sonic.Unmarshal(body, &req); err != nil {
			t.Errorf("request body is not valid JSON: %v (body=%q)", err, body)
		}
		if req.Token != "good-token" {
			t.Errorf("unexpected token in request body: %q", req.Token)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"active": true, "user_id": "u-123", "name": "Ana", "role": "admin"}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:        server.URL,
		IntrospectPath: "/v1/sessions/introspect",
	})

	principal, err := client.VerifyAccessToken(context.Background(), "good-token")
	if err != nil {
		t.Fatalf("VerifyAccessToken error: %v", err)
	}
	if principal.UserID != "u-123" || principal.Name != "Ana" {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	if !principal.IsAdmin() {
		t.Fatal("expected admin principal")
	}
}

func TestClient_VerifyAccessToken_Inactive(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"active": false}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, IntrospectPath: "/introspect"})

	_, err := client.VerifyAccessToken(context.Background(), "stale-token")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestClient_VerifyAccessToken_Denied(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, IntrospectPath: "/introspect"})

	_, err := client.VerifyAccessToken(context.Background(), "bad-token")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestClient_VerifyAccessToken_EmptyToken(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: "http://localhost:1", IntrospectPath: "/introspect"})

	_, err := client.VerifyAccessToken(context.Background(), "   ")
	if !errors.Is(err, usecase.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base string
		path string
		want string
	}{
		{"https://auth.internal/", "/v1/introspect", "https://auth.internal/v1/introspect"},
		{"https://auth.internal", "v1/introspect", "https://auth.internal/v1/introspect"},
		{"https://auth.internal", "", "https://auth.internal"},
		{"https://auth.internal", "https://other.host/check", "https://other.host/check"},
	}
	for _, tc := range cases {
		if got := buildURL(tc.base, tc.path); got != tc.want {
			t.Fatalf("buildURL(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
		}
	}
}
