package happify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGet_DecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/moods" {
			t.Errorf("Expected /moods, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("timeRange") != "week" {
			t.Errorf("Expected timeRange=week, got %s", r.URL.Query().Get("timeRange"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"mood":"happy"},{"mood":"sad"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var out []struct {
		Mood string `json:"mood"`
	}
	err := client.Get(context.Background(), "/moods", map[string]string{"timeRange": "week"}, &out)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(out) != 2 || out[0].Mood != "happy" {
		t.Errorf("Unexpected decode result: %+v", out)
	}
}

func TestGet_SendsSessionCookie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			t.Error("Expected session cookie on request")
		} else if cookie.Value != "tok-123" {
			t.Errorf("Expected session tok-123, got %s", cookie.Value)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := WithSession(context.Background(), "tok-123")
	if err := client.Get(ctx, "/user/streak", nil, nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}

func TestGet_NoCookieWithoutSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(SessionCookieName); err == nil {
			t.Error("Expected no session cookie on anonymous request")
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.Get(context.Background(), "/moods", nil, nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}

func TestGet_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Get(context.Background(), "/moods", nil, nil)
	if err == nil {
		t.Fatal("Expected error for 500 response")
	}
}

func TestGet_MalformedJSONIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var out map[string]any
	if err := client.Get(context.Background(), "/moods", nil, &out); err == nil {
		t.Fatal("Expected decode error for malformed payload")
	}
}

func TestGet_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := client.Get(ctx, "/moods", nil, nil); err == nil {
		t.Fatal("Expected error for cancelled context")
	}
}
