package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestOpenAIClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewOpenAIClient(srv.Client(), "test-key")
	client.baseURL = srv.URL
	return client
}

func TestOpenAIEmbed(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("path = %q; want /embeddings", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload["model"] != defaultEmbeddingModel {
			t.Errorf("model = %v; want %s", payload["model"], defaultEmbeddingModel)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"embedding": []float64{0.1, 0.2, 0.3}},
			},
		})
	})

	vec, err := client.Embed(context.Background(), "fix a leaking pipe")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vec) != 3 || vec[0] != 0.1 {
		t.Errorf("vector = %v", vec)
	}
}

func TestOpenAIEmbedEmptyInput(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty input must not reach the API")
	})

	vec, err := client.Embed(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if vec != nil {
		t.Errorf("vector = %v; want nil", vec)
	}
}

func TestOpenAIComplete(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q; want /chat/completions", r.URL.Path)
		}
		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != defaultChatModel {
			t.Errorf("model = %q; want default %q", req.Model, defaultChatModel)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Cleaned up description."}},
			},
		})
	})

	resp, err := client.Complete(context.Background(), ChatCompletionRequest{
		Messages: []ChatMessage{{Role: "user", Content: "clean this up"}},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != "Cleaned up description." {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestOpenAIErrorStatus(t *testing.T) {
	client := newTestOpenAIClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limit"}`, http.StatusTooManyRequests)
	})

	if _, err := client.Embed(context.Background(), "anything"); err == nil {
		t.Fatal("expected an error for a non-2xx response")
	}
}

func TestOpenAIEmptyAPIKey(t *testing.T) {
	client := NewOpenAIClient(nil, "")
	if _, err := client.Embed(context.Background(), "anything"); err == nil {
		t.Fatal("expected an error when the api key is empty")
	}
}
