package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decision-critic/internal/config"
)

func TestNewOpenAIClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.OpenAIConfig
		wantErr bool
	}{
		{
			name:    "valid configuration",
			cfg:     config.OpenAIConfig{APIKey: "test-key"},
			wantErr: false,
		},
		{
			name:    "missing API key",
			cfg:     config.OpenAIConfig{},
			wantErr: true,
		},
		{
			name: "custom base URL",
			cfg:  config.OpenAIConfig{APIKey: "test-key", BaseURL: "https://example.test/v1/chat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewOpenAIClient(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestOpenAIClient_Complete(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		var gotReq chatRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"id": "chatcmpl-1",
				"choices": []map[string]interface{}{
					{"message": map[string]string{"role": "assistant", "content": "the reply"}},
				},
			})
		}))
		defer server.Close()

		client, err := NewOpenAIClient(config.OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})
		require.NoError(t, err)

		reply, err := client.Complete(context.Background(), "challenge this decision", 0.54)
		require.NoError(t, err)
		assert.Equal(t, "the reply", reply)
		assert.Equal(t, "challenge this decision", gotReq.Messages[0].Content)
		assert.InDelta(t, 0.54, gotReq.Temperature, 1e-9)
		assert.False(t, gotReq.Stream)
	})

	t.Run("API error payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"error": map[string]string{"type": "invalid_request_error", "message": "bad key"},
			})
		}))
		defer server.Close()

		client, err := NewOpenAIClient(config.OpenAIConfig{APIKey: "wrong", BaseURL: server.URL})
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), "prompt", 0.3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad key")
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "chatcmpl-2", "choices": []interface{}{}})
		}))
		defer server.Close()

		client, err := NewOpenAIClient(config.OpenAIConfig{APIKey: "test-key", BaseURL: server.URL})
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), "prompt", 0.3)
		assert.Error(t, err)
	})

	t.Run("server unreachable", func(t *testing.T) {
		client, err := NewOpenAIClient(config.OpenAIConfig{APIKey: "test-key", BaseURL: "http://127.0.0.1:1"})
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), "prompt", 0.3)
		assert.Error(t, err)
	})
}
