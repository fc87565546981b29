package openaiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-metrics-api/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.OpenAI{
		BaseURL: server.URL + "/v1",
		APIKey:  "sk-test",
		Timeout: 5 * time.Second,
	})
}

func TestOpenAIClient_CreateChatCompletion(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{
			"model": "gpt-4o-mini",
			"messages": [
				{"role": "system", "content": "sys"},
				{"role": "user", "content": "hello"}
			],
			"max_tokens": 150
		}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-123",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Reduce CAC."}, "finish_reason": "stop"}]
		}`))
	})

	resp, err := client.CreateChatCompletion(context.Background(), ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []Message{
			{Role: RoleSystem, Content: "sys"},
			{Role: RoleUser, Content: "hello"},
		},
		MaxTokens: 150,
	})
	require.NoError(t, err)

	content, err := resp.FirstContent()
	require.NoError(t, err)
	assert.Equal(t, "chatcmpl-123", resp.ID)
	assert.Equal(t, "Reduce CAC.", content)
}

func TestOpenAIClient_CreateChatCompletion_Erros(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "Erro da API com mensagem",
			status:  http.StatusUnauthorized,
			body:    `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error", "code": "invalid_api_key"}}`,
			wantErr: "openai: requisição falhou com status 401: Incorrect API key provided",
		},
		{
			name:    "Erro sem corpo JSON",
			status:  http.StatusBadGateway,
			body:    `upstream error`,
			wantErr: "openai: requisição falhou com status: 502 Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.CreateChatCompletion(context.Background(), ChatCompletionRequest{Model: "gpt-4o-mini"})

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestOpenAIClient_CreateChatCompletion_ServidorIndisponivel(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewClient(config.OpenAI{BaseURL: server.URL})

	_, err := client.CreateChatCompletion(context.Background(), ChatCompletionRequest{Model: "gpt-4o-mini"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai: erro ao executar a requisição")
}

func TestChatCompletionResponse_FirstContent_SemChoices(t *testing.T) {
	_, err := ChatCompletionResponse{}.FirstContent()

	assert.ErrorIs(t, err, ErrNoChoices)
}
