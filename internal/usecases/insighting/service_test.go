package insighting

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-metrics-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/growth-metrics-api/infrastructure/integrator/openai/openaiclient/mocks"
	"github.com/vfg2006/growth-metrics-api/internal/config"
	"github.com/vfg2006/growth-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func chatResponse(content string) openaiclient.ChatCompletionResponse {
	var resp openaiclient.ChatCompletionResponse
	_ = json.Unmarshal([]byte(`{"id":"chatcmpl-1","choices":[{"index":0,"message":{"role":"assistant","content":`+
		quote(content)+`},"finish_reason":"stop"}]}`), &resp)
	return resp
}

func quote(s string) string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(&domain.Retention{RetentionRate: 85.0, AtRisk: 10}, "u1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "Analyze this business data for user u1 and give actionable, personalized insights: "))
	assert.Contains(t, prompt, `{"retention_rate":85,"at_risk":10}`)
	assert.True(t, strings.HasSuffix(prompt, ". Focus on churn, acquisition, revenue, and recommendations for SMBs."))
}

func TestNewService_Padroes(t *testing.T) {
	s := NewService(config.OpenAI{}, nil)

	assert.Equal(t, DefaultModel, s.model)
	assert.Equal(t, DefaultMaxTokens, s.maxTokens)
}

func TestService_Summarize(t *testing.T) {
	data := &domain.Retention{RetentionRate: 85.0, AtRisk: 10}

	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, result domain.InsightResult)
	}{
		{
			name: "Sucesso - retorna insight e os dados analisados",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req openaiclient.ChatCompletionRequest) (openaiclient.ChatCompletionResponse, error) {
						assert.Equal(t, "gpt-4o-mini", req.Model)
						assert.Equal(t, 150, req.MaxTokens)
						require.Len(t, req.Messages, 2)
						assert.Equal(t, openaiclient.RoleSystem, req.Messages[0].Role)
						assert.Equal(t, "You are a helpful AI analyst for SMB growth.", req.Messages[0].Content)
						assert.Equal(t, openaiclient.RoleUser, req.Messages[1].Role)
						assert.Contains(t, req.Messages[1].Content, "for user u1")
						return chatResponse("Focus on the 10 at-risk customers."), nil
					})
			},
			validate: func(t *testing.T, result domain.InsightResult) {
				assert.False(t, result.Failed())
				assert.Equal(t, "Focus on the 10 at-risk customers.", result.Insight)
				assert.Equal(t, data, result.Data)
			},
		},
		{
			name: "Erro de transporte - vira InsightResult com a mensagem",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					Return(openaiclient.ChatCompletionResponse{}, errors.New("openai: requisição falhou com status 401: Incorrect API key provided"))
			},
			validate: func(t *testing.T, result domain.InsightResult) {
				assert.True(t, result.Failed())
				assert.Equal(t, "openai: requisição falhou com status 401: Incorrect API key provided", result.Error)
				assert.Empty(t, result.Insight)
				assert.Nil(t, result.Data)
			},
		},
		{
			name: "Resposta sem choices",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					CreateChatCompletion(gomock.Any(), gomock.Any()).
					Return(openaiclient.ChatCompletionResponse{}, nil)
			},
			validate: func(t *testing.T, result domain.InsightResult) {
				assert.True(t, result.Failed())
				assert.Equal(t, openaiclient.ErrNoChoices.Error(), result.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			service := NewService(config.OpenAI{Model: "gpt-4o-mini", MaxTokens: 150}, client)
			result := service.Summarize(context.Background(), data, "u1")

			tt.validate(t, result)
		})
	}
}

func TestService_Summarize_DadosNaoSerializaveis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).Times(0)

	result := NewService(config.OpenAI{}, client).Summarize(context.Background(), make(chan int), "u1")

	assert.True(t, result.Failed())
}
