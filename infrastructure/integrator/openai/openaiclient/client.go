package openaiclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/growth-metrics-api/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

type Client interface {
	CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error)
}

// OpenAIClient fala com qualquer API compatível com /chat/completions da OpenAI
type OpenAIClient struct {
	httpClient *http.Client
	config     config.OpenAI
}

func NewClient(cfg config.OpenAI) Client {
	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
	}
}
