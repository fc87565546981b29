package insighting

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/growth-metrics-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/growth-metrics-api/internal/config"
	"github.com/vfg2006/growth-metrics-api/internal/domain"
	"github.com/vfg2006/growth-metrics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultModel     = "gpt-4o-mini"
	DefaultMaxTokens = 150

	systemInstruction = "You are a helpful AI analyst for SMB growth."
	promptTemplate    = "Analyze this business data for user %s and give actionable, personalized insights: %s. Focus on churn, acquisition, revenue, and recommendations for SMBs."
)

type Service struct {
	client    openaiclient.Client
	model     string
	maxTokens int
}

func NewService(cfg config.OpenAI, client openaiclient.Client) *Service {
	s := &Service{
		client:    client,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}

	if s.model == "" {
		s.model = DefaultModel
	}
	if s.maxTokens <= 0 {
		s.maxTokens = DefaultMaxTokens
	}

	return s
}

// BuildPrompt monta a mensagem do usuário com o payload serializado em JSON
func BuildPrompt(data any, userID string) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar dados para o prompt: %w", err)
	}

	return fmt.Sprintf(promptTemplate, userID, payload), nil
}

func (s *Service) Summarize(ctx context.Context, data any, userID string) domain.InsightResult {
	logger := log.ForContext(ctx).WithField("user_id", userID)

	prompt, err := BuildPrompt(data, userID)
	if err != nil {
		logger.WithError(err).Error("insights: erro ao montar prompt")
		return domain.InsightFailed(err.Error())
	}

	resp, err := s.client.CreateChatCompletion(ctx, openaiclient.ChatCompletionRequest{
		Model: s.model,
		Messages: []openaiclient.Message{
			{Role: openaiclient.RoleSystem, Content: systemInstruction},
			{Role: openaiclient.RoleUser, Content: prompt},
		},
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		logger.WithError(err).Warn("insights: falha na chamada ao LLM")
		return domain.InsightFailed(err.Error())
	}

	insight, err := resp.FirstContent()
	if err != nil {
		logger.WithError(err).Warn("insights: resposta do LLM sem conteúdo")
		return domain.InsightFailed(err.Error())
	}

	logger.Debug("insights: insight gerado com sucesso")
	return domain.InsightSucceeded(insight, data)
}
