package domain

// InsightResult é a resposta do gerador de insights: Insight e Data em caso
// de sucesso, apenas Error em caso de falha.
type InsightResult struct {
	Insight string `json:"insight,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Failed indica se o resultado representa uma falha
func (r InsightResult) Failed() bool {
	return r.Error != ""
}

func InsightSucceeded(insight string, data any) InsightResult {
	return InsightResult{Insight: insight, Data: data}
}

func InsightFailed(message string) InsightResult {
	return InsightResult{Error: message}
}
