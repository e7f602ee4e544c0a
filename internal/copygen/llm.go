package copygen

import "context"

// LLMClient abstracts the language model so the generator can be
// tested with a mock.
type LLMClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// LLMSettings carries the provider configuration.
type LLMSettings struct {
	Model   string
	APIKey  string
	BaseURL string
}

type unconfiguredLLM struct{}

func (unconfiguredLLM) Complete(context.Context, string, string) (string, error) {
	return "", ErrInvalidToken
}

// Unconfigured is the client used when no API key is set: the server
// still starts, generation requests fail with a clear message.
func Unconfigured() LLMClient {
	return unconfiguredLLM{}
}
