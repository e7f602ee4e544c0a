package copygen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pinforge/pinforge/internal/domain"
	"github.com/pinforge/pinforge/internal/logger"
)

// Generator turns a Product into Pinterest MarketingCopy via the
// language model. One request, no retry.
type Generator struct {
	llm    LLMClient
	logger logger.Logger
}

func NewGenerator(llm LLMClient, log logger.Logger) (*Generator, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Generator{llm: llm, logger: log}, nil
}

// Generate asks the model for copy and post-processes the response.
func (g *Generator) Generate(ctx context.Context, product *domain.Product) (*domain.MarketingCopy, error) {
	if product == nil || product.Title == "" {
		return nil, errors.New("product data is missing or invalid")
	}

	g.logger.Info("generating pinterest copy",
		logger.String("product", runeTruncate(product.Title, 50)))

	raw, err := g.llm.Complete(ctx, systemPrompt, BuildPrompt(product))
	if err != nil {
		return nil, err
	}

	content, err := ParseResponse(raw, product)
	if err != nil {
		return nil, fmt.Errorf("content generation failed: %w", err)
	}
	return content, nil
}

// ParseResponse decodes the model output into MarketingCopy. Models
// routinely wrap JSON in markdown code fences despite instructions, so
// fences are stripped before decoding. Missing fields get documented
// defaults; pinScore is clamped to [60,100].
func ParseResponse(raw string, product *domain.Product) (*domain.MarketingCopy, error) {
	cleaned := stripCodeFences(raw)

	var content domain.MarketingCopy
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}

	if content.Title == "" {
		content.Title = truncate(product.Title, 100)
	}
	if content.AltText == "" {
		content.AltText = truncate(product.Title, 125)
	}
	if content.Hashtags == nil {
		content.Hashtags = []string{}
	}
	if content.SEOKeywords == nil {
		content.SEOKeywords = []string{}
	}
	if content.CallToAction == "" {
		content.CallToAction = domain.DefaultCallToAction
	}
	if content.BestTimeToPost == "" {
		content.BestTimeToPost = domain.DefaultBestTimeToPost
	}
	content.PinScore = domain.ClampPinScore(content.PinScore)

	return &content, nil
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// runeTruncate cuts on a rune boundary so multi-byte titles never put
// invalid UTF-8 into log output.
func runeTruncate(s string, max int) string {
	if r := []rune(s); len(r) > max {
		return string(r[:max])
	}
	return s
}
