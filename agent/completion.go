package agent

import (
	"context"
	"fmt"

	sdkanthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/hupe1980/agenthub/core"
	"github.com/hupe1980/agenthub/model"
	"github.com/hupe1980/agenthub/model/anthropic"
	"github.com/hupe1980/agenthub/model/openai"
)

// CompletionName is the registry name of the Completion agent.
const CompletionName = "CompletionAgent"

// ModelProvider builds a model from the step configuration.
type ModelProvider func(cfg core.Config) (model.Model, error)

// DefaultProviders returns the providers known to the Completion agent:
// "openai", "anthropic" and "mock". Credentials come from the SDKs' standard
// environment variables unless api_key is configured.
func DefaultProviders() map[string]ModelProvider {
	return map[string]ModelProvider{
		"openai":    newOpenAIModel,
		"anthropic": newAnthropicModel,
		"mock": func(cfg core.Config) (model.Model, error) {
			return model.NewMockModel(cfg.String("model", "mock")), nil
		},
	}
}

func newOpenAIModel(cfg core.Config) (model.Model, error) {
	temperature, err := cfg.Float("temperature", 0.7)
	if err != nil {
		return nil, err
	}
	maxTokens, err := cfg.Int("max_tokens", 4096)
	if err != nil {
		return nil, err
	}

	return openai.NewModel(func(o *openai.Options) {
		o.Model = cfg.String("model", o.Model)
		o.Temperature = temperature
		o.MaxCompletionTokens = maxTokens
		o.APIKey = cfg.String("api_key", "")
		o.BaseURL = cfg.String("base_url", "")
	}), nil
}

func newAnthropicModel(cfg core.Config) (model.Model, error) {
	temperature, err := cfg.Float("temperature", 0.7)
	if err != nil {
		return nil, err
	}
	maxTokens, err := cfg.Int("max_tokens", 4096)
	if err != nil {
		return nil, err
	}

	return anthropic.NewModel(func(o *anthropic.Options) {
		o.Model = sdkanthropic.Model(cfg.String("model", string(o.Model)))
		o.Temperature = temperature
		o.MaxTokens = maxTokens
		o.APIKey = cfg.String("api_key", "")
		o.BaseURL = cfg.String("base_url", "")
	}), nil
}

// Completion sends one payload field to a language model and stores the reply.
//
//	provider: openai            # openai | anthropic | mock
//	model: gpt-4o-mini          # optional, provider default otherwise
//	instructions: "Summarize"   # optional system prompt
//	input_key: input            # optional
//	output_key: output          # optional
//	temperature: 0.7            # optional
//	max_tokens: 4096            # optional
//
// When the provider reports token usage it is stored under "usage".
type Completion struct {
	BaseAgent
	model        model.Model
	instructions string
	inputKey     string
	outputKey    string
}

// CompletionFactory returns a factory resolving the configured provider from
// providers.
func CompletionFactory(providers map[string]ModelProvider) core.Factory {
	return func(cfg core.Config) (core.Agent, error) {
		a, err := NewCompletion(cfg, providers)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

// NewCompletion builds a Completion agent.
func NewCompletion(cfg core.Config, providers map[string]ModelProvider) (*Completion, error) {
	base := NewBaseAgent(cfg)
	c := base.Config()

	name := c.String("provider", "openai")
	provider, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("completion agent: unknown provider %q", name)
	}

	m, err := provider(c)
	if err != nil {
		return nil, fmt.Errorf("completion agent: provider %s: %w", name, err)
	}

	return &Completion{
		BaseAgent:    base,
		model:        m,
		instructions: c.String("instructions", ""),
		inputKey:     c.String("input_key", "input"),
		outputKey:    c.String("output_key", "output"),
	}, nil
}

// Model returns the backing model.
func (c *Completion) Model() model.Model { return c.model }

// Process implements core.Agent.
func (c *Completion) Process(ctx context.Context, payload core.Payload) (core.Payload, error) {
	text := payload.String(c.inputKey, "")
	if text == "" {
		return nil, fmt.Errorf("completion agent: payload field %q is empty", c.inputKey)
	}

	resp, err := c.model.Generate(ctx, model.UserRequest(c.instructions, text))
	if err != nil {
		return nil, fmt.Errorf("completion agent: %w", err)
	}

	result := payload.Clone()
	result[c.outputKey] = resp.Text
	if resp.Usage != nil {
		result["usage"] = map[string]any{
			"prompt_tokens":     resp.Usage.PromptTokens,
			"completion_tokens": resp.Usage.CompletionTokens,
			"total_tokens":      resp.Usage.TotalTokens,
		}
	}
	return result, nil
}
