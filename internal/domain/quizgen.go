package domain

import (
	"context"
	"fmt"
	"strings"
)

// ProviderID identifies an external LLM API
type ProviderID string

const (
	ProviderDeepSeek ProviderID = "deepseek"
	ProviderGemini   ProviderID = "gemini"
)

// NoAnswerPlaceholder is stored when no answer could be parsed from model output
const NoAnswerPlaceholder = "暂无答案"

// ParseProviderID converts user or config input into a ProviderID.
// An empty string yields an empty ID, meaning "use the default".
func ParseProviderID(s string) (ProviderID, error) {
	switch id := ProviderID(strings.ToLower(strings.TrimSpace(s))); id {
	case "", ProviderDeepSeek, ProviderGemini:
		return id, nil
	default:
		return "", fmt.Errorf("unsupported AI provider: %q", s)
	}
}

// GenerationRequest is the input of a single question generation
type GenerationRequest struct {
	TopicContent   string
	ExampleContent string
	// Provider overrides the configured default when non-empty
	Provider ProviderID
}

// Validate validates the generation request
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.TopicContent) == "" {
		return ValidationErrors{NewMissingFieldError("topicContent")}
	}
	return nil
}

// GeneratedQA is the parsed model output.
// Question is never empty and Answer falls back to NoAnswerPlaceholder.
type GeneratedQA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ProviderClient turns a prompt into raw model text using one specific API.
// Errors returned by Generate are *DomainError values with an AI error code.
type ProviderClient interface {
	ID() ProviderID
	// Configured reports whether the provider credential is present
	Configured() bool
	// CredentialName names the setting that holds the credential
	CredentialName() string
	Model() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderStatus describes a provider for clients choosing an override
type ProviderStatus struct {
	ID         ProviderID `json:"id"`
	Model      string     `json:"model"`
	Configured bool       `json:"configured"`
	Default    bool       `json:"default"`
}

// QuestionGenerator produces a question/answer pair for a topic
type QuestionGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (*GeneratedQA, error)
	DefaultProvider() ProviderID
	Providers() []ProviderStatus
}
