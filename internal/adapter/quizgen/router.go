package quizgen

import (
	"context"
	"fmt"
	"time"

	"mathdrill/internal/domain"

	"go.uber.org/zap"
)

// Router selects a provider client per request, parses the model output and
// guarantees that every failure leaves as a *domain.DomainError.
type Router struct {
	clients         map[domain.ProviderID]domain.ProviderClient
	defaultProvider domain.ProviderID
	logger          *zap.Logger
}

var _ domain.QuestionGenerator = (*Router)(nil)

// NewRouter creates a router over exactly the given clients
func NewRouter(defaultProvider domain.ProviderID, logger *zap.Logger, clients ...domain.ProviderClient) (*Router, error) {
	r := &Router{
		clients:         make(map[domain.ProviderID]domain.ProviderClient, len(clients)),
		defaultProvider: defaultProvider,
		logger:          logger,
	}
	for _, c := range clients {
		r.clients[c.ID()] = c
	}
	if _, ok := r.clients[defaultProvider]; !ok {
		return nil, fmt.Errorf("no client registered for default provider %q", defaultProvider)
	}

	if def := r.clients[defaultProvider]; !def.Configured() {
		logger.Warn("Default AI provider credential is not set",
			zap.String("provider", string(defaultProvider)),
			zap.String("credential", def.CredentialName()))
	}
	logger.Info("AI provider router initialized",
		zap.String("default_provider", string(defaultProvider)),
		zap.String("default_model", r.clients[defaultProvider].Model()))
	return r, nil
}

// DefaultProvider returns the provider used when a request names none
func (r *Router) DefaultProvider() domain.ProviderID {
	return r.defaultProvider
}

// Providers lists the registered providers in a fixed order
func (r *Router) Providers() []domain.ProviderStatus {
	order := []domain.ProviderID{domain.ProviderDeepSeek, domain.ProviderGemini}
	statuses := make([]domain.ProviderStatus, 0, len(r.clients))
	for _, id := range order {
		c, ok := r.clients[id]
		if !ok {
			continue
		}
		statuses = append(statuses, domain.ProviderStatus{
			ID:         id,
			Model:      c.Model(),
			Configured: c.Configured(),
			Default:    id == r.defaultProvider,
		})
	}
	return statuses
}

// Generate builds the prompt, calls the effective provider once and parses the result
func (r *Router) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedQA, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	providerID := req.Provider
	if providerID == "" {
		providerID = r.defaultProvider
	}

	client, ok := r.clients[providerID]
	if !ok {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unsupported AI provider: %s", providerID))
	}
	if !client.Configured() {
		r.logger.Error("AI provider credential is not set",
			zap.String("provider", string(providerID)),
			zap.String("credential", client.CredentialName()))
		return nil, domain.NewAIConfigurationError(providerID, client.CredentialName())
	}

	prompt := BuildPrompt(req.TopicContent, req.ExampleContent)
	r.logger.Info("Generating question",
		zap.String("provider", string(providerID)),
		zap.Int("topic_content_length", len(req.TopicContent)),
		zap.Int("example_content_length", len(req.ExampleContent)))

	start := time.Now()
	raw, err := client.Generate(ctx, prompt)
	if err != nil {
		normalized := classifyError(providerID, err)
		r.logger.Error("Question generation failed",
			zap.String("provider", string(providerID)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(normalized))
		return nil, normalized
	}

	qa := ParseQA(raw)
	r.logger.Info("Question generated",
		zap.String("provider", string(providerID)),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("question_length", len(qa.Question)),
		zap.Int("answer_length", len(qa.Answer)))
	return &qa, nil
}
