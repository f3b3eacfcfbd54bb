package quizgen

import (
	"fmt"

	"mathdrill/internal/config"
	"mathdrill/internal/domain"

	"go.uber.org/zap"
)

// NewRouterFromConfig builds both provider clients over one proxy-aware HTTP
// client and routes to the configured default.
func NewRouterFromConfig(cfg *config.Config, logger *zap.Logger) (*Router, error) {
	httpClient, err := NewHTTPClient(cfg.AI.ProxyURL, cfg.AI.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy configuration: %w", err)
	}
	if cfg.AI.ProxyURL != "" {
		logger.Info("Using proxy for AI requests", zap.String("proxy_url", cfg.AI.ProxyURL))
	}

	deepseekCfg, err := cfg.ProviderConfig(domain.ProviderDeepSeek)
	if err != nil {
		return nil, err
	}
	deepseek, err := NewDeepSeekClient(deepseekCfg, httpClient, logger)
	if err != nil {
		return nil, err
	}

	geminiCfg, err := cfg.ProviderConfig(domain.ProviderGemini)
	if err != nil {
		return nil, err
	}
	gemini := NewGeminiClient(geminiCfg, httpClient, logger)

	return NewRouter(cfg.DefaultProvider(), logger, deepseek, gemini)
}
