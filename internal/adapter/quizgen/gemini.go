package quizgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mathdrill/internal/config"
	"mathdrill/internal/domain"

	"go.uber.org/zap"
)

const (
	geminiTemperature     = 0.7
	geminiTopK            = 40
	geminiTopP            = 0.95
	geminiMaxOutputTokens = 8192

	finishReasonMaxTokens = "MAX_TOKENS"

	// cap on the upstream body kept for diagnostics
	diagnosticBodyLimit = 512
)

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts,omitempty"`
	// Some responses carry the text directly on the content object
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiCandidate struct {
	Content      *geminiContent `json:"content"`
	FinishReason string         `json:"finishReason"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// textExtractor pulls text out of a candidate content, returning "" when absent
type textExtractor func(c *geminiContent) string

// extractors are tried in order until one yields non-empty text
var extractors = []textExtractor{
	func(c *geminiContent) string {
		if len(c.Parts) > 0 {
			return c.Parts[0].Text
		}
		return ""
	},
	func(c *geminiContent) string {
		return c.Text
	},
	func(c *geminiContent) string {
		for _, p := range c.Parts {
			if strings.TrimSpace(p.Text) != "" {
				return p.Text
			}
		}
		return ""
	},
}

// GeminiClient calls the Gemini generateContent REST endpoint
type GeminiClient struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	model          string
	timeout        time.Duration
	credentialName string
	logger         *zap.Logger
}

var _ domain.ProviderClient = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini client using the shared outbound http client
func NewGeminiClient(cfg config.ProviderConfig, httpClient *http.Client, logger *zap.Logger) *GeminiClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GeminiClient{
		httpClient:     httpClient,
		apiKey:         cfg.APIKey,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		model:          cfg.Model,
		timeout:        cfg.Timeout,
		credentialName: cfg.CredentialName,
		logger:         logger,
	}
}

func (c *GeminiClient) ID() domain.ProviderID  { return domain.ProviderGemini }
func (c *GeminiClient) Configured() bool       { return c.apiKey != "" }
func (c *GeminiClient) CredentialName() string { return c.credentialName }
func (c *GeminiClient) Model() string          { return c.model }

func (c *GeminiClient) endpoint() string {
	return fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
}

// Generate posts the prompt and extracts the first usable candidate text.
// A MAX_TOKENS finish reason is logged; only missing text is fatal.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", domain.NewAIConfigurationError(c.ID(), c.credentialName)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     geminiTemperature,
			TopK:            geminiTopK,
			TopP:            geminiTopP,
			MaxOutputTokens: geminiMaxOutputTokens,
		},
	})
	if err != nil {
		return "", domain.NewInternalError("failed to encode gemini request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", domain.NewInternalError("failed to build gemini request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("Calling Gemini API",
		zap.String("model", c.model),
		zap.Int("prompt_length", len(prompt)))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Gemini API call failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", classifyError(c.ID(), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read Gemini response", zap.Error(err))
		return "", classifyError(c.ID(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := truncate(string(raw), diagnosticBodyLimit)
		c.logger.Error("Gemini API returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", snippet))
		return "", domain.NewAIUpstreamTransportError(c.ID(), fmt.Errorf("gemini returned status code %d", resp.StatusCode)).
			WithContext("status", resp.StatusCode).
			WithContext("body", snippet)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		c.logger.Error("Failed to decode Gemini response",
			zap.String("body", truncate(string(raw), diagnosticBodyLimit)),
			zap.Error(err))
		return "", domain.NewAIUpstreamResponseError(c.ID(), "AI返回数据格式错误", err)
	}

	text, finishReason := extractText(parsed)
	if finishReason == finishReasonMaxTokens {
		c.logger.Warn("Gemini response was truncated at the output token limit",
			zap.Int("max_output_tokens", geminiMaxOutputTokens))
	}
	if strings.TrimSpace(text) == "" {
		c.logger.Error("Gemini API returned empty content",
			zap.String("finish_reason", finishReason),
			zap.String("body", truncate(string(raw), diagnosticBodyLimit)))
		return "", domain.NewAIUpstreamResponseError(c.ID(), "AI返回内容为空", nil).
			WithContext("finish_reason", finishReason)
	}

	c.logger.Info("Gemini API call succeeded",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("content_length", len(text)),
		zap.String("finish_reason", finishReason))
	return text, nil
}

func extractText(resp geminiResponse) (string, string) {
	if len(resp.Candidates) == 0 {
		return "", ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", candidate.FinishReason
	}
	for _, extract := range extractors {
		if text := extract(candidate.Content); strings.TrimSpace(text) != "" {
			return text, candidate.FinishReason
		}
	}
	return "", candidate.FinishReason
}
