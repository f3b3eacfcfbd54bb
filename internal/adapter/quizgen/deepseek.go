package quizgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mathdrill/internal/config"
	"mathdrill/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

const deepSeekTemperature = 0.7

// DeepSeekClient calls the OpenAI-compatible DeepSeek chat completion API
type DeepSeekClient struct {
	llm            llms.Model
	model          string
	timeout        time.Duration
	credentialName string
	logger         *zap.Logger
}

var _ domain.ProviderClient = (*DeepSeekClient)(nil)

// NewDeepSeekClient creates a DeepSeek client. A missing API key is not an
// error here; the client reports itself unconfigured instead.
func NewDeepSeekClient(cfg config.ProviderConfig, httpClient *http.Client, logger *zap.Logger) (*DeepSeekClient, error) {
	c := &DeepSeekClient{
		model:          cfg.Model,
		timeout:        cfg.Timeout,
		credentialName: cfg.CredentialName,
		logger:         logger,
	}
	if cfg.APIKey == "" {
		return c, nil
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")),
	}
	opts = append(opts, openai.WithHTTPClient(withExplicitStream(httpClient)))
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create deepseek client: %w", err)
	}
	c.llm = llm
	return c, nil
}

func (c *DeepSeekClient) ID() domain.ProviderID  { return domain.ProviderDeepSeek }
func (c *DeepSeekClient) Configured() bool       { return c.llm != nil }
func (c *DeepSeekClient) CredentialName() string { return c.credentialName }
func (c *DeepSeekClient) Model() string          { return c.model }

// Generate sends the prompt as a single user message and returns the first choice
func (c *DeepSeekClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", domain.NewAIConfigurationError(c.ID(), c.credentialName)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.Info("Calling DeepSeek API",
		zap.String("model", c.model),
		zap.Int("prompt_length", len(prompt)))

	start := time.Now()
	resp, err := c.llm.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, prompt)},
		llms.WithModel(c.model),
		llms.WithTemperature(deepSeekTemperature),
	)
	if err != nil {
		classified := classifyError(c.ID(), err)
		c.logger.Error("DeepSeek API call failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", classified
	}

	if resp == nil || len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		fields := []zap.Field{zap.Duration("elapsed", time.Since(start))}
		choices := 0
		if resp != nil {
			choices = len(resp.Choices)
		}
		fields = append(fields, zap.Int("choices", choices))
		if choices > 0 {
			first := resp.Choices[0]
			fields = append(fields,
				zap.String("stop_reason", first.StopReason),
				zap.Int("content_length", len(first.Content)),
				zap.String("content", truncate(first.Content, diagnosticBodyLimit)))
		}
		c.logger.Error("DeepSeek API returned empty content", fields...)
		return "", domain.NewAIUpstreamResponseError(c.ID(), "AI返回内容为空", nil).
			WithContext("choices", choices)
	}

	c.logger.Info("DeepSeek API call succeeded",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("content_length", len(resp.Choices[0].Content)),
		zap.String("stop_reason", resp.Choices[0].StopReason))
	return resp.Choices[0].Content, nil
}

// withExplicitStream returns a copy of hc whose transport writes "stream":false
// into chat completion bodies. langchaingo omits the field when false.
func withExplicitStream(hc *http.Client) *http.Client {
	var clone http.Client
	if hc != nil {
		clone = *hc
	}
	base := clone.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	clone.Transport = streamFlagTransport{base: base}
	return &clone
}

type streamFlagTransport struct {
	base http.RoundTripper
}

func (t streamFlagTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodPost || req.Body == nil || !strings.HasSuffix(req.URL.Path, "/chat/completions") {
		return t.base.RoundTrip(req)
	}

	raw, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, err
	}

	var body map[string]json.RawMessage
	if json.Unmarshal(raw, &body) == nil {
		if _, ok := body["stream"]; !ok {
			body["stream"] = json.RawMessage("false")
			if patched, mErr := json.Marshal(body); mErr == nil {
				raw = patched
			}
		}
	}

	out := req.Clone(req.Context())
	out.Body = io.NopCloser(bytes.NewReader(raw))
	out.ContentLength = int64(len(raw))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(raw)), nil
	}
	return t.base.RoundTrip(out)
}
