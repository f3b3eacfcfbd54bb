package quizgen

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"
	"time"
	"unicode/utf8"

	"mathdrill/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeoutNetError struct{}

func (timeoutNetError) Error() string   { return "i/o wait exceeded" }
func (timeoutNetError) Timeout() bool   { return true }
func (timeoutNetError) Temporary() bool { return true }

var _ net.Error = timeoutNetError{}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.ErrorCode
	}{
		{"deadline exceeded", context.DeadlineExceeded, domain.CodeAITimeout},
		{"wrapped deadline", fmt.Errorf("post: %w", context.DeadlineExceeded), domain.CodeAITimeout},
		{"net timeout", &url.Error{Op: "Post", URL: "https://x", Err: timeoutNetError{}}, domain.CodeAITimeout},
		{"aborted message", errors.New("socket hang up: request aborted"), domain.CodeAITimeout},
		{"timeout message", errors.New("Client.Timeout exceeded while awaiting headers"), domain.CodeAITimeout},
		{"connection refused", &url.Error{Op: "Post", URL: "https://x", Err: errors.New("connect: connection refused")}, domain.CodeAIUpstreamTransport},
		{"status code", errors.New("API returned unexpected status code: 503: overloaded"), domain.CodeAIUpstreamTransport},
		{"status code with timeout in body", errors.New("API returned unexpected status code: 400: Invalid request: parameter 'timeout' is not supported"), domain.CodeAIUpstreamTransport},
		{"status code with aborted in body", errors.New("API returned unexpected status code: 500: upstream request aborted"), domain.CodeAIUpstreamTransport},
		{"decode failure", errors.New("invalid character '<' looking for beginning of value"), domain.CodeAIUpstreamResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(domain.ProviderDeepSeek, tt.err)
			require.Error(t, got)
			assert.True(t, domain.HasCode(got, tt.want), "got %v", got)

			var domainErr *domain.DomainError
			require.ErrorAs(t, got, &domainErr)
			assert.Equal(t, "deepseek", domainErr.Context["provider"])
		})
	}
}

func TestClassifyError_KeepsDomainErrors(t *testing.T) {
	original := domain.NewAIConfigurationError(domain.ProviderGemini, "GEMINI_API_KEY")
	assert.Same(t, original, classifyError(domain.ProviderGemini, original))
	assert.Nil(t, classifyError(domain.ProviderGemini, nil))
}

func TestClassifyError_TimeoutCarriesUserMessage(t *testing.T) {
	got := classifyError(domain.ProviderGemini, context.DeadlineExceeded)

	var domainErr *domain.DomainError
	require.ErrorAs(t, got, &domainErr)
	assert.Equal(t, "AI服务调用超时，请稍后重试", domainErr.Message)
	assert.ErrorIs(t, got, context.DeadlineExceeded)
}

func TestClassifyError_DeadlineBeatsStatusText(t *testing.T) {
	err := fmt.Errorf("status code: 200 partially read: %w", context.DeadlineExceeded)
	assert.True(t, domain.HasCode(classifyError(domain.ProviderDeepSeek, err), domain.CodeAITimeout))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))

	// 题 and 目 are three bytes each; a cut inside 目 backs off to its start
	got := truncate("题目：求x", 4)
	assert.Equal(t, "题...", got)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "题目...", truncate("题目：求x", 6))
	assert.Equal(t, "...", truncate("题目", 1))
}

func TestExtractText(t *testing.T) {
	text, reason := extractText(geminiResponse{Candidates: []geminiCandidate{{
		Content:      &geminiContent{Parts: []geminiPart{{Text: "  "}, {Text: "x"}}},
		FinishReason: "STOP",
	}}})
	assert.Equal(t, "x", text)
	assert.Equal(t, "STOP", reason)

	text, _ = extractText(geminiResponse{Candidates: []geminiCandidate{{FinishReason: "SAFETY"}}})
	assert.Empty(t, text)
}

func TestNewHTTPClient(t *testing.T) {
	c, err := NewHTTPClient("", 3*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.Timeout)

	c, err = NewHTTPClient("socks5://127.0.0.1:1080", time.Second)
	require.NoError(t, err)
	assert.NotNil(t, c.Transport)

	_, err = NewHTTPClient("ftp://127.0.0.1:21", time.Second)
	assert.Error(t, err)
}
