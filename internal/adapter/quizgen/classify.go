package quizgen

import (
	"context"
	"errors"
	"net"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"mathdrill/internal/domain"
)

var statusCodePattern = regexp.MustCompile(`status code:?\s*(\d{3})`)

// classifyError maps a provider call failure onto the AI error taxonomy.
// Domain errors pass through unchanged.
func classifyError(provider domain.ProviderID, err error) error {
	if err == nil {
		return nil
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}

	if isTimeout(err) {
		return domain.NewAITimeoutError(provider, err)
	}

	// an HTTP status means the upstream answered; its body text may say anything
	if m := statusCodePattern.FindStringSubmatch(err.Error()); m != nil {
		return domain.NewAIUpstreamTransportError(provider, err).WithContext("status", m[1])
	}

	if looksAborted(err) {
		return domain.NewAITimeoutError(provider, err)
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return domain.NewAIUpstreamTransportError(provider, err)
	}

	return domain.NewAIUpstreamResponseError(provider, "AI返回数据格式错误", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// looksAborted catches timeouts that only survive as text, e.g. a client
// library that formats the cause with %v
func looksAborted(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded") ||
		strings.Contains(msg, "aborted")
}

// truncate shortens an upstream body for diagnostics without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
