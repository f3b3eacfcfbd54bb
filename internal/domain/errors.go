package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Topic specific errors
	CodeTopicNotFound ErrorCode = "TOPIC_NOT_FOUND"

	// AI generation errors
	CodeAIConfiguration     ErrorCode = "AI_CONFIGURATION_ERROR"
	CodeAITimeout           ErrorCode = "AI_TIMEOUT"
	CodeAIUpstreamResponse  ErrorCode = "AI_UPSTREAM_RESPONSE"
	CodeAIUpstreamTransport ErrorCode = "AI_UPSTREAM_TRANSPORT"
)

// DomainError represents a domain-specific error.
// Cause and Context are diagnostic only and are never serialized.
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a diagnostic key/value pair and returns the same error
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HasCode reports whether err is a DomainError carrying the given code
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewTopicNotFoundError(topicID string) *DomainError {
	return NewError(CodeTopicNotFound, fmt.Sprintf("Topic with ID %s not found", topicID), nil)
}

// NewAIConfigurationError reports a missing credential for the selected provider.
func NewAIConfigurationError(provider ProviderID, credential string) *DomainError {
	return NewError(CodeAIConfiguration, fmt.Sprintf("%s is not set", credential), nil).
		WithContext("provider", string(provider))
}

func NewAITimeoutError(provider ProviderID, cause error) *DomainError {
	return NewError(CodeAITimeout, "AI服务调用超时，请稍后重试", cause).
		WithContext("provider", string(provider))
}

func NewAIUpstreamResponseError(provider ProviderID, message string, cause error) *DomainError {
	return NewError(CodeAIUpstreamResponse, message, cause).
		WithContext("provider", string(provider))
}

func NewAIUpstreamTransportError(provider ProviderID, cause error) *DomainError {
	return NewError(CodeAIUpstreamTransport, "AI服务调用失败", cause).
		WithContext("provider", string(provider))
}
