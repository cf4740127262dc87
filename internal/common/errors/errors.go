// Package errors provides standardized error handling for the matching service.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeMissingQuery     ErrorCode = "MISSING_QUERY"

	ErrCodeEmbeddingFailed  ErrorCode = "EMBEDDING_FAILED"
	ErrCodeEmbeddingTimeout ErrorCode = "EMBEDDING_TIMEOUT"

	ErrCodeVectorIndexConnectionFailed ErrorCode = "VECTOR_INDEX_CONNECTION_FAILED"
	ErrCodeVectorQueryFailed           ErrorCode = "VECTOR_QUERY_FAILED"
	ErrCodeVectorQueryTimeout          ErrorCode = "VECTOR_QUERY_TIMEOUT"
	ErrCodeIndexNotFound               ErrorCode = "INDEX_NOT_FOUND"
	ErrCodeStatsUnavailable            ErrorCode = "STATS_UNAVAILABLE"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"

	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"

	ErrCodeBrandFetchFailed    ErrorCode = "BRAND_FETCH_FAILED"
	ErrCodeBrandAnalysisFailed ErrorCode = "BRAND_ANALYSIS_FAILED"
	ErrCodeLLMTimeout          ErrorCode = "LLM_TIMEOUT"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationFailedError creates a non-retryable request validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingQueryError creates a non-retryable error for an empty search brief.
func NewMissingQueryError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingQuery,
		Message:   "Search query text is required",
		Details:   "parameter 'q' must be a non-empty string",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmbeddingFailedError creates a retryable embedding service error.
func NewEmbeddingFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmbeddingFailed,
		Message:   "Embedding service error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmbeddingTimeoutError creates a retryable embedding timeout error.
func NewEmbeddingTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmbeddingTimeout,
		Message:   "Embedding service timeout",
		Details:   "embedding call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewVectorIndexConnectionFailedError creates a retryable index connection error.
func NewVectorIndexConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeVectorIndexConnectionFailed,
		Message:   "Vector index connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewVectorQueryFailedError creates a retryable similarity query error.
func NewVectorQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeVectorQueryFailed,
		Message:   "Vector similarity query error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewVectorQueryTimeoutError creates a retryable similarity query timeout error.
func NewVectorQueryTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeVectorQueryTimeout,
		Message:   "Vector similarity query timeout",
		Details:   "index query exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewIndexNotFoundError creates a non-retryable index not found error.
func NewIndexNotFoundError(indexName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIndexNotFound,
		Message:   "Vector index not found",
		Details:   fmt.Sprintf("indexName: %s", indexName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStatsUnavailableError creates a retryable index statistics error.
func NewStatsUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStatsUnavailable,
		Message:   "Vector index statistics unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryExecutionFailedError creates a retryable query execution error.
func NewQueryExecutionFailedError(queryName string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Database query execution error",
		Details:   fmt.Sprintf("query: %s, error: %s", queryName, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(queryName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Database query timeout",
		Details:   fmt.Sprintf("query: %s", queryName),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBrandFetchFailedError creates a retryable brand page fetch error.
func NewBrandFetchFailedError(url string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrandFetchFailed,
		Message:   "Brand page fetch failed",
		Details:   fmt.Sprintf("url: %s, error: %s", url, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBrandAnalysisFailedError creates a retryable brand analysis error.
func NewBrandAnalysisFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBrandAnalysisFailed,
		Message:   "Brand analysis API error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewLLMTimeoutError creates a retryable LLM timeout error.
func NewLLMTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeLLMTimeout,
		Message:   "LLM call timeout",
		Details:   "LLM call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// Generic constructors

func NewBusinessRuleError(message, details string) *StandardError {
	return &StandardError{
		Code:      "BUSINESS_RULE_VIOLATION",
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewTimeoutError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "TIMEOUT_ERROR",
		Message:   fmt.Sprintf("Service '%s' timeout", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewResourceNotFoundError(service, details string) *StandardError {
	return &StandardError{
		Code:      "RESOURCE_NOT_FOUND",
		Message:   fmt.Sprintf("Resource not found in %s", service),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatusFor maps internal error codes to HTTP response status codes.
func HTTPStatusFor(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed, ErrCodeMissingQuery:
		return http.StatusBadRequest
	case ErrCodeIndexNotFound, "RESOURCE_NOT_FOUND":
		return http.StatusNotFound
	case ErrCodeEmbeddingTimeout, ErrCodeVectorQueryTimeout, ErrCodeQueryTimeout, ErrCodeLLMTimeout, "TIMEOUT_ERROR":
		return http.StatusGatewayTimeout
	case ErrCodeEmbeddingFailed, ErrCodeVectorIndexConnectionFailed, ErrCodeVectorQueryFailed,
		ErrCodeStatsUnavailable, ErrCodeBrandFetchFailed, ErrCodeBrandAnalysisFailed, "EXTERNAL_SERVICE_ERROR":
		return http.StatusBadGateway
	case "BUSINESS_RULE_VIOLATION":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// GetRetryCount returns the recommended retry count for callers that retry.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeEmbeddingFailed,
		ErrCodeVectorIndexConnectionFailed,
		ErrCodeVectorQueryFailed,
		ErrCodeDatabaseConnectionFailed,
		ErrCodeQueryExecutionFailed,
		ErrCodeBrandAnalysisFailed:
		return 3

	case ErrCodeEmbeddingTimeout,
		ErrCodeVectorQueryTimeout,
		ErrCodeQueryTimeout,
		ErrCodeStatsUnavailable,
		ErrCodeBrandFetchFailed:
		return 2

	case ErrCodeLLMTimeout:
		return 1

	default:
		return 0
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "MISSING"):
		return "VALIDATION"
	case strings.Contains(codeStr, "EMBEDDING"):
		return "EMBEDDING"
	case strings.Contains(codeStr, "VECTOR") || strings.Contains(codeStr, "INDEX") || strings.Contains(codeStr, "STATS"):
		return "VECTOR_INDEX"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "QUERY"):
		return "DATABASE"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "BRAND") || strings.Contains(codeStr, "LLM"):
		return "AI"
	default:
		return "GENERAL"
	}
}
