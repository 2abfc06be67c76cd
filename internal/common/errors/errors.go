// Package errors provides standardized error handling for the rate engine.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Borrower input validation
	ErrCodeInvalidLoanAmount  ErrorCode = "INVALID_LOAN_AMOUNT"
	ErrCodeInvalidCreditScore ErrorCode = "INVALID_CREDIT_SCORE"
	ErrCodeInvalidLTV         ErrorCode = "INVALID_LTV"
	ErrCodeUnsupportedProduct ErrorCode = "UNSUPPORTED_LOAN_TYPE"

	// Rate data availability
	ErrCodeNoRatesForProduct ErrorCode = "NO_RATES_FOR_LOAN_TYPE"
	ErrCodeEmptyRateSnapshot ErrorCode = "EMPTY_RATE_SNAPSHOT"
	ErrCodeNoValidBaseRate   ErrorCode = "NO_VALID_BASE_RATE"

	// Ingestion / snapshot store
	ErrCodeRateFeedUnavailable ErrorCode = "RATE_FEED_UNAVAILABLE"
	ErrCodeRateFeedMalformed   ErrorCode = "RATE_FEED_MALFORMED"
	ErrCodeSnapshotStoreFailed ErrorCode = "SNAPSHOT_STORE_FAILED"
)

// EngineError represents a structured application error. Quote and
// optimization failures are returned as values of this type; nothing in
// the engine panics.
type EngineError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("EngineError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidLoanAmountError creates a non-retryable validation error.
func NewInvalidLoanAmountError(amount float64) *EngineError {
	return &EngineError{
		Code:      ErrCodeInvalidLoanAmount,
		Message:   "Loan amount out of range",
		Details:   fmt.Sprintf("loanAmount: %.2f, allowed: (0, 10000000]", amount),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidCreditScoreError creates a non-retryable validation error.
func NewInvalidCreditScoreError(score int) *EngineError {
	return &EngineError{
		Code:      ErrCodeInvalidCreditScore,
		Message:   "Credit score out of range",
		Details:   fmt.Sprintf("creditScore: %d, allowed: [300, 850]", score),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidLTVError creates a non-retryable validation error.
func NewInvalidLTVError(ltv float64) *EngineError {
	return &EngineError{
		Code:      ErrCodeInvalidLTV,
		Message:   "Loan-to-value ratio out of range",
		Details:   fmt.Sprintf("ltv: %.2f, allowed: (0, 100]", ltv),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedProductError creates a non-retryable validation error.
func NewUnsupportedProductError(loanType string) *EngineError {
	return &EngineError{
		Code:      ErrCodeUnsupportedProduct,
		Message:   "Unsupported loan type",
		Details:   fmt.Sprintf("loanType: %s", loanType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoRatesForProductError indicates the snapshot carries no rates for the
// requested product. Retryable: the next ingestion cycle may fill the gap.
func NewNoRatesForProductError(loanType string) *EngineError {
	return &EngineError{
		Code:      ErrCodeNoRatesForProduct,
		Message:   "No rates found for loan type",
		Details:   fmt.Sprintf("loanType: %s", loanType),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyRateSnapshotError indicates there is no current rate snapshot at all.
func NewEmptyRateSnapshotError() *EngineError {
	return &EngineError{
		Code:      ErrCodeEmptyRateSnapshot,
		Message:   "No current rates available",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoValidBaseRateError indicates the filtered rate set had no usable rate.
func NewNoValidBaseRateError(loanType string) *EngineError {
	return &EngineError{
		Code:      ErrCodeNoValidBaseRate,
		Message:   "No valid base rate found",
		Details:   fmt.Sprintf("loanType: %s", loanType),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateFeedUnavailableError creates a retryable ingestion error.
func NewRateFeedUnavailableError(err error) *EngineError {
	return &EngineError{
		Code:      ErrCodeRateFeedUnavailable,
		Message:   "Raw rate feed unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateFeedMalformedError creates a non-retryable ingestion error for a
// feed payload that is not even a JSON array. Individual bad records never
// produce this; they are dropped silently during normalization.
func NewRateFeedMalformedError(err error) *EngineError {
	return &EngineError{
		Code:      ErrCodeRateFeedMalformed,
		Message:   "Raw rate feed payload malformed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSnapshotStoreFailedError creates a retryable store error.
func NewSnapshotStoreFailedError(err error) *EngineError {
	return &EngineError{
		Code:      ErrCodeSnapshotStoreFailed,
		Message:   "Rate snapshot store operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// IsValidation reports whether the error is a borrower input validation error.
func IsValidation(err error) bool {
	ee, ok := err.(*EngineError)
	if !ok {
		return false
	}
	switch ee.Code {
	case ErrCodeInvalidLoanAmount, ErrCodeInvalidCreditScore,
		ErrCodeInvalidLTV, ErrCodeUnsupportedProduct:
		return true
	}
	return false
}

// IsDataUnavailable reports whether the error means rate data is missing
// rather than the request being malformed.
func IsDataUnavailable(err error) bool {
	ee, ok := err.(*EngineError)
	if !ok {
		return false
	}
	switch ee.Code {
	case ErrCodeNoRatesForProduct, ErrCodeEmptyRateSnapshot, ErrCodeNoValidBaseRate:
		return true
	}
	return false
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "UNSUPPORTED"):
		return "VALIDATION"
	case strings.Contains(codeStr, "FEED") || strings.Contains(codeStr, "STORE"):
		return "INGEST"
	case strings.Contains(codeStr, "RATES") || strings.Contains(codeStr, "SNAPSHOT") || strings.Contains(codeStr, "BASE_RATE"):
		return "DATA"
	default:
		return "OTHER"
	}
}
