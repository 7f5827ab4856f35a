package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/proposta/internal/domain/generation"
)

// APIError is the error shape returned to MCP clients.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

var (
	errInvalidField   = errors.New("unknown field")
	errInvalidParty   = errors.New("unknown party")
	errServiceMissing = errors.New("service not found")
)

// MapError maps domain errors to MCP error codes. Unknown errors pass through.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	case errors.Is(err, generation.ErrInProgress):
		return &APIError{Code: "GENERATION_IN_PROGRESS", Message: "another section is being generated", RecoveryHint: "Wait for it to finish and retry"}
	case errors.Is(err, generation.ErrUnknownSection):
		return &APIError{Code: "INVALID_SECTION", Message: "unknown section", RecoveryHint: "Use introduction or termsAndConditions"}
	case errors.Is(err, errInvalidField):
		return &APIError{Code: "INVALID_FIELD", Message: err.Error(), RecoveryHint: "Read proposta://docs/overview for field names"}
	case errors.Is(err, errInvalidParty):
		return &APIError{Code: "INVALID_PARTY", Message: err.Error(), RecoveryHint: "Use client or provider"}
	case errors.Is(err, errServiceMissing):
		return &APIError{Code: "SERVICE_NOT_FOUND", Message: err.Error(), RecoveryHint: "Call get_proposal for current service ids"}
	}
	var genErr *generation.Error
	if errors.As(err, &genErr) {
		return &APIError{Code: "GENERATION_FAILED", Message: err.Error(), RecoveryHint: "The proposal was left unchanged; retry later"}
	}
	return err
}
