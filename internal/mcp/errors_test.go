package mcp

import (
	"errors"
	"testing"

	"github.com/rpggio/proposta/internal/domain/generation"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	require.NoError(t, MapError(nil))

	var apiErr *APIError
	err := MapError(&generation.Error{Section: generation.SectionIntroduction, Err: generation.ErrInProgress})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "GENERATION_IN_PROGRESS", apiErr.Code)

	err = MapError(&generation.Error{Section: generation.SectionIntroduction, Err: errors.New("boom")})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "GENERATION_FAILED", apiErr.Code)
	require.Contains(t, apiErr.Error(), "retry later")

	plain := errors.New("other")
	require.Same(t, plain, MapError(plain))
}
