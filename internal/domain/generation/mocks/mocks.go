package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Generator is a mock for generation.Generator.
type Generator struct {
	mock.Mock
}

func (m *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// BlockingGenerator holds every call until Release is closed, so tests can
// observe the in-flight state.
type BlockingGenerator struct {
	Started chan struct{}
	Release chan struct{}
	Text    string
	Err     error
}

// NewBlockingGenerator creates a generator that blocks until Release is closed.
func NewBlockingGenerator(text string, err error) *BlockingGenerator {
	return &BlockingGenerator{
		Started: make(chan struct{}, 1),
		Release: make(chan struct{}),
		Text:    text,
		Err:     err,
	}
}

func (g *BlockingGenerator) GenerateContent(ctx context.Context, _ string) (string, error) {
	select {
	case g.Started <- struct{}{}:
	default:
	}
	select {
	case <-g.Release:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return g.Text, g.Err
}
