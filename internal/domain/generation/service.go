package generation

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/proposta/internal/domain/proposal"
	"github.com/rpggio/proposta/internal/domain/session"
	"golang.org/x/sync/semaphore"
)

// Generator produces text for a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Document is the owned proposal state a generation writes into.
type Document interface {
	Proposal() proposal.Proposal
	Apply(edits ...proposal.Edit) session.Snapshot
}

// Service fills free-text sections using a Generator. At most one
// generation runs at a time, whatever the section.
type Service struct {
	gen    Generator
	logger *slog.Logger

	slot   *semaphore.Weighted
	mu     sync.Mutex
	active Section
}

// NewService creates a generation service.
func NewService(gen Generator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		gen:    gen,
		logger: logger,
		slot:   semaphore.NewWeighted(1),
	}
}

// InFlight reports the section currently being generated, if any.
func (s *Service) InFlight() (Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.active != ""
}

// Generate asks the generator for the section text and writes it into doc.
// On any failure doc is untouched and an *Error is returned.
func (s *Service) Generate(ctx context.Context, doc Document, section Section) (session.Snapshot, error) {
	if section.Field() == 0 {
		return session.Snapshot{}, &Error{Section: section, Err: ErrUnknownSection}
	}
	if !s.slot.TryAcquire(1) {
		return session.Snapshot{}, &Error{Section: section, Err: ErrInProgress}
	}
	s.setActive(section)
	defer func() {
		s.setActive("")
		s.slot.Release(1)
	}()

	requestID := uuid.NewString()
	logger := s.logger.With("section", string(section), "request_id", requestID)

	prompt, err := BuildPrompt(doc.Proposal(), section)
	if err != nil {
		return session.Snapshot{}, &Error{Section: section, Err: err}
	}

	start := time.Now()
	text, err := s.gen.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Error("generation failed", "error", err, "elapsed", time.Since(start))
		return session.Snapshot{}, &Error{Section: section, Err: err}
	}
	if strings.TrimSpace(text) == "" {
		logger.Error("generation failed", "error", ErrEmptyResponse, "elapsed", time.Since(start))
		return session.Snapshot{}, &Error{Section: section, Err: ErrEmptyResponse}
	}

	snap := doc.Apply(proposal.FieldEdit(section.Field(), text))
	logger.Info("section generated", "chars", len(text), "revision", snap.Revision, "elapsed", time.Since(start))
	return snap, nil
}

func (s *Service) setActive(section Section) {
	s.mu.Lock()
	s.active = section
	s.mu.Unlock()
}
