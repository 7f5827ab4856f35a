package generation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpggio/proposta/internal/domain/generation"
	"github.com/rpggio/proposta/internal/domain/generation/mocks"
	"github.com/rpggio/proposta/internal/domain/session"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSession() *session.Session {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	return session.New(session.Options{Now: func() time.Time { return now }})
}

func TestGenerate_AppliesText(t *testing.T) {
	ctx := context.Background()
	sess := newSession()

	gen := &mocks.Generator{}
	gen.On("GenerateContent", ctx, mock.MatchedBy(func(prompt string) bool {
		return prompt != ""
	})).Return("Prezado(a) João da Silva,\n\nTexto gerado.", nil)

	svc := generation.NewService(gen, nil)
	snap, err := svc.Generate(ctx, sess, generation.SectionIntroduction)
	require.NoError(t, err)
	require.Equal(t, "Prezado(a) João da Silva,\n\nTexto gerado.", snap.Proposal.Introduction)
	require.Equal(t, int64(1), snap.Revision)

	_, active := svc.InFlight()
	require.False(t, active)
	gen.AssertExpectations(t)
}

func TestGenerate_FailureLeavesProposalUnchanged(t *testing.T) {
	ctx := context.Background()
	sess := newSession()
	before := sess.Proposal().Introduction

	upstream := errors.New("upstream unavailable")
	gen := &mocks.Generator{}
	gen.On("GenerateContent", ctx, mock.Anything).Return("", upstream)

	svc := generation.NewService(gen, nil)
	_, err := svc.Generate(ctx, sess, generation.SectionIntroduction)
	require.ErrorIs(t, err, upstream)

	var genErr *generation.Error
	require.ErrorAs(t, err, &genErr)
	require.Equal(t, generation.SectionIntroduction, genErr.Section)

	require.Equal(t, before, sess.Proposal().Introduction)
	require.Equal(t, int64(0), sess.Snapshot().Revision)
	_, active := svc.InFlight()
	require.False(t, active)
}

func TestGenerate_EmptyTextIsFailure(t *testing.T) {
	ctx := context.Background()
	sess := newSession()
	before := sess.Proposal().TermsAndConditions

	gen := &mocks.Generator{}
	gen.On("GenerateContent", ctx, mock.Anything).Return("   ", nil)

	svc := generation.NewService(gen, nil)
	_, err := svc.Generate(ctx, sess, generation.SectionTermsAndConditions)
	require.ErrorIs(t, err, generation.ErrEmptyResponse)
	require.Equal(t, before, sess.Proposal().TermsAndConditions)
}

func TestGenerate_UnknownSection(t *testing.T) {
	svc := generation.NewService(&mocks.Generator{}, nil)
	_, err := svc.Generate(context.Background(), newSession(), generation.Section("services"))
	require.ErrorIs(t, err, generation.ErrUnknownSection)
}

func TestGenerate_SingleInFlightSlot(t *testing.T) {
	ctx := context.Background()
	sess := newSession()
	gen := mocks.NewBlockingGenerator("Novos termos.", nil)
	svc := generation.NewService(gen, nil)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Generate(ctx, sess, generation.SectionTermsAndConditions)
		done <- err
	}()
	<-gen.Started

	section, active := svc.InFlight()
	require.True(t, active)
	require.Equal(t, generation.SectionTermsAndConditions, section)

	_, err := svc.Generate(ctx, sess, generation.SectionTermsAndConditions)
	require.ErrorIs(t, err, generation.ErrInProgress)
	_, err = svc.Generate(ctx, sess, generation.SectionIntroduction)
	require.ErrorIs(t, err, generation.ErrInProgress)

	close(gen.Release)
	require.NoError(t, <-done)
	require.Equal(t, "Novos termos.", sess.Proposal().TermsAndConditions)

	_, active = svc.InFlight()
	require.False(t, active)
}

func TestGenerate_SlotReleasedAfterFailure(t *testing.T) {
	ctx := context.Background()
	sess := newSession()

	gen := &mocks.Generator{}
	gen.On("GenerateContent", ctx, mock.Anything).Return("", errors.New("boom")).Once()
	gen.On("GenerateContent", ctx, mock.Anything).Return("Olá", nil).Once()

	svc := generation.NewService(gen, nil)
	_, err := svc.Generate(ctx, sess, generation.SectionIntroduction)
	require.Error(t, err)

	snap, err := svc.Generate(ctx, sess, generation.SectionIntroduction)
	require.NoError(t, err)
	require.Equal(t, "Olá", snap.Proposal.Introduction)
}

func TestBuildPrompt(t *testing.T) {
	p := newSession().Proposal()

	prompt, err := generation.BuildPrompt(p, generation.SectionIntroduction)
	require.NoError(t, err)
	require.Contains(t, prompt, "'João da Silva'")
	require.Contains(t, prompt, "'Empresa Exemplo Ltda.'")
	require.Contains(t, prompt, "'Desenvolvimento de Novo Website Corporativo'")
	require.Contains(t, prompt, `"Prezado(a) João da Silva,"`)

	prompt, err = generation.BuildPrompt(p, generation.SectionTermsAndConditions)
	require.NoError(t, err)
	require.Contains(t, prompt, "50% de entrada e 50% na conclusão")
	require.Contains(t, prompt, "lista numerada")
}

func TestParseSection(t *testing.T) {
	s, ok := generation.ParseSection("introduction")
	require.True(t, ok)
	require.Equal(t, generation.SectionIntroduction, s)

	_, ok = generation.ParseSection("projectTitle")
	require.False(t, ok)
}
