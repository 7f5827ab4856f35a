package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/proposta/internal/domain/generation"
	"github.com/rpggio/proposta/internal/domain/proposal"
	"github.com/rpggio/proposta/internal/domain/session"
)

type toolset struct {
	doc        Document
	generation GenerationService
	taxRate    float64
}

func registerTools(server *sdkmcp.Server, ts *toolset) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_proposal",
		Description: "Get the proposal being edited with its computed totals",
	}, ts.getProposal)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_field",
		Description: "Set a top-level proposal field",
	}, ts.setField)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_contact_field",
		Description: "Set a field of the client or provider contact",
	}, ts.setContactField)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_service_field",
		Description: "Set the description, quantity or unit price of a service line",
	}, ts.setServiceField)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_service",
		Description: "Append an empty service line; returns its id in service_id",
	}, ts.addService)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_service",
		Description: "Remove a service line by id",
	}, ts.removeService)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "generate_section",
		Description: "Generate the introduction or the terms and conditions with the language model, replacing the current text",
	}, ts.generateSection)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "reset_proposal",
		Description: "Replace the proposal with the default example",
	}, ts.resetProposal)
}

func (ts *toolset) getProposal(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, ProposalOutput, error) {
	return nil, ts.output(ts.doc.Snapshot()), nil
}

func (ts *toolset) setField(_ context.Context, _ *sdkmcp.CallToolRequest, in SetFieldInput) (*sdkmcp.CallToolResult, ProposalOutput, error) {
	f, ok := proposal.ParseField(in.Field)
	if !ok {
		return nil, ProposalOutput{}, MapError(fmt.Errorf("%w: %q", errInvalidField, in.Field))
	}
	return nil, ts.output(ts.doc.Apply(proposal.FieldEdit(f, in.Value))), nil
}

func (ts *toolset) setContactField(_ context.Context, _ *sdkmcp.CallToolRequest, in SetContactFieldInput) (*sdkmcp.CallToolResult, ProposalOutput, error) {
	party, ok := proposal.ParseParty(in.Party)
	if !ok {
		return nil, ProposalOutput{}, MapError(fmt.Errorf("%w: %q", errInvalidParty, in.Party))
	}
	f, ok := proposal.ParseContactField(in.Field)
	if !ok {
		return nil, ProposalOutput{}, MapError(fmt.Errorf("%w: %q", errInvalidField, in.Field))
	}
	return nil, ts.output(ts.doc.Apply(proposal.ContactEdit(party, f, in.Value))), nil
}

func (ts *toolset) setServiceField(_ context.Context, _ *sdkmcp.CallToolRequest, in SetServiceFieldInput) (*sdkmcp.CallToolResult, ProposalOutput, error) {
	f, ok := proposal.ParseServiceField(in.Field)
	if !ok {
		return nil, ProposalOutput{}, MapError(fmt.Errorf("%w: %q", errInvalidField, in.Field))
	}
	if err := ts.requireService(in.ID); err != nil {
		return nil, ProposalOutput{}, err
	}
	return nil, ts.output(ts.doc.Apply(proposal.ServiceEdit(in.ID, f, in.Value))), nil
}

func (ts *toolset) addService(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, ProposalOutput, error) {
	snap, id := ts.doc.AddService()
	out := ts.output(snap)
	out.ServiceID = id
	return nil, out, nil
}

func (ts *toolset) removeService(_ context.Context, _ *sdkmcp.CallToolRequest, in ServiceIDInput) (*sdkmcp.CallToolResult, ProposalOutput, error) {
	if err := ts.requireService(in.ID); err != nil {
		return nil, ProposalOutput{}, err
	}
	return nil, ts.output(ts.doc.RemoveService(in.ID)), nil
}

func (ts *toolset) generateSection(ctx context.Context, _ *sdkmcp.CallToolRequest, in GenerateSectionInput) (*sdkmcp.CallToolResult, ProposalOutput, error) {
	section, ok := generation.ParseSection(in.Section)
	if !ok {
		return nil, ProposalOutput{}, MapError(generation.ErrUnknownSection)
	}
	snap, err := ts.generation.Generate(ctx, ts.doc, section)
	if err != nil {
		return nil, ProposalOutput{}, MapError(err)
	}
	return nil, ts.output(snap), nil
}

func (ts *toolset) resetProposal(_ context.Context, _ *sdkmcp.CallToolRequest, _ EmptyInput) (*sdkmcp.CallToolResult, ProposalOutput, error) {
	return nil, ts.output(ts.doc.Reset()), nil
}

func (ts *toolset) requireService(id int64) error {
	if _, ok := ts.doc.Proposal().Service(id); !ok {
		return MapError(fmt.Errorf("%w: %d", errServiceMissing, id))
	}
	return nil
}

func (ts *toolset) output(snap session.Snapshot) ProposalOutput {
	totals := proposal.ComputeTotals(snap.Proposal, ts.taxRate)
	out := ProposalOutput{
		SessionID: snap.SessionID,
		Revision:  snap.Revision,
		Proposal:  snap.Proposal,
		Totals:    totals,
		Formatted: FormattedTotals{
			Subtotal: proposal.FormatCurrency(totals.Subtotal),
			Total:    proposal.FormatCurrency(totals.Total),
		},
	}
	if ts.taxRate != 0 {
		out.Formatted.Tax = proposal.FormatCurrency(totals.Tax)
	}
	if section, ok := ts.generation.InFlight(); ok {
		out.Generating = string(section)
	}
	return out
}
