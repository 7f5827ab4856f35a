package mcp

import "github.com/rpggio/proposta/internal/domain/proposal"

// EmptyInput is used by tools that take no arguments.
type EmptyInput struct{}

type SetFieldInput struct {
	Field string `json:"field" jsonschema:"one of proposalNumber, issueDate, validUntil, projectTitle, introduction, termsAndConditions"`
	Value string `json:"value" jsonschema:"new value; dates use YYYY-MM-DD"`
}

type SetContactFieldInput struct {
	Party string `json:"party" jsonschema:"client or provider"`
	Field string `json:"field" jsonschema:"one of name, companyName, address, email"`
	Value string `json:"value"`
}

type SetServiceFieldInput struct {
	ID    int64  `json:"id" jsonschema:"service id from get_proposal"`
	Field string `json:"field" jsonschema:"one of description, quantity, unitPrice"`
	Value string `json:"value" jsonschema:"numbers accept a dot or comma decimal separator; invalid numbers become 0"`
}

type ServiceIDInput struct {
	ID int64 `json:"id" jsonschema:"service id from get_proposal"`
}

type GenerateSectionInput struct {
	Section string `json:"section" jsonschema:"introduction or termsAndConditions"`
}

// FormattedTotals holds the totals as shown on the document.
type FormattedTotals struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax,omitempty"`
	Total    string `json:"total"`
}

// ProposalOutput is returned by every tool.
type ProposalOutput struct {
	SessionID  string            `json:"session_id"`
	Revision   int64             `json:"revision"`
	Proposal   proposal.Proposal `json:"proposal"`
	Totals     proposal.Totals   `json:"totals"`
	Formatted  FormattedTotals   `json:"formatted"`
	Generating string            `json:"generating,omitempty"`
	ServiceID  int64             `json:"service_id,omitempty"`
}
