package render

import (
	"github.com/rpggio/proposta/internal/domain/proposal"
	"github.com/rpggio/proposta/internal/domain/session"
)

// PreviewAnchorID is the DOM id of the preview root; the print path copies
// the markup under it.
const PreviewAnchorID = "proposal-preview-wrapper"

// Preview is the read-only presentation of a proposal. Every string is
// produced by the proposal derivation functions.
type Preview struct {
	AnchorID       string
	ProjectTitle   string
	ProposalNumber string
	IssueDate      string
	ValidUntil     string
	Client         proposal.ContactInfo
	Provider       proposal.ContactInfo
	Introduction   string
	Lines          []PreviewLine
	Subtotal       string
	Tax            string
	ShowTax        bool
	Total          string
	Terms          string
}

// PreviewLine is one row of the services table.
type PreviewLine struct {
	Description string
	Quantity    string
	UnitPrice   string
	Total       string
}

// NewPreview derives the preview of p.
func NewPreview(p proposal.Proposal, taxRate float64) Preview {
	totals := proposal.ComputeTotals(p, taxRate)

	lines := make([]PreviewLine, 0, len(p.Services))
	for _, item := range p.Services {
		lines = append(lines, PreviewLine{
			Description: item.Description,
			Quantity:    proposal.FormatQuantity(item.Quantity),
			UnitPrice:   proposal.FormatCurrency(item.UnitPrice),
			Total:       proposal.FormatCurrency(proposal.LineTotal(item)),
		})
	}

	return Preview{
		AnchorID:       PreviewAnchorID,
		ProjectTitle:   p.ProjectTitle,
		ProposalNumber: p.ProposalNumber,
		IssueDate:      proposal.FormatDate(p.IssueDate),
		ValidUntil:     proposal.FormatDate(p.ValidUntil),
		Client:         p.Client,
		Provider:       p.Provider,
		Introduction:   p.Introduction,
		Lines:          lines,
		Subtotal:       proposal.FormatCurrency(totals.Subtotal),
		Tax:            proposal.FormatCurrency(totals.Tax),
		ShowTax:        taxRate > 0,
		Total:          proposal.FormatCurrency(totals.Total),
		Terms:          p.TermsAndConditions,
	}
}

// EditorPage is the data for the form + preview page.
type EditorPage struct {
	Proposal proposal.Proposal
	Revision int64
	Preview  Preview
	Sections []SectionControl
	// Generating names the section in flight, if any.
	Generating string
	// Notice, when set, is shown as a blocking alert.
	Notice string
}

// SectionControl describes one free-text section and its generate button.
type SectionControl struct {
	Name       string
	Label      string
	Value      string
	Rows       int
	Generating bool
	Disabled   bool
}

// PrintPage is the data for the standalone printable document.
type PrintPage struct {
	Preview       Preview
	DelayMillis   int64
	StylesheetURL string
}

// NewEditorPage builds the editor page for snap. inFlight names the section
// currently being generated, or is empty; while it is set every generate
// button is disabled.
func NewEditorPage(snap session.Snapshot, taxRate float64, inFlight, notice string) EditorPage {
	p := snap.Proposal
	section := func(f proposal.Field, label string, rows int) SectionControl {
		return SectionControl{
			Name:       f.String(),
			Label:      label,
			Value:      p.Value(f),
			Rows:       rows,
			Generating: inFlight == f.String(),
			Disabled:   inFlight != "",
		}
	}
	return EditorPage{
		Proposal: p,
		Revision: snap.Revision,
		Preview:  NewPreview(p, taxRate),
		Sections: []SectionControl{
			section(proposal.FieldIntroduction, "Introdução", 5),
			section(proposal.FieldTermsAndConditions, "Termos e Condições", 6),
		},
		Generating: inFlight,
		Notice:     notice,
	}
}
