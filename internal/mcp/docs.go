package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `proposta edits one commercial proposal shared with the web editor.

- get_proposal returns the document, its revision and the computed totals.
- Edit with set_field, set_contact_field and set_service_field. Unknown service ids are rejected.
- add_service returns the new line id in service_id.
- generate_section asks the language model for introduction or termsAndConditions text. Only one generation runs at a time.
- reset_proposal restores the example document.

Read proposta://docs/overview for field names and formatting rules.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "proposta://docs/overview",
		Name:        "docs_overview",
		Title:       "Proposal document overview",
		Description: "Field names, contact parties, service lines and how totals are computed.",
		Content: `# Proposal document overview

## Fields (set_field)

- ` + "`proposalNumber`" + `: free text, e.g. PROP-001
- ` + "`issueDate`" + `, ` + "`validUntil`" + `: YYYY-MM-DD; shown as DD/MM/YYYY
- ` + "`projectTitle`" + `
- ` + "`introduction`" + `, ` + "`termsAndConditions`" + `: multi-line text, may also be generated

## Contacts (set_contact_field)

Party is ` + "`client`" + ` or ` + "`provider`" + `. Fields: ` + "`name`" + `, ` + "`companyName`" + `, ` + "`address`" + `, ` + "`email`" + `.

## Services (set_service_field)

Each line has an integer id, ` + "`description`" + `, ` + "`quantity`" + ` and ` + "`unitPrice`" + `.
Numbers accept "1.5" or "1,5". Anything that does not parse becomes 0. Negative values become 0.

## Totals

Line total is quantity × unit price. Subtotal is the sum of line totals.
Total is subtotal plus tax at the configured rate. Money is shown in BRL (R$ 1.234,50).

## Generation

generate_section fails without touching the document when the model errors or returns empty text.
A second request while one is running fails with GENERATION_IN_PROGRESS.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
