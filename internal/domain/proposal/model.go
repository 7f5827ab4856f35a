package proposal

// ContactInfo identifies one party of the proposal. Empty fields are valid.
type ContactInfo struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	Email       string `json:"email"`
}

// ServiceItem is one billable line of the proposal.
type ServiceItem struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Proposal is the complete document under edit. Values are replaced
// wholesale on every edit; Services is never written in place.
type Proposal struct {
	ProposalNumber     string        `json:"proposalNumber"`
	IssueDate          string        `json:"issueDate"`
	ValidUntil         string        `json:"validUntil"`
	ProjectTitle       string        `json:"projectTitle"`
	Client             ContactInfo   `json:"client"`
	Provider           ContactInfo   `json:"provider"`
	Introduction       string        `json:"introduction"`
	Services           []ServiceItem `json:"services"`
	TermsAndConditions string        `json:"termsAndConditions"`
}

// Contact returns the contact info for the given party.
func (p Proposal) Contact(party Party) ContactInfo {
	if party == PartyProvider {
		return p.Provider
	}
	return p.Client
}

// Service returns the item with the given id.
func (p Proposal) Service(id int64) (ServiceItem, bool) {
	if i := p.serviceIndex(id); i >= 0 {
		return p.Services[i], true
	}
	return ServiceItem{}, false
}

// Value returns the current value of a top-level scalar field.
func (p Proposal) Value(f Field) string {
	switch f {
	case FieldProposalNumber:
		return p.ProposalNumber
	case FieldIssueDate:
		return p.IssueDate
	case FieldValidUntil:
		return p.ValidUntil
	case FieldProjectTitle:
		return p.ProjectTitle
	case FieldIntroduction:
		return p.Introduction
	case FieldTermsAndConditions:
		return p.TermsAndConditions
	default:
		return ""
	}
}

func (p Proposal) serviceIndex(id int64) int {
	for i := range p.Services {
		if p.Services[i].ID == id {
			return i
		}
	}
	return -1
}
