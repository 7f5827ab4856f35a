package proposal

import "slices"

// Edit is a single pure transformation of a Proposal.
type Edit func(Proposal) Proposal

// Apply runs edits in order and returns the final value.
func Apply(p Proposal, edits ...Edit) Proposal {
	for _, edit := range edits {
		if edit != nil {
			p = edit(p)
		}
	}
	return p
}

// SetField replaces one top-level scalar field. An unknown field is a no-op.
func SetField(p Proposal, f Field, value string) Proposal {
	switch f {
	case FieldProposalNumber:
		p.ProposalNumber = value
	case FieldIssueDate:
		p.IssueDate = value
	case FieldValidUntil:
		p.ValidUntil = value
	case FieldProjectTitle:
		p.ProjectTitle = value
	case FieldIntroduction:
		p.Introduction = value
	case FieldTermsAndConditions:
		p.TermsAndConditions = value
	}
	return p
}

// SetContactField replaces one field of the client or provider contact.
func SetContactField(p Proposal, party Party, f ContactField, value string) Proposal {
	switch party {
	case PartyClient:
		p.Client = setContact(p.Client, f, value)
	case PartyProvider:
		p.Provider = setContact(p.Provider, f, value)
	}
	return p
}

func setContact(c ContactInfo, f ContactField, value string) ContactInfo {
	switch f {
	case ContactName:
		c.Name = value
	case ContactCompanyName:
		c.CompanyName = value
	case ContactAddress:
		c.Address = value
	case ContactEmail:
		c.Email = value
	}
	return c
}

// SetServiceField edits the item with the given id. Quantity and unit price
// go through ParseAmount. A missing id or an identical value returns p
// unchanged.
func SetServiceField(p Proposal, id int64, f ServiceField, raw string) Proposal {
	i := p.serviceIndex(id)
	if i < 0 {
		return p
	}
	item := p.Services[i]
	switch f {
	case ServiceDescription:
		item.Description = raw
	case ServiceQuantity:
		item.Quantity = ParseAmount(raw)
	case ServiceUnitPrice:
		item.UnitPrice = ParseAmount(raw)
	default:
		return p
	}
	if item == p.Services[i] {
		return p
	}
	services := slices.Clone(p.Services)
	services[i] = item
	p.Services = services
	return p
}

// AddService appends an empty item (quantity 1, price 0) with the given id.
// An id already in use is a no-op.
func AddService(p Proposal, id int64) Proposal {
	if p.serviceIndex(id) >= 0 {
		return p
	}
	p.Services = append(slices.Clip(p.Services), ServiceItem{
		ID:       id,
		Quantity: 1,
	})
	return p
}

// RemoveService drops the item with the given id, keeping the order of the
// remaining items. A missing id returns p unchanged.
func RemoveService(p Proposal, id int64) Proposal {
	i := p.serviceIndex(id)
	if i < 0 {
		return p
	}
	p.Services = slices.Delete(slices.Clone(p.Services), i, i+1)
	return p
}

// FieldEdit wraps SetField.
func FieldEdit(f Field, value string) Edit {
	return func(p Proposal) Proposal { return SetField(p, f, value) }
}

// ContactEdit wraps SetContactField.
func ContactEdit(party Party, f ContactField, value string) Edit {
	return func(p Proposal) Proposal { return SetContactField(p, party, f, value) }
}

// ServiceEdit wraps SetServiceField.
func ServiceEdit(id int64, f ServiceField, raw string) Edit {
	return func(p Proposal) Proposal { return SetServiceField(p, id, f, raw) }
}

// AddServiceEdit wraps AddService.
func AddServiceEdit(id int64) Edit {
	return func(p Proposal) Proposal { return AddService(p, id) }
}

// RemoveServiceEdit wraps RemoveService.
func RemoveServiceEdit(id int64) Edit {
	return func(p Proposal) Proposal { return RemoveService(p, id) }
}

// Unchanged reports whether b is the same document as a. Services are
// compared by slice identity, which is sound because edits never write into
// a shared backing array.
func Unchanged(a, b Proposal) bool {
	if a.ProposalNumber != b.ProposalNumber ||
		a.IssueDate != b.IssueDate ||
		a.ValidUntil != b.ValidUntil ||
		a.ProjectTitle != b.ProjectTitle ||
		a.Introduction != b.Introduction ||
		a.TermsAndConditions != b.TermsAndConditions ||
		a.Client != b.Client ||
		a.Provider != b.Provider {
		return false
	}
	if len(a.Services) != len(b.Services) {
		return false
	}
	return len(a.Services) == 0 || &a.Services[0] == &b.Services[0]
}
