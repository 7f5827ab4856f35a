package generation

import "github.com/rpggio/proposta/internal/domain/proposal"

// Section is a free-text field that can be filled by the generator.
type Section string

const (
	SectionIntroduction       Section = "introduction"
	SectionTermsAndConditions Section = "termsAndConditions"
)

// Sections lists the generatable sections.
var Sections = []Section{SectionIntroduction, SectionTermsAndConditions}

// ParseSection validates a wire name.
func ParseSection(name string) (Section, bool) {
	switch Section(name) {
	case SectionIntroduction, SectionTermsAndConditions:
		return Section(name), true
	default:
		return "", false
	}
}

// Field is the proposal field the section writes to.
func (s Section) Field() proposal.Field {
	switch s {
	case SectionIntroduction:
		return proposal.FieldIntroduction
	case SectionTermsAndConditions:
		return proposal.FieldTermsAndConditions
	default:
		return 0
	}
}

// Label is the user-facing name of the section.
func (s Section) Label() string {
	switch s {
	case SectionIntroduction:
		return "Introdução"
	case SectionTermsAndConditions:
		return "Termos e Condições"
	default:
		return string(s)
	}
}
