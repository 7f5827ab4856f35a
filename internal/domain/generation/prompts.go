package generation

import (
	"fmt"

	"github.com/rpggio/proposta/internal/domain/proposal"
)

// BuildPrompt writes the generator prompt for a section from the current
// proposal.
func BuildPrompt(p proposal.Proposal, section Section) (string, error) {
	switch section {
	case SectionIntroduction:
		return fmt.Sprintf(
			"Escreva uma carta de apresentação profissional e amigável para uma proposta comercial endereçada a '%s' da empresa '%s'. "+
				"O projeto em questão é sobre '%s'. Comece com \"Prezado(a) %s,\" e seja conciso.",
			p.Client.Name, p.Client.CompanyName, p.ProjectTitle, p.Client.Name,
		), nil
	case SectionTermsAndConditions:
		return fmt.Sprintf(
			"Gere uma seção de 'Termos e Condições' para uma proposta comercial de um projeto de '%s'. "+
				"Inclua cláusulas sobre forma de pagamento (sugerindo 50%% de entrada e 50%% na conclusão), prazo de entrega, "+
				"política de alterações de escopo e confidencialidade. Formate como uma lista numerada.",
			p.ProjectTitle,
		), nil
	default:
		return "", ErrUnknownSection
	}
}
